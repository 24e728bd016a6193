package handlers

import (
	"net/http"

	request "stoploss_quoting/internal/adapter/http/dto/request"
	response "stoploss_quoting/internal/adapter/http/dto/response"
	"stoploss_quoting/internal/adapter/http/middleware"
	"stoploss_quoting/internal/usecase"
	"stoploss_quoting/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidGroupPayload = pkg.NewDomainErrorSimple("INVALID_GROUP_INPUT", "Invalid group payload", http.StatusBadRequest)

type GroupHandler struct {
	usecase usecase.IGroupUseCase
}

func NewGroupHandler(uc usecase.IGroupUseCase) *GroupHandler {
	return &GroupHandler{usecase: uc}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var payload request.CreateGroupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidGroupPayload)
		return
	}
	group, err := payload.ToEntity()
	if err != nil {
		abortWithAppError(c, errInvalidGroupPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.TenantID(c), group)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromGroup(created))
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.usecase.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGroups(groups))
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	group, err := h.usecase.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGroup(group))
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var payload request.UpdateGroupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidGroupPayload)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		abortWithAppError(c, errInvalidGroupPayload)
		return
	}

	group, err := h.usecase.Update(c.Request.Context(), middleware.TenantID(c), c.Param("id"), patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGroup(group))
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.TenantID(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
