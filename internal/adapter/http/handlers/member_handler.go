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

var errInvalidMemberPayload = pkg.NewDomainErrorSimple("INVALID_MEMBER_INPUT", "Invalid member payload", http.StatusBadRequest)

type MemberHandler struct {
	usecase usecase.IMemberUseCase
}

func NewMemberHandler(uc usecase.IMemberUseCase) *MemberHandler {
	return &MemberHandler{usecase: uc}
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	var payload request.CreateMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidMemberPayload)
		return
	}
	member, err := payload.ToEntity()
	if err != nil {
		abortWithAppError(c, errInvalidMemberPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.TenantID(c), member)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMember(created))
}

func (h *MemberHandler) BulkUpload(c *gin.Context) {
	var payload request.BulkMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidMemberPayload)
		return
	}
	groupID, members, err := payload.ToEntities()
	if err != nil {
		abortWithAppError(c, errInvalidMemberPayload)
		return
	}

	n, err := h.usecase.BulkUpload(c.Request.Context(), middleware.TenantID(c), groupID, members)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.BulkUploadResponse{GroupID: groupID, Created: n})
}

// ListMembers requires the group_id query parameter.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.usecase.ListByGroup(c.Request.Context(), middleware.TenantID(c), c.Query("group_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMembers(members))
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.usecase.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMember(member))
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var payload request.UpdateMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidMemberPayload)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		abortWithAppError(c, errInvalidMemberPayload)
		return
	}

	member, err := h.usecase.Update(c.Request.Context(), middleware.TenantID(c), c.Param("id"), patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMember(member))
}
