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

var errInvalidPolicyPayload = pkg.NewDomainErrorSimple("INVALID_POLICY_INPUT", "Invalid policy payload", http.StatusBadRequest)

type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

// BindQuote turns an approved quote into a policy.
func (h *PolicyHandler) BindQuote(c *gin.Context) {
	var payload request.BindPolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPolicyPayload)
		return
	}

	policy, err := h.usecase.BindQuote(c.Request.Context(), middleware.TenantID(c), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPolicy(policy))
}

func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	policies, err := h.usecase.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPolicies(policies))
}

func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	policy, err := h.usecase.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(policy))
}

func (h *PolicyHandler) UpdatePolicyStatus(c *gin.Context) {
	var payload request.UpdatePolicyStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPolicyPayload)
		return
	}

	policy, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.TenantID(c), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(policy))
}
