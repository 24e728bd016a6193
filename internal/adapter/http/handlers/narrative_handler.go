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

var errInvalidNarrativePayload = pkg.NewDomainErrorSimple("INVALID_NARRATIVE_INPUT", "Invalid narrative payload", http.StatusBadRequest)

type NarrativeHandler struct {
	usecase usecase.INarrativeUseCase
}

func NewNarrativeHandler(uc usecase.INarrativeUseCase) *NarrativeHandler {
	return &NarrativeHandler{usecase: uc}
}

func (h *NarrativeHandler) Generate(c *gin.Context) {
	var payload request.NarrativeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidNarrativePayload)
		return
	}

	n, err := h.usecase.Generate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNarrative(n))
}

// GenerateForQuote narrates the latest underwriting review of a quote.
func (h *NarrativeHandler) GenerateForQuote(c *gin.Context) {
	n, err := h.usecase.GenerateForQuote(c.Request.Context(), middleware.TenantID(c), c.Param("quote_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNarrative(n))
}
