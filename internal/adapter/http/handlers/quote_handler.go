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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GenerateQuote prices a new draft quote for a group.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	var payload request.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidQuotePayload)
		return
	}
	params, err := payload.ToParams()
	if err != nil {
		abortWithAppError(c, errInvalidQuotePayload)
		return
	}

	quote, err := h.usecase.GenerateQuote(c.Request.Context(), middleware.TenantID(c), payload.ResolveGroupID(), params)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidQuotePayload)
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.TenantID(c), c.Param("id"), payload.ResolveStatus(), payload.Notes)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}
