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

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid underwriting review payload", http.StatusBadRequest)

type UnderwritingHandler struct {
	usecase usecase.IUnderwritingUseCase
}

func NewUnderwritingHandler(uc usecase.IUnderwritingUseCase) *UnderwritingHandler {
	return &UnderwritingHandler{usecase: uc}
}

// SubmitForReview runs the automatic underwriting decision on a draft quote.
func (h *UnderwritingHandler) SubmitForReview(c *gin.Context) {
	review, err := h.usecase.SubmitForReview(c.Request.Context(), middleware.TenantID(c), c.Param("quote_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromReview(review))
}

func (h *UnderwritingHandler) ManualReview(c *gin.Context) {
	var payload request.ManualReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidReviewPayload)
		return
	}

	review, err := h.usecase.ManualReview(c.Request.Context(), middleware.TenantID(c), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReview(review))
}

func (h *UnderwritingHandler) GetByQuote(c *gin.Context) {
	review, err := h.usecase.GetByQuoteID(c.Request.Context(), middleware.TenantID(c), c.Param("quote_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReview(review))
}

func (h *UnderwritingHandler) ListReviews(c *gin.Context) {
	reviews, err := h.usecase.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(reviews))
}
