package handlers

import (
	"net/http"

	"stoploss_quoting/internal/adapter/http/middleware"
	"stoploss_quoting/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	metrics, err := h.usecase.Dashboard(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
