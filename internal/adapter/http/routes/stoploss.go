package routes

import (
	"stoploss_quoting/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGroups       = "/groups"
	PathMembers      = "/members"
	PathQuotes       = "/quotes"
	PathUnderwriting = "/underwriting"
	PathPolicies     = "/policies"
	PathAnalytics    = "/analytics"
	PathNarratives   = "/narratives"
)

func addGroupRoutes(rg *gin.RouterGroup, h *handlers.GroupHandler) {
	groups := rg.Group(PathGroups)
	{
		groups.POST("", h.CreateGroup)
		groups.GET("", h.ListGroups)
		groups.GET("/:id", h.GetGroup)
		groups.PUT("/:id", h.UpdateGroup)
		groups.DELETE("/:id", h.DeleteGroup)
	}
}

func addMemberRoutes(rg *gin.RouterGroup, h *handlers.MemberHandler) {
	members := rg.Group(PathMembers)
	{
		members.POST("", h.CreateMember)
		members.POST("/bulk", h.BulkUpload)
		members.GET("", h.ListMembers)
		members.GET("/:id", h.GetMember)
		members.PUT("/:id", h.UpdateMember)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.GenerateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id/status", h.UpdateQuoteStatus)
	}
}

func addUnderwritingRoutes(rg *gin.RouterGroup, h *handlers.UnderwritingHandler) {
	uw := rg.Group(PathUnderwriting)
	{
		uw.POST("/submit/:quote_id", h.SubmitForReview)
		uw.PUT("/review", h.ManualReview)
		uw.GET("/quote/:quote_id", h.GetByQuote)
		uw.GET("", h.ListReviews)
	}
}

func addPolicyRoutes(rg *gin.RouterGroup, h *handlers.PolicyHandler) {
	policies := rg.Group(PathPolicies)
	{
		policies.POST("/bind", h.BindQuote)
		policies.GET("", h.ListPolicies)
		policies.GET("/:id", h.GetPolicy)
		policies.PUT("/:id/status", h.UpdatePolicyStatus)
	}
}

func addAnalyticsRoutes(rg *gin.RouterGroup, h *handlers.AnalyticsHandler) {
	rg.Group(PathAnalytics).GET("/dashboard", h.Dashboard)
}

func addNarrativeRoutes(rg *gin.RouterGroup, h *handlers.NarrativeHandler) {
	narratives := rg.Group(PathNarratives)
	{
		narratives.POST("/generate", h.Generate)
		narratives.POST("/quotes/:quote_id", h.GenerateForQuote)
	}
}
