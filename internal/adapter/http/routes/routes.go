package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "stoploss_quoting/docs"
	"stoploss_quoting/internal/adapter/http/handlers"
	"stoploss_quoting/internal/adapter/http/middleware"
	"stoploss_quoting/internal/adapter/persistence/repository"
	"stoploss_quoting/internal/config"
	"stoploss_quoting/internal/domain/narrative"
	"stoploss_quoting/internal/domain/riskscoring"
	"stoploss_quoting/internal/infrastructure/cache"
	"stoploss_quoting/internal/infrastructure/database"
	"stoploss_quoting/internal/infrastructure/metrics"
	llm "stoploss_quoting/internal/infrastructure/narrative"
	"stoploss_quoting/internal/usecase"
	"stoploss_quoting/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Group        *handlers.GroupHandler
	Member       *handlers.MemberHandler
	Quote        *handlers.QuoteHandler
	Underwriting *handlers.UnderwritingHandler
	Policy       *handlers.PolicyHandler
	Analytics    *handlers.AnalyticsHandler
	Narrative    *handlers.NarrativeHandler
}

// Run wires the service from cfg and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	h, recorder, cleanup, err := getRoutes(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(logger, cfg.DefaultTenant, h, recorder.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

// NewRouter builds the gin engine. metricsHandler may be nil.
func NewRouter(logger zerolog.Logger, defaultTenant string, h Handlers, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("", middleware.Tenant(defaultTenant))
	addGroupRoutes(api, h.Group)
	addMemberRoutes(api, h.Member)
	addQuoteRoutes(api, h.Quote)
	addUnderwritingRoutes(api, h.Underwriting)
	addPolicyRoutes(api, h.Policy)
	addAnalyticsRoutes(api, h.Analytics)
	addNarrativeRoutes(api, h.Narrative)

	return router
}

func getRoutes(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Handlers, *metrics.Recorder, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, database.Settings{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return Handlers{}, nil, nil, err
	}

	groupRepo := repository.NewGroupDynamoRepository(ddb, cfg.GroupsTable)
	memberRepo := repository.NewMemberDynamoRepository(ddb, cfg.MembersTable)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
	reviewRepo := repository.NewReviewDynamoRepository(ddb, cfg.ReviewsTable)
	policyRepo := repository.NewPolicyDynamoRepository(ddb, cfg.PoliciesTable)

	var closers []func()
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	var dashboardCache interfaces.IDashboardCache
	if cfg.CacheEnabled() {
		client, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn().Err(err).Msg("dashboard cache disabled")
		} else {
			closers = append(closers, func() { _ = client.Close() })
			dashboardCache = cache.NewDashboardCache(client, cfg.DashboardCacheTTL())
		}
	}

	var llmGenerator interfaces.INarrativeGenerator
	if cfg.LLMEnabled() {
		gemini, err := llm.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn().Err(err).Msg("gemini narratives disabled")
		} else {
			closers = append(closers, func() { _ = gemini.Close() })
			llmGenerator = gemini
		}
	}

	recorder := metrics.NewRecorder()
	engine := riskscoring.NewEngine()

	groupUseCase := usecase.NewGroupUseCase(groupRepo)
	memberUseCase := usecase.NewMemberUseCase(memberRepo, groupRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, groupRepo, memberRepo, engine, recorder)
	underwritingUseCase := usecase.NewUnderwritingUseCase(reviewRepo, quoteRepo, groupRepo, memberRepo, engine, recorder)
	policyUseCase := usecase.NewPolicyUseCase(policyRepo, quoteRepo, recorder)
	analyticsUseCase := usecase.NewAnalyticsUseCase(groupRepo, quoteRepo, policyRepo, dashboardCache)
	narrativeUseCase := usecase.NewNarrativeUseCase(
		narrative.NewRulesGenerator(), llmGenerator, cfg.NarrativeTimeout(),
		quoteRepo, reviewRepo, groupRepo, recorder,
	)

	logger.Info().
		Bool("cache_enabled", dashboardCache != nil).
		Bool("llm_enabled", llmGenerator != nil).
		Str("region", cfg.AWSRegion).
		Msg("dependencies wired")

	return Handlers{
		Group:        handlers.NewGroupHandler(groupUseCase),
		Member:       handlers.NewMemberHandler(memberUseCase),
		Quote:        handlers.NewQuoteHandler(quoteUseCase),
		Underwriting: handlers.NewUnderwritingHandler(underwritingUseCase),
		Policy:       handlers.NewPolicyHandler(policyUseCase),
		Analytics:    handlers.NewAnalyticsHandler(analyticsUseCase),
		Narrative:    handlers.NewNarrativeHandler(narrativeUseCase),
	}, recorder, cleanup, nil
}

func setMiddlewares(router *gin.Engine, logger zerolog.Logger) {
	router.Use(middleware.Logger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
