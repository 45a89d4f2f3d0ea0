package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/payrail/payment-orchestrator/internal/fees"
	"github.com/payrail/payment-orchestrator/internal/middleware"
	"github.com/payrail/payment-orchestrator/internal/repository"
	"github.com/payrail/payment-orchestrator/internal/service"
)

// NewRouter assembles the full route table: middleware, health,
// metrics, swagger and the API surface.
func NewRouter(pool *pgxpool.Pool) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := NewHealthHandler(pool)
	router.GET("/", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	SetupSwagger(router)

	txnRepo := repository.NewTransactionRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)
	schedule := fees.DefaultSchedule()

	quoteService := service.NewQuoteService(schedule, statsRepo)
	txnService := service.NewTransactionService(txnRepo)
	statsService := service.NewStatsService(statsRepo)

	checkoutHandler := NewCheckoutHandler(quoteService)
	feeHandler := NewFeeHandler(schedule)
	txnHandler := NewTransactionHandler(txnService)
	statsHandler := NewStatsHandler(statsService)

	api := router.Group("/api")
	{
		api.POST("/checkout", checkoutHandler.Checkout)
		api.GET("/calculate-fee", feeHandler.CalculateFee)
		api.POST("/transactions", txnHandler.Create)
		api.PUT("/transactions/:transaction_id", txnHandler.Update)
		api.GET("/transactions/:transaction_id", txnHandler.Get)
		api.GET("/transactions", txnHandler.List)
		api.GET("/success-rates", statsHandler.GetSuccessRates)
		api.GET("/success-rates/:gateway", statsHandler.GetGatewaySuccessRates)
	}

	return router
}
