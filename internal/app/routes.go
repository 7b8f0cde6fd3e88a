package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	return router
}

func RegisterOpsRoutes(r *gin.Engine, h *handlers.OpsHandler, gatherer prometheus.Gatherer) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/api/v1/logs/recent", h.RecentLogs)
}

func RegisterPaymentRoutes(r *gin.Engine, h *handlers.PaymentHandler) {
	api := r.Group("/api/v1")
	api.POST("/payments", h.Authorize)
}

func RegisterBatchRoutes(r *gin.Engine, h *handlers.BatchHandler) {
	api := r.Group("/api/v1")
	batch := api.Group("/batch/settlement")
	batch.POST("/run", h.RunSettlement)
	batch.GET("/jobs", h.ListJobs)
	batch.GET("/jobs/:jobId", h.GetJob)
	api.GET("/staging/summary", h.StagingSummary)
	api.GET("/staging/transactions/:transactionId", h.GetStagedTransaction)
}
