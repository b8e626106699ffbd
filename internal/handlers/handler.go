package handlers

import (
	"time"

	"envmonitor/internal/logger"
	"envmonitor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultStreamInterval = 10 * time.Second

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		services:       services,
		log:            log,
		streamInterval: defaultStreamInterval,
	}
}

// SetStreamInterval overrides the live-channel sampling cadence (config knob).
func (h *Handler) SetStreamInterval(d time.Duration) {
	if d > 0 {
		h.streamInterval = d
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Minimal WebSocket connection (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerReadingRoutes(api)
		h.registerInsightRoutes(api)
	}
}

func (h *Handler) registerReadingRoutes(api *gin.RouterGroup) {
	readings := api.Group("/readings")
	{
		readings.GET("", h.getReadings)
		readings.POST("", h.postReading)
		readings.GET("/stream", h.streamReadings)
		readings.GET("/export", h.exportReadings)
	}
}

func (h *Handler) registerInsightRoutes(api *gin.RouterGroup) {
	api.GET("/stats", h.getStats)
	api.GET("/humidity/average", h.getRollingAverage)
}
