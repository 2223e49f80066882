package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/themobileprof/medicare-be/internal/api/middleware"
	"github.com/themobileprof/medicare-be/internal/consultation"
	"github.com/themobileprof/medicare-be/internal/db"
	"go.uber.org/zap"
)

// RouterConfig carries everything the HTTP surface depends on
type RouterConfig struct {
	DB             *db.DB
	Consultations  *consultation.Service
	Logger         *zap.Logger
	AllowedOrigins []string
	IPLimiter      *middleware.RateLimiter
	UserLimiter    *middleware.RateLimiter
	// WSConsult serves GET /ws/consult; nil leaves the route unregistered
	WSConsult gin.HandlerFunc
	// Metrics serves GET /metrics; nil leaves the route unregistered
	Metrics http.Handler
}

// NewRouter builds the gin engine with every route and middleware applied
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())
	if cfg.IPLimiter != nil {
		router.Use(middleware.PerIP(cfg.IPLimiter))
	}

	userHandler := NewUserHandler(cfg.DB)
	consultationHandler := NewConsultationHandler(cfg.Consultations, cfg.DB)
	medicationHandler := NewMedicationHandler(cfg.DB)
	reportHandler := NewReportHandler(cfg.DB)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	// Registration hands out the identity, so it is open
	router.POST("/api/users", userHandler.CreateUser)

	protected := router.Group("/api")
	protected.Use(middleware.RequireUser())
	if cfg.UserLimiter != nil {
		protected.Use(middleware.PerUser(cfg.UserLimiter))
	}
	{
		protected.GET("/users/me", userHandler.Me)

		protected.POST("/consultations", consultationHandler.Consult)
		protected.GET("/consultations", consultationHandler.ListConsultations)

		protected.POST("/medications", medicationHandler.CreateMedication)
		protected.GET("/medications", medicationHandler.GetMedications)
		protected.GET("/reminders", medicationHandler.GetReminders)

		protected.POST("/reports", reportHandler.GenerateReport)
	}

	if cfg.WSConsult != nil {
		router.GET("/ws/consult", middleware.RequireUser(), cfg.WSConsult)
	}

	return router
}
