package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/themobileprof/medicare-be/internal/api/middleware"
	"github.com/themobileprof/medicare-be/internal/db"
	"github.com/themobileprof/medicare-be/internal/report"
)

const (
	defaultReportDays = 30
	maxReportDays     = 365
)

// ReportHandler generates consultation reports
type ReportHandler struct {
	db  *db.DB
	now func() time.Time
}

// NewReportHandler creates a new report handler
func NewReportHandler(database *db.DB) *ReportHandler {
	return &ReportHandler{
		db:  database,
		now: time.Now,
	}
}

// ReportRequest selects the reporting window; an empty body means 30 days
type ReportRequest struct {
	PeriodDays *int `json:"period_days"`
}

// GenerateReport summarizes the caller's consultations over the last N days
// POST /api/reports
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days := defaultReportDays
	if req.PeriodDays != nil {
		days = *req.PeriodDays
	}
	if days < 1 || days > maxReportDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period_days must be between 1 and 365"})
		return
	}

	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	user, err := h.db.GetUserByID(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	now := h.now()
	consultations, err := h.db.GetConsultationsSince(ctx, userID, now.AddDate(0, 0, -days))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": report.Build(report.Input{
			PeriodDays:    days,
			GeneratedAt:   now,
			PatientName:   user.Name,
			Consultations: consultations,
		}),
	})
}
