package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/themobileprof/medicare-be/internal/api/middleware"
	"github.com/themobileprof/medicare-be/internal/consultation"
	"github.com/themobileprof/medicare-be/internal/db"
	"github.com/themobileprof/medicare-be/internal/symptoms"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
	// maxConsultBodyBytes leaves room for JSON escaping around the symptom text
	maxConsultBodyBytes = 2 * consultation.MaxSymptomBytes
)

// ConsultationHandler handles symptom consultation endpoints
type ConsultationHandler struct {
	service *consultation.Service
	db      *db.DB
}

// NewConsultationHandler creates a new consultation handler
func NewConsultationHandler(service *consultation.Service, database *db.DB) *ConsultationHandler {
	return &ConsultationHandler{
		service: service,
		db:      database,
	}
}

// ConsultRequest carries a free-text symptom description
type ConsultRequest struct {
	Symptoms string `json:"symptoms"`
}

// ConsultationResponse represents a stored consultation
type ConsultationResponse struct {
	ID        string           `json:"id"`
	Symptoms  string           `json:"symptoms"`
	Advice    string           `json:"advice"`
	Urgency   symptoms.Urgency `json:"urgency"`
	CreatedAt time.Time        `json:"created_at"`
}

// Consult resolves symptoms to advice and records the consultation
// POST /api/consultations
func (h *ConsultationHandler) Consult(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxConsultBodyBytes)

	var req ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	advice, err := h.service.Consult(c.Request.Context(), middleware.GetUserID(c), req.Symptoms)
	if err != nil {
		status, msg := consultErrorStatus(err)
		if status == http.StatusInternalServerError {
			_ = c.Error(err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, advice)
}

// ListConsultations returns the caller's consultation history, newest first
// GET /api/consultations?limit=50
func (h *ConsultationHandler) ListConsultations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	consultations, err := h.db.GetUserConsultations(c.Request.Context(), middleware.GetUserID(c), limit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve consultations"})
		return
	}

	response := make([]ConsultationResponse, 0, len(consultations))
	for _, co := range consultations {
		response = append(response, ConsultationResponse{
			ID:        co.ID,
			Symptoms:  co.SymptomText,
			Advice:    co.AdviceText,
			Urgency:   co.Urgency,
			CreatedAt: co.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"consultations": response,
		"count":         len(response),
	})
}

// consultErrorStatus maps consultation errors to an HTTP status and client message
func consultErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, consultation.ErrEmptySymptoms):
		return http.StatusBadRequest, "No symptoms provided"
	case errors.Is(err, consultation.ErrSymptomsTooLong):
		return http.StatusRequestEntityTooLarge, "Symptom description too long"
	case errors.Is(err, db.ErrUnknownUser):
		return http.StatusNotFound, "User not found"
	default:
		return http.StatusInternalServerError, "Failed to process consultation"
	}
}
