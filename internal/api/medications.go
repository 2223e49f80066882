package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/themobileprof/medicare-be/internal/api/middleware"
	"github.com/themobileprof/medicare-be/internal/db"
)

const (
	timeOfDayLayout = "15:04"
	dateLayout      = "2006-01-02"
)

// MedicationHandler handles medication and reminder endpoints
type MedicationHandler struct {
	db *db.DB
}

// NewMedicationHandler creates a new medication handler
func NewMedicationHandler(database *db.DB) *MedicationHandler {
	return &MedicationHandler{
		db: database,
	}
}

// CreateMedicationRequest represents a medication creation request
type CreateMedicationRequest struct {
	Name     string   `json:"name" binding:"required"`
	Dose     string   `json:"dose"`
	Schedule []string `json:"schedule"`
	EndDate  string   `json:"end_date"`
}

// MedicationResponse represents a medication
type MedicationResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Dose      string   `json:"dose,omitempty"`
	Schedule  []string `json:"schedule"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
}

// ReminderResponse is one scheduled intake of a medication
type ReminderResponse struct {
	MedicationID string `json:"medication_id"`
	Medication   string `json:"medication"`
	Dose         string `json:"dose,omitempty"`
	Time         string `json:"time"`
}

// CreateMedication adds a medication starting today
// POST /api/medications
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var req CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := normalizeSchedule(req.Schedule)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med := &db.Medication{
		UserID:   middleware.GetUserID(c),
		Name:     req.Name,
		Dose:     optional(req.Dose),
		Schedule: schedule,
	}

	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		med.EndDate = &end
	}

	err = h.db.CreateMedication(c.Request.Context(), med)
	if errors.Is(err, db.ErrUnknownUser) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add medication"})
		return
	}

	c.JSON(http.StatusCreated, medicationToResponse(med))
}

// GetMedications lists the caller's medications
// GET /api/medications
func (h *MedicationHandler) GetMedications(c *gin.Context) {
	meds, err := h.db.GetUserMedications(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medications"})
		return
	}

	response := make([]MedicationResponse, 0, len(meds))
	for i := range meds {
		response = append(response, medicationToResponse(&meds[i]))
	}

	c.JSON(http.StatusOK, response)
}

// GetReminders expands each medication into one reminder per scheduled time
// GET /api/reminders
func (h *MedicationHandler) GetReminders(c *gin.Context) {
	meds, err := h.db.GetUserMedications(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminders"})
		return
	}

	c.JSON(http.StatusOK, buildReminders(meds))
}

func buildReminders(meds []db.Medication) []ReminderResponse {
	reminders := make([]ReminderResponse, 0)
	for _, med := range meds {
		for _, at := range med.Schedule {
			reminders = append(reminders, ReminderResponse{
				MedicationID: med.ID,
				Medication:   med.Name,
				Dose:         deref(med.Dose),
				Time:         at,
			})
		}
	}
	return reminders
}

// normalizeSchedule validates HH:MM entries and zero-pads them ("8:00" -> "08:00")
func normalizeSchedule(schedule []string) ([]string, error) {
	out := make([]string, 0, len(schedule))
	for _, s := range schedule {
		t, err := time.Parse(timeOfDayLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule time %q, expected HH:MM", s)
		}
		out = append(out, t.Format(timeOfDayLayout))
	}
	return out, nil
}

func medicationToResponse(med *db.Medication) MedicationResponse {
	resp := MedicationResponse{
		ID:        med.ID,
		Name:      med.Name,
		Dose:      deref(med.Dose),
		Schedule:  med.Schedule,
		StartDate: med.StartDate.Format(dateLayout),
	}
	if resp.Schedule == nil {
		resp.Schedule = []string{}
	}
	if med.EndDate != nil {
		resp.EndDate = med.EndDate.Format(dateLayout)
	}
	return resp
}
