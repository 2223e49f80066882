package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/themobileprof/medicare-be/internal/api/middleware"
	"github.com/themobileprof/medicare-be/internal/db"
)

// UserHandler handles user profile endpoints
type UserHandler struct {
	db *db.DB
}

// NewUserHandler creates a new user handler
func NewUserHandler(database *db.DB) *UserHandler {
	return &UserHandler{
		db: database,
	}
}

// CreateUserRequest represents a user registration request
type CreateUserRequest struct {
	Name              string `json:"name" binding:"required"`
	Age               *int   `json:"age" binding:"omitempty,min=0,max=150"`
	MedicalConditions string `json:"medical_conditions"`
	Allergies         string `json:"allergies"`
}

// UserResponse represents a user profile
type UserResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Age               *int      `json:"age,omitempty"`
	MedicalConditions string    `json:"medical_conditions,omitempty"`
	Allergies         string    `json:"allergies,omitempty"`
	RegisteredAt      time.Time `json:"registered_at"`
}

// CreateUser registers a user. The returned id is the caller's identity
// for every other endpoint.
// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &db.User{
		Name:              req.Name,
		Age:               req.Age,
		MedicalConditions: optional(req.MedicalConditions),
		Allergies:         optional(req.Allergies),
	}

	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

// Me returns the profile of the calling user
// GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.db.GetUserByID(c.Request.Context(), middleware.GetUserID(c))
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

func userToResponse(user *db.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Name:              user.Name,
		Age:               user.Age,
		MedicalConditions: deref(user.MedicalConditions),
		Allergies:         deref(user.Allergies),
		RegisteredAt:      user.RegisteredAt,
	}
}

// optional maps "" to NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
