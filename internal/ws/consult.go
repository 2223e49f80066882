package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/themobileprof/medicare-be/internal/api/middleware"
	"github.com/themobileprof/medicare-be/internal/consultation"
	"github.com/themobileprof/medicare-be/internal/db"
	"github.com/themobileprof/medicare-be/internal/symptoms"
	"go.uber.org/zap"
)

const (
	writeWait = 10 * time.Second
	// maxMessageSize leaves room for the JSON envelope so oversized symptom
	// text is answered with an error instead of closing the connection
	maxMessageSize = 2 * consultation.MaxSymptomBytes
)

// ConsultHandler serves live consultations over WebSocket. Every symptom
// message is resolved and recorded exactly like POST /api/consultations.
type ConsultHandler struct {
	service           *consultation.Service
	upgrader          websocket.Upgrader
	messagesPerMinute int
	log               *zap.Logger
}

// NewConsultHandler creates a WebSocket consultation handler. An empty
// allowedOrigins list accepts every origin.
func NewConsultHandler(service *consultation.Service, allowedOrigins []string, messagesPerMinute int, log *zap.Logger) *ConsultHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &ConsultHandler{
		service: service,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return len(allowed) == 0 || allowed[r.Header.Get("Origin")]
			},
		},
		messagesPerMinute: messagesPerMinute,
		log:               log,
	}
}

// IncomingMessage represents a message from the client
type IncomingMessage struct {
	Symptoms string `json:"symptoms"`
}

// OutgoingMessage represents a message to the client
type OutgoingMessage struct {
	Type    string           `json:"type"` // "advice", "error"
	Content string           `json:"content,omitempty"`
	Advice  *symptoms.Advice `json:"advice,omitempty"`
}

// HandleConsult upgrades the connection and answers symptom messages until
// the client disconnects. Identity comes from middleware.RequireUser.
func (h *ConsultHandler) HandleConsult(c *gin.Context) {
	userID := middleware.GetUserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	limiter := middleware.NewMessageLimiter(h.messagesPerMinute)

	h.log.Info("websocket connected", zap.String("user_id", userID))

	for {
		var msg IncomingMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read failed", zap.String("user_id", userID), zap.Error(err))
			}
			return
		}

		if !limiter.Allow() {
			if err := h.send(conn, OutgoingMessage{Type: "error", Content: "Rate limit exceeded. Please slow down."}); err != nil {
				return
			}
			continue
		}

		if err := h.processMessage(c.Request.Context(), conn, userID, msg.Symptoms); err != nil {
			h.log.Warn("websocket write failed", zap.String("user_id", userID), zap.Error(err))
			return
		}
	}
}

// processMessage resolves one message and replies. Only write errors are returned.
func (h *ConsultHandler) processMessage(ctx context.Context, conn *websocket.Conn, userID, text string) error {
	advice, err := h.service.Consult(ctx, userID, text)
	if err != nil {
		return h.send(conn, OutgoingMessage{Type: "error", Content: errorMessage(err)})
	}

	return h.send(conn, OutgoingMessage{Type: "advice", Advice: &advice})
}

func (h *ConsultHandler) send(conn *websocket.Conn, msg OutgoingMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, consultation.ErrEmptySymptoms):
		return "No symptoms provided"
	case errors.Is(err, consultation.ErrSymptomsTooLong):
		return "Symptom description too long"
	case errors.Is(err, db.ErrUnknownUser):
		return "User not found"
	default:
		return "Failed to process consultation"
	}
}
