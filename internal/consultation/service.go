package consultation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/themobileprof/medicare-be/internal/db"
	"github.com/themobileprof/medicare-be/internal/privacy"
	"github.com/themobileprof/medicare-be/internal/symptoms"
	"go.uber.org/zap"
)

// MaxSymptomBytes caps the length of one symptom description
const MaxSymptomBytes = 4096

var (
	// ErrEmptySymptoms is returned for blank symptom descriptions
	ErrEmptySymptoms = errors.New("no symptoms provided")
	// ErrSymptomsTooLong is returned for descriptions over MaxSymptomBytes
	ErrSymptomsTooLong = errors.New("symptom description too long")
)

// Recorder persists consultations
type Recorder interface {
	CreateConsultation(ctx context.Context, c *db.Consultation) error
}

// Service resolves symptom descriptions and logs each one as a consultation
type Service struct {
	resolver *symptoms.Resolver
	store    Recorder
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates a consultation service
func NewService(resolver *symptoms.Resolver, store Recorder, log *zap.Logger) *Service {
	return &Service{
		resolver: resolver,
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

// Consult resolves text for userID and records exactly one consultation.
// Advice is only returned once the consultation has been stored.
func (s *Service) Consult(ctx context.Context, userID, text string) (symptoms.Advice, error) {
	if strings.TrimSpace(text) == "" {
		return symptoms.Advice{}, ErrEmptySymptoms
	}
	if len(text) > MaxSymptomBytes {
		return symptoms.Advice{}, ErrSymptomsTooLong
	}

	advice := s.resolver.Resolve(text)

	record := &db.Consultation{
		UserID:      userID,
		SymptomText: text,
		AdviceText:  advice.Text,
		Urgency:     advice.Urgency,
		CreatedAt:   s.now(),
	}
	if err := s.store.CreateConsultation(ctx, record); err != nil {
		s.log.Error("failed to record consultation",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return symptoms.Advice{}, err
	}

	s.log.Info("consultation recorded",
		zap.String("consultation_id", record.ID),
		zap.String("user_id", userID),
		zap.String("urgency", string(advice.Urgency)),
		zap.String("symptoms", privacy.SanitizeForLogging(text)),
		zap.Bool("contains_pii", privacy.ContainsPII(text)),
	)

	return advice, nil
}
