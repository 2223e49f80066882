package db

import (
	"context"
	"fmt"
	"time"

	"github.com/themobileprof/medicare-be/internal/symptoms"
)

// CreateConsultation records a resolved symptom query. Rows are never updated.
// A zero CreatedAt is set to the current time.
func (db *DB) CreateConsultation(ctx context.Context, c *Consultation) error {
	if !c.Urgency.Valid() {
		return fmt.Errorf("failed to create consultation: invalid urgency %q", c.Urgency)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO consultations (user_id, symptom_text, advice_text, urgency, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := db.QueryRowContext(ctx, query,
		c.UserID, c.SymptomText, c.AdviceText, string(c.Urgency), c.CreatedAt,
	).Scan(&c.ID)
	if isForeignKeyViolation(err) {
		return ErrUnknownUser
	}
	if err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}

	return nil
}

// GetUserConsultations retrieves the N most recent consultations, newest first
func (db *DB) GetUserConsultations(ctx context.Context, userID string, limit int) ([]Consultation, error) {
	query := `
		SELECT id, user_id, symptom_text, advice_text, urgency, created_at
		FROM consultations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	return db.queryConsultations(ctx, query, userID, limit)
}

// GetConsultationsSince retrieves consultations created after since, oldest first
func (db *DB) GetConsultationsSince(ctx context.Context, userID string, since time.Time) ([]Consultation, error) {
	query := `
		SELECT id, user_id, symptom_text, advice_text, urgency, created_at
		FROM consultations
		WHERE user_id = $1 AND created_at > $2
		ORDER BY created_at ASC
	`

	return db.queryConsultations(ctx, query, userID, since)
}

func (db *DB) queryConsultations(ctx context.Context, query string, args ...interface{}) ([]Consultation, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get consultations: %w", err)
	}
	defer rows.Close()

	consultations := make([]Consultation, 0)
	for rows.Next() {
		var (
			c       Consultation
			urgency string
		)
		if err := rows.Scan(&c.ID, &c.UserID, &c.SymptomText, &c.AdviceText,
			&urgency, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan consultation: %w", err)
		}
		if c.Urgency, err = symptoms.ParseUrgency(urgency); err != nil {
			return nil, fmt.Errorf("failed to scan consultation %s: %w", c.ID, err)
		}
		consultations = append(consultations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate consultations: %w", err)
	}

	return consultations, nil
}

// CountConsultationsByUrgency returns how many consultations were recorded per urgency level
func (db *DB) CountConsultationsByUrgency(ctx context.Context) (map[symptoms.Urgency]int64, error) {
	query := `
		SELECT urgency, COUNT(*)
		FROM consultations
		GROUP BY urgency
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count consultations: %w", err)
	}
	defer rows.Close()

	counts := make(map[symptoms.Urgency]int64)
	for rows.Next() {
		var (
			urgency string
			count   int64
		)
		if err := rows.Scan(&urgency, &count); err != nil {
			return nil, fmt.Errorf("failed to scan urgency count: %w", err)
		}
		counts[symptoms.Urgency(urgency)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate urgency counts: %w", err)
	}

	return counts, nil
}
