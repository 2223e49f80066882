package db

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

// CreateMedication stores a medication; StartDate defaults to today in the database
func (db *DB) CreateMedication(ctx context.Context, med *Medication) error {
	query := `
		INSERT INTO medications (user_id, name, dose, schedule, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, start_date, created_at
	`

	if med.Schedule == nil {
		med.Schedule = []string{}
	}

	err := db.QueryRowContext(ctx, query,
		med.UserID, med.Name, med.Dose, pq.Array(med.Schedule), med.EndDate,
	).Scan(&med.ID, &med.StartDate, &med.CreatedAt)
	if isForeignKeyViolation(err) {
		return ErrUnknownUser
	}
	if err != nil {
		return fmt.Errorf("failed to create medication: %w", err)
	}

	return nil
}

// GetUserMedications retrieves a user's medications in the order they were added
func (db *DB) GetUserMedications(ctx context.Context, userID string) ([]Medication, error) {
	query := `
		SELECT id, user_id, name, dose, schedule, start_date, end_date, created_at
		FROM medications
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get medications: %w", err)
	}
	defer rows.Close()

	meds := make([]Medication, 0)
	for rows.Next() {
		var med Medication
		if err := rows.Scan(&med.ID, &med.UserID, &med.Name, &med.Dose,
			pq.Array(&med.Schedule), &med.StartDate, &med.EndDate, &med.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan medication: %w", err)
		}
		meds = append(meds, med)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate medications: %w", err)
	}

	return meds, nil
}
