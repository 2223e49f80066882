package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateUser creates a new user
func (db *DB) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (name, age, medical_conditions, allergies)
		VALUES ($1, $2, $3, $4)
		RETURNING id, registered_at
	`

	err := db.QueryRowContext(ctx, query,
		user.Name, user.Age, user.MedicalConditions, user.Allergies,
	).Scan(&user.ID, &user.RegisteredAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (db *DB) GetUserByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, name, age, medical_conditions, allergies, registered_at
		FROM users
		WHERE id = $1
	`

	user := &User{}
	err := db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Age,
		&user.MedicalConditions, &user.Allergies, &user.RegisteredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
