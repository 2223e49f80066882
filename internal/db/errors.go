package db

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnknownUser = errors.New("user does not exist")
)

// foreignKeyViolation is the postgres SQLSTATE for a broken reference
const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
