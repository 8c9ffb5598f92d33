package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error carries the operation name alongside the underlying cause so
// handlers can surface a single client-facing message.
type Error struct {
	Op    string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %s - %s", e.Op, typeName(e.Cause), e.Cause.Error())
}

func (e *Error) Unwrap() error { return e.Cause }

func Wrap(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Op: op, Cause: cause}
}

func typeName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "PgError"
	}
	return fmt.Sprintf("%T", err)
}

// IsUniqueViolation reports whether err is a uniqueness constraint failure
// on either backend.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
