package postgres

import (
	"regexp"
	"strings"

	"nextstep/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Default postgres names of the learner foreign keys.
const (
	threadsLearnerFK  = "threads_learner_id_fkey"
	bookingsLearnerFK = "bookings_learner_id_fkey"
)

var constraintInMessage = regexp.MustCompile(`constraint "([^"]+)"`)

// isUniqueConstraintViolation recognises duplicate-key failures whether or not
// gorm error translation is enabled on the connection.
func isUniqueConstraintViolation(err error) bool {
	return matchesConstraint(err, gorm.ErrDuplicatedKey, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return matchesConstraint(err, gorm.ErrForeignKeyViolated, pgForeignKeyViolation)
}

func matchesConstraint(err, gormErr error, code string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gormErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	// pgx errors render as "... (SQLSTATE 23505)".
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}

// violatedConstraint returns the name of the constraint an insert or update
// broke, or "" when the driver error does not carry one.
func violatedConstraint(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	if m := constraintInMessage.FindStringSubmatch(err.Error()); m != nil {
		return m[1]
	}

	return ""
}
