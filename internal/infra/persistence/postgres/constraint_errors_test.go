package postgres

import (
	"fmt"
	"testing"

	"nextstep/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm translated", errors.Wrap(gorm.ErrDuplicatedKey, "insert"), true},
		{"lib/pq error", &pq.Error{Code: "23505"}, true},
		{"lib/pq other code", &pq.Error{Code: "23503"}, false},
		{"pgx message", fmt.Errorf(`ERROR: duplicate key value violates unique constraint "idx_mentors_user_id" (SQLSTATE 23505)`), true},
		{"unrelated", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pq.Error{Code: "23503"}))
	assert.True(t, isForeignKeyConstraintViolation(fmt.Errorf("insert or update violates foreign key constraint (SQLSTATE 23503)")))
	assert.False(t, isForeignKeyConstraintViolation(&pq.Error{Code: "23505"}))
}

func TestViolatedConstraint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"pgx error", &pgconn.PgError{Code: "23503", ConstraintName: threadsLearnerFK}, threadsLearnerFK},
		{"wrapped pgx error", errors.Wrap(&pgconn.PgError{Code: "23503", ConstraintName: "threads_mentor_id_fkey"}, "insert"), "threads_mentor_id_fkey"},
		{"lib/pq error", &pq.Error{Code: "23503", Constraint: bookingsLearnerFK}, bookingsLearnerFK},
		{"message only", fmt.Errorf(`ERROR: insert or update on table "bookings" violates foreign key constraint "bookings_mentor_id_fkey" (SQLSTATE 23503)`), "bookings_mentor_id_fkey"},
		{"translated by gorm", gorm.ErrForeignKeyViolated, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, violatedConstraint(tt.err))
		})
	}
}
