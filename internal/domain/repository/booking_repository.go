package repository

import (
	"context"
	"errors"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when no booking matches both id and owner.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository persists session bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error

	// FindForMentor loads a booking only if it belongs to the mentor profile.
	FindForMentor(ctx context.Context, id, mentorID uuid.UUID) (*entity.Booking, error)

	// FindForLearner loads a booking only if it belongs to the learner.
	FindForLearner(ctx context.Context, id, learnerID uuid.UUID) (*entity.Booking, error)

	// SetLink updates only the meeting link of a mentor's booking.
	SetLink(ctx context.Context, id, mentorID uuid.UUID, link string) error

	// MarkCompleted sets completed=true on a mentor's booking. Repeating it is a no-op.
	MarkCompleted(ctx context.Context, id, mentorID uuid.UUID) error

	// ListByMentor returns the mentor's bookings with learner names.
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entity.Booking, error)

	// ListByLearner returns the learner's bookings with mentor name and avatar.
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.Booking, error)
}
