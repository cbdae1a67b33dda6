package usecase

import (
	"context"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingUsecase manages the session lifecycle: booked by a learner, then
// given a link and completed by the owning mentor.
type BookingUsecase interface {
	// Book creates the booking and increments the mentor's session counter.
	// If the increment fails the booking stays and ErrPartialFailure is returned.
	Book(ctx context.Context, learnerUserID, mentorID uuid.UUID, input *BookSessionInput) (*entity.Booking, error)
	AddLink(ctx context.Context, caller entity.Caller, bookingID uuid.UUID, link string) (*entity.Booking, error)
	MarkCompleted(ctx context.Context, caller entity.Caller, bookingID uuid.UUID) (*entity.Booking, error)
	ListForMentor(ctx context.Context, caller entity.Caller) ([]*entity.Booking, error)
	ListForLearner(ctx context.Context, learnerUserID uuid.UUID) ([]*entity.Booking, error)

	// SessionQRCode renders the meeting link of one of the learner's bookings.
	SessionQRCode(ctx context.Context, learnerUserID, bookingID uuid.UUID) ([]byte, error)

	// CheckIn resolves a scanned session QR code to one of the mentor's bookings.
	// A code whose link no longer matches the booking is rejected.
	CheckIn(ctx context.Context, caller entity.Caller, qrData string) (*entity.Booking, error)
}

// BookSessionInput defines the data required to book a session.
type BookSessionInput struct {
	Date  string
	Time  string
	Topic string
}
