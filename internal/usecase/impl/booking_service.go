package impl

import (
	"context"
	"log/slog"
	"strings"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/domain/service"
	"nextstep/internal/errors"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo repository.BookingRepository
	MentorRepo  repository.MentorRepository
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// bookingService implements usecase.BookingUsecase.
type bookingService struct {
	bookingRepo repository.BookingRepository
	mentorRepo  repository.MentorRepository
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: params.BookingRepo,
		mentorRepo:  params.MentorRepo,
		qrcode:      params.QRCode,
		logger:      params.Logger,
	}
}

// Book writes two entities: the booking, then the mentor's session counter.
// The counter counts booked sessions, not delivered ones.
func (srv *bookingService) Book(ctx context.Context, learnerUserID, mentorID uuid.UUID, input *usecase.BookSessionInput) (*entity.Booking, error) {
	mentor, err := srv.mentorRepo.FindByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrMentorNotFound) {
			return nil, domainerrors.ErrMentorNotFound
		}

		return nil, errors.Wrap(err, "failed to find mentor")
	}

	date := strings.TrimSpace(input.Date)
	clock := strings.TrimSpace(input.Time)
	if date == "" || clock == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("date and time are required")
	}

	booking := &entity.Booking{
		MentorID:     mentor.ID,
		LearnerID:    learnerUserID,
		Domain:       mentor.Domain,
		Date:         entity.SessionDate(date, clock),
		Topic:        strings.TrimSpace(input.Topic),
		MentorName:   mentor.Name,
		MentorAvatar: mentor.Avatar,
	}
	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, mapReferenceErr(err, "failed to create booking")
	}

	if err := srv.mentorRepo.IncrementSessions(ctx, mentor.ID); err != nil {
		srv.logger.ErrorContext(ctx, "Booking stored but session counter not incremented",
			slog.String("bookingID", booking.ID.String()),
			slog.String("mentorID", mentor.ID.String()),
			slog.Any("error", err),
		)

		return booking, errors.Wrapf(
			domainerrors.ErrPartialFailure.WithDetails("booking "+booking.ID.String()+" created, session counter not updated"),
			"increment sessions: %v", err,
		)
	}

	srv.logger.InfoContext(ctx, "Session booked",
		slog.String("bookingID", booking.ID.String()),
		slog.String("mentorID", mentor.ID.String()),
		slog.String("learnerID", learnerUserID.String()),
	)

	return booking, nil
}

func (srv *bookingService) AddLink(ctx context.Context, caller entity.Caller, bookingID uuid.UUID, link string) (*entity.Booking, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("link is required")
	}

	booking, err := srv.findOwned(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}

	if err := srv.bookingRepo.SetLink(ctx, booking.ID, caller.MentorID, link); err != nil {
		return nil, srv.mapBookingErr(err, "failed to set session link")
	}
	booking.Link = link

	return booking, nil
}

// MarkCompleted is idempotent; completing a completed booking succeeds.
func (srv *bookingService) MarkCompleted(ctx context.Context, caller entity.Caller, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.findOwned(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Completed {
		return booking, nil
	}

	if err := srv.bookingRepo.MarkCompleted(ctx, booking.ID, caller.MentorID); err != nil {
		return nil, srv.mapBookingErr(err, "failed to complete session")
	}
	booking.Completed = true

	return booking, nil
}

func (srv *bookingService) findOwned(ctx context.Context, caller entity.Caller, bookingID uuid.UUID) (*entity.Booking, error) {
	if !caller.IsMentor() {
		return nil, domainerrors.ErrInvalidRole
	}

	booking, err := srv.bookingRepo.FindForMentor(ctx, bookingID, caller.MentorID)
	if err != nil {
		return nil, srv.mapBookingErr(err, "failed to find booking")
	}

	return booking, nil
}

// mapReferenceErr reports a mentor or learner that vanished before an insert
// as not found.
func mapReferenceErr(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrMentorNotFound):
		return domainerrors.ErrMentorNotFound
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, msg)
}

func (srv *bookingService) mapBookingErr(err error, msg string) error {
	if errors.Is(err, repository.ErrBookingNotFound) {
		return domainerrors.ErrBookingNotFound
	}

	return errors.Wrap(err, msg)
}

func (srv *bookingService) ListForMentor(ctx context.Context, caller entity.Caller) ([]*entity.Booking, error) {
	if !caller.IsMentor() {
		return nil, domainerrors.ErrInvalidRole
	}

	bookings, err := srv.bookingRepo.ListByMentor(ctx, caller.MentorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mentor sessions")
	}

	return bookings, nil
}

func (srv *bookingService) ListForLearner(ctx context.Context, learnerUserID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByLearner(ctx, learnerUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list learner sessions")
	}

	return bookings, nil
}

func (srv *bookingService) SessionQRCode(ctx context.Context, learnerUserID, bookingID uuid.UUID) ([]byte, error) {
	booking, err := srv.bookingRepo.FindForLearner(ctx, bookingID, learnerUserID)
	if err != nil {
		return nil, srv.mapBookingErr(err, "failed to find booking")
	}
	if booking.Link == "" {
		return nil, domainerrors.ErrSessionLinkMissing
	}

	png, err := srv.qrcode.GenerateSessionQR(booking.ID, booking.Link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render session QR code")
	}

	return png, nil
}

func (srv *bookingService) CheckIn(ctx context.Context, caller entity.Caller, qrData string) (*entity.Booking, error) {
	if !caller.IsMentor() {
		return nil, domainerrors.ErrInvalidRole
	}

	bookingID, link, err := srv.qrcode.ParseSessionQR(strings.TrimSpace(qrData))
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("unreadable session QR code")
	}

	booking, err := srv.findOwned(ctx, caller, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Link != link {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("session QR code is outdated")
	}

	srv.logger.InfoContext(ctx, "Session checked in",
		slog.String("bookingID", booking.ID.String()),
		slog.String("mentorID", caller.MentorID.String()),
	)

	return booking, nil
}
