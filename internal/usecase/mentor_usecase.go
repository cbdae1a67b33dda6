package usecase

import (
	"context"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// MentorUsecase is the public mentor directory.
type MentorUsecase interface {
	List(ctx context.Context) ([]*entity.MentorSummary, error)
	GetByID(ctx context.Context, mentorID uuid.UUID) (*entity.MentorSummary, error)

	// Add creates a profile that is not linked to any user.
	Add(ctx context.Context, input *AddMentorInput) (*entity.Mentor, error)
}

// AddMentorInput defines the data required to create an unlinked mentor.
type AddMentorInput struct {
	Name         string
	Title        string
	Company      string
	Avatar       string
	Rating       float64
	Skills       []string
	Domain       string
	HourlyRate   float64
	Bio          string
	LinkedIn     string
	GitHub       string
	Experience   int
	Availability string
	Languages    []string
	Education    []string
}
