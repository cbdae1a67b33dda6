package usecase

import (
	"context"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// RoadmapUsecase serves curated learning roadmaps.
type RoadmapUsecase interface {
	Create(ctx context.Context, input *CreateRoadmapInput) (*entity.Roadmap, error)
	List(ctx context.Context) ([]*entity.Roadmap, error)
	ListByDomain(ctx context.Context, domain string) ([]*entity.Roadmap, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Roadmap, error)
}

// CreateRoadmapInput defines the data required to create a roadmap.
// TotalSteps is derived from Steps.
type CreateRoadmapInput struct {
	Title       string
	Description string
	Category    string
	Duration    string
	Difficulty  entity.Difficulty
	Steps       []entity.RoadmapStep
}
