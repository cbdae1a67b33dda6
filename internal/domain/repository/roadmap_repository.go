package repository

import (
	"context"
	"errors"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoadmapNotFound is returned when no roadmap matches a lookup.
var ErrRoadmapNotFound = errors.New("roadmap not found")

// RoadmapRepository persists learning roadmaps.
type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *entity.Roadmap) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Roadmap, error)
	List(ctx context.Context) ([]*entity.Roadmap, error)

	// ListByCategory matches the category case-insensitively.
	ListByCategory(ctx context.Context, category string) ([]*entity.Roadmap, error)
}
