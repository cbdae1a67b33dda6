package impl

import (
	"context"
	"strings"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/errors"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
)

type roadmapService struct {
	roadmapRepo repository.RoadmapRepository
}

func NewRoadmapService(roadmapRepo repository.RoadmapRepository) usecase.RoadmapUsecase {
	return &roadmapService{roadmapRepo: roadmapRepo}
}

func (srv *roadmapService) Create(ctx context.Context, input *usecase.CreateRoadmapInput) (*entity.Roadmap, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	if title == "" || category == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("title and category are required")
	}
	if !input.Difficulty.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("difficulty must be Beginner, Intermediate or Advanced")
	}

	steps := input.Steps
	if steps == nil {
		steps = []entity.RoadmapStep{}
	}

	roadmap := &entity.Roadmap{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		Duration:    strings.TrimSpace(input.Duration),
		Difficulty:  input.Difficulty,
		TotalSteps:  len(steps),
		Steps:       steps,
	}
	if err := srv.roadmapRepo.Create(ctx, roadmap); err != nil {
		return nil, errors.Wrap(err, "failed to create roadmap")
	}

	return roadmap, nil
}

func (srv *roadmapService) List(ctx context.Context) ([]*entity.Roadmap, error) {
	roadmaps, err := srv.roadmapRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roadmaps")
	}

	return roadmaps, nil
}

// ListByDomain matches the roadmap category case-insensitively.
func (srv *roadmapService) ListByDomain(ctx context.Context, domain string) ([]*entity.Roadmap, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("domain is required")
	}

	roadmaps, err := srv.roadmapRepo.ListByCategory(ctx, domain)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roadmaps by domain")
	}

	return roadmaps, nil
}

func (srv *roadmapService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Roadmap, error) {
	roadmap, err := srv.roadmapRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoadmapNotFound) {
			return nil, domainerrors.ErrRoadmapNotFound
		}

		return nil, errors.Wrap(err, "failed to find roadmap")
	}

	return roadmap, nil
}
