package postgres

import (
	"context"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/errors"
	"nextstep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// roadmapRepository implements repository.RoadmapRepository.
type roadmapRepository struct {
	db *gorm.DB
}

// NewRoadmapRepository is the constructor for roadmapRepository.
func NewRoadmapRepository(db *gorm.DB) repository.RoadmapRepository {
	return &roadmapRepository{db: db}
}

func (repo *roadmapRepository) Create(ctx context.Context, roadmap *entity.Roadmap) error {
	if roadmap.ID == uuid.Nil {
		roadmap.ID = uuid.New()
	}

	roadmapM := fromRoadmapDomain(roadmap)
	if err := repo.db.WithContext(ctx).Create(roadmapM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create roadmap")
	}

	roadmap.CreatedAt = roadmapM.CreatedAt
	roadmap.UpdatedAt = roadmapM.UpdatedAt

	return nil
}

func (repo *roadmapRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Roadmap, error) {
	var roadmapM model.RoadmapModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roadmapM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoadmapNotFound
		}

		return nil, errors.Wrap(err, "failed to find roadmap")
	}

	return toRoadmapDomain(&roadmapM), nil
}

func (repo *roadmapRepository) List(ctx context.Context) ([]*entity.Roadmap, error) {
	return repo.find(repo.db.WithContext(ctx))
}

func (repo *roadmapRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Roadmap, error) {
	return repo.find(repo.db.WithContext(ctx).Where("LOWER(category) = LOWER(?)", category))
}

func (repo *roadmapRepository) find(query *gorm.DB) ([]*entity.Roadmap, error) {
	var roadmapMs []model.RoadmapModel
	if err := query.Order("created_at ASC").Find(&roadmapMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roadmaps")
	}

	roadmaps := make([]*entity.Roadmap, 0, len(roadmapMs))
	for i := range roadmapMs {
		roadmaps = append(roadmaps, toRoadmapDomain(&roadmapMs[i]))
	}

	return roadmaps, nil
}

func toRoadmapDomain(m *model.RoadmapModel) *entity.Roadmap {
	steps := make([]entity.RoadmapStep, 0, len(m.Steps))
	for _, s := range m.Steps {
		resources := make([]entity.RoadmapResource, 0, len(s.Resources))
		for _, r := range s.Resources {
			resources = append(resources, entity.RoadmapResource(r))
		}
		steps = append(steps, entity.RoadmapStep{
			Title:       s.Title,
			Description: s.Description,
			Resources:   resources,
		})
	}

	return &entity.Roadmap{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Duration:    m.Duration,
		Difficulty:  entity.Difficulty(m.Difficulty),
		TotalSteps:  m.TotalSteps,
		Steps:       steps,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromRoadmapDomain(r *entity.Roadmap) *model.RoadmapModel {
	steps := make([]model.RoadmapStepJSON, 0, len(r.Steps))
	for _, s := range r.Steps {
		resources := make([]model.RoadmapResourceJSON, 0, len(s.Resources))
		for _, res := range s.Resources {
			resources = append(resources, model.RoadmapResourceJSON(res))
		}
		steps = append(steps, model.RoadmapStepJSON{
			Title:       s.Title,
			Description: s.Description,
			Resources:   resources,
		})
	}

	return &model.RoadmapModel{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Duration:    r.Duration,
		Difficulty:  string(r.Difficulty),
		TotalSteps:  r.TotalSteps,
		Steps:       datatypes.NewJSONSlice(steps),
	}
}
