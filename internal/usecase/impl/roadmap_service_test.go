package impl

import (
	"context"
	"testing"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	mockRepo "nextstep/internal/mocks/repository"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoadmapService_Create(t *testing.T) {
	repo := mockRepo.NewMockRoadmapRepository(t)
	svc := NewRoadmapService(repo)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Roadmap")).Return(nil)

	got, err := svc.Create(ctx, &usecase.CreateRoadmapInput{
		Title:      "Backend Engineer",
		Category:   "Web Development",
		Difficulty: entity.DifficultyIntermediate,
		Steps: []entity.RoadmapStep{
			{Title: "HTTP"},
			{Title: "Databases", Resources: []entity.RoadmapResource{{Name: "Use The Index, Luke", URL: "https://use-the-index-luke.com", Type: "article"}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalSteps)
}

func TestRoadmapService_Create_Invalid(t *testing.T) {
	svc := NewRoadmapService(mockRepo.NewMockRoadmapRepository(t))

	tests := []struct {
		name  string
		input *usecase.CreateRoadmapInput
	}{
		{"missing title", &usecase.CreateRoadmapInput{Category: "AI", Difficulty: entity.DifficultyBeginner}},
		{"unknown difficulty", &usecase.CreateRoadmapInput{Title: "T", Category: "AI", Difficulty: "Expert"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
		})
	}
}

func TestRoadmapService_ListByDomain(t *testing.T) {
	repo := mockRepo.NewMockRoadmapRepository(t)
	svc := NewRoadmapService(repo)
	ctx := context.Background()
	roadmaps := []*entity.Roadmap{{ID: uuid.New(), Category: "AI"}}

	repo.EXPECT().ListByCategory(ctx, "ai").Return(roadmaps, nil)

	got, err := svc.ListByDomain(ctx, " ai ")
	require.NoError(t, err)
	assert.Equal(t, roadmaps, got)
}

func TestRoadmapService_GetByID_NotFound(t *testing.T) {
	repo := mockRepo.NewMockRoadmapRepository(t)
	svc := NewRoadmapService(repo)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRoadmapNotFound)

	_, err := svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrRoadmapNotFound)
}
