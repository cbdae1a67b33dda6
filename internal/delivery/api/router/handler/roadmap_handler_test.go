package handler

import (
	"net/http"
	"testing"

	"nextstep/internal/domain/entity"
	mockUsecase "nextstep/internal/mocks/usecase"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRoadmapHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockRoadmapUsecase(t)
	h := NewRoadmapHandler(uc)

	uc.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateRoadmapInput) bool {
			return in.Difficulty == entity.DifficultyBeginner && len(in.Steps) == 1 && len(in.Steps[0].Resources) == 1
		})).
		Return(&entity.Roadmap{ID: uuid.New(), TotalSteps: 1}, nil)

	rec, _ := serve(t, http.MethodPost, "/roadmaps/add", "/roadmaps/add",
		`{"title":"Frontend","category":"Web Development","difficulty":"Beginner",
		  "steps":[{"title":"HTML","resources":[{"name":"MDN","url":"https://developer.mozilla.org","type":"docs"}]}]}`,
		h.Create)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoadmapHandler_Create_BadDifficulty(t *testing.T) {
	h := NewRoadmapHandler(mockUsecase.NewMockRoadmapUsecase(t))

	rec, env := serve(t, http.MethodPost, "/roadmaps/add", "/roadmaps/add",
		`{"title":"Frontend","category":"Web","difficulty":"Expert"}`,
		h.Create)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRoadmapHandler_ListByDomain(t *testing.T) {
	uc := mockUsecase.NewMockRoadmapUsecase(t)
	h := NewRoadmapHandler(uc)

	uc.EXPECT().ListByDomain(mock.Anything, "AI").Return([]*entity.Roadmap{}, nil)

	rec, env := serve(t, http.MethodGet, "/roadmaps/:domain", "/roadmaps/AI", "", h.ListByDomain)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}
