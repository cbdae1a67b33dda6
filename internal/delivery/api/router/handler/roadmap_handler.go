package handler

import (
	"nextstep/internal/delivery/api/response"
	"nextstep/internal/domain/entity"
	"nextstep/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RoadmapHandler serves curated learning roadmaps.
type RoadmapHandler struct {
	roadmapUC usecase.RoadmapUsecase
}

// NewRoadmapHandler is the constructor for RoadmapHandler.
func NewRoadmapHandler(roadmapUC usecase.RoadmapUsecase) *RoadmapHandler {
	return &RoadmapHandler{roadmapUC: roadmapUC}
}

type CreateRoadmapRequest struct {
	Title       string               `json:"title" validate:"required,max=255"`
	Description string               `json:"description"`
	Category    string               `json:"category" validate:"required,max=100"`
	Duration    string               `json:"duration" validate:"max=100"`
	Difficulty  string               `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	Steps       []RoadmapStepRequest `json:"steps" validate:"dive"`
}

type RoadmapStepRequest struct {
	Title       string                   `json:"title" validate:"required"`
	Description string                   `json:"description"`
	Resources   []RoadmapResourceRequest `json:"resources" validate:"dive"`
}

type RoadmapResourceRequest struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
	Type string `json:"type"`
}

// Create handles POST /roadmaps/add.
func (h *RoadmapHandler) Create(c echo.Context) error {
	var req CreateRoadmapRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	steps := make([]entity.RoadmapStep, 0, len(req.Steps))
	for _, s := range req.Steps {
		resources := make([]entity.RoadmapResource, 0, len(s.Resources))
		for _, r := range s.Resources {
			resources = append(resources, entity.RoadmapResource{Name: r.Name, URL: r.URL, Type: r.Type})
		}
		steps = append(steps, entity.RoadmapStep{Title: s.Title, Description: s.Description, Resources: resources})
	}

	roadmap, err := h.roadmapUC.Create(c.Request().Context(), &usecase.CreateRoadmapInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		Difficulty:  entity.Difficulty(req.Difficulty),
		Steps:       steps,
	})
	if err != nil {
		return err
	}

	return response.Created(c, roadmap, "Roadmap created successfully")
}

// List handles GET /roadmaps/all.
func (h *RoadmapHandler) List(c echo.Context) error {
	roadmaps, err := h.roadmapUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, roadmaps)
}

// ListByDomain handles GET /roadmaps/:domain.
func (h *RoadmapHandler) ListByDomain(c echo.Context) error {
	roadmaps, err := h.roadmapUC.ListByDomain(c.Request().Context(), c.Param("domain"))
	if err != nil {
		return err
	}

	return response.OK(c, roadmaps)
}

// Get handles GET /roadmaps/id/:id.
func (h *RoadmapHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	roadmap, err := h.roadmapUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, roadmap)
}
