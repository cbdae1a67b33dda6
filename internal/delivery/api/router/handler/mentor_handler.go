package handler

import (
	"nextstep/internal/delivery/api/response"
	"nextstep/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MentorHandler serves the public mentor directory.
type MentorHandler struct {
	mentorUC usecase.MentorUsecase
}

// NewMentorHandler is the constructor for MentorHandler.
func NewMentorHandler(mentorUC usecase.MentorUsecase) *MentorHandler {
	return &MentorHandler{mentorUC: mentorUC}
}

// AddMentorRequest creates a profile with no linked user.
type AddMentorRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Title        string   `json:"role" validate:"max=255"`
	Company      string   `json:"company" validate:"max=255"`
	Avatar       string   `json:"avatar" validate:"omitempty,url,max=512"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Skills       []string `json:"skills"`
	Domain       string   `json:"domain" validate:"max=100"`
	HourlyRate   float64  `json:"hourlyRate" validate:"gte=0"`
	Bio          string   `json:"bio"`
	LinkedIn     string   `json:"linkedin" validate:"max=255"`
	GitHub       string   `json:"github" validate:"max=255"`
	Experience   int      `json:"experience" validate:"gte=0"`
	Availability string   `json:"availability" validate:"max=100"`
	Languages    []string `json:"languages"`
	Education    []string `json:"education"`
}

// List handles GET /mentors/all.
func (h *MentorHandler) List(c echo.Context) error {
	mentors, err := h.mentorUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, mentors)
}

// Get handles GET /mentors/:mentorId.
func (h *MentorHandler) Get(c echo.Context) error {
	mentorID, err := uuidParam(c, "mentorId")
	if err != nil {
		return err
	}

	mentor, err := h.mentorUC.GetByID(c.Request().Context(), mentorID)
	if err != nil {
		return err
	}

	return response.OK(c, mentor)
}

// Add handles POST /mentors/add.
func (h *MentorHandler) Add(c echo.Context) error {
	var req AddMentorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	mentor, err := h.mentorUC.Add(c.Request().Context(), &usecase.AddMentorInput{
		Name:         req.Name,
		Title:        req.Title,
		Company:      req.Company,
		Avatar:       req.Avatar,
		Rating:       req.Rating,
		Skills:       req.Skills,
		Domain:       req.Domain,
		HourlyRate:   req.HourlyRate,
		Bio:          req.Bio,
		LinkedIn:     req.LinkedIn,
		GitHub:       req.GitHub,
		Experience:   req.Experience,
		Availability: req.Availability,
		Languages:    req.Languages,
		Education:    req.Education,
	})
	if err != nil {
		return err
	}

	return response.Created(c, mentor, "Mentor added successfully")
}
