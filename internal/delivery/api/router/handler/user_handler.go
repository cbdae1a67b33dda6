package handler

import (
	"log/slog"
	"net/http"

	"nextstep/internal/delivery/api/response"
	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account registration, login and profile endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the registration body. Mentor and learner fields are
// both accepted; the ones not matching the role are stored as given.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role"`

	Expertise  string `json:"expertise" validate:"max=255"`
	Experience int    `json:"experience" validate:"gte=0"`
	Domain     string `json:"domain" validate:"max=100"`
	LinkedIn   string `json:"linkedin" validate:"max=255"`
	GitHub     string `json:"github" validate:"max=255"`
	WhyMentor  string `json:"whyMentor"`

	College  string `json:"college" validate:"max=255"`
	GradYear int    `json:"gradYear" validate:"gte=0"`

	DomainInterest []string `json:"domainInterest"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	OTP   string `json:"otp" validate:"required,max=16"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest leaves absent fields untouched.
type UpdateProfileRequest struct {
	FullName       *string  `json:"fullName" validate:"omitempty,max=100"`
	Expertise      *string  `json:"expertise" validate:"omitempty,max=255"`
	Experience     *int     `json:"experience" validate:"omitempty,gte=0"`
	Domain         *string  `json:"domain" validate:"omitempty,max=100"`
	LinkedIn       *string  `json:"linkedin" validate:"omitempty,max=255"`
	GitHub         *string  `json:"github" validate:"omitempty,max=255"`
	WhyMentor      *string  `json:"whyMentor"`
	College        *string  `json:"college" validate:"omitempty,max=255"`
	GradYear       *int     `json:"gradYear" validate:"omitempty,gte=0"`
	DomainInterest []string `json:"domainInterest"`
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("role: oneof=learner mentor")
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Role:           role,
		Expertise:      req.Expertise,
		Experience:     req.Experience,
		Domain:         req.Domain,
		LinkedIn:       req.LinkedIn,
		GitHub:         req.GitHub,
		WhyMentor:      req.WhyMentor,
		College:        req.College,
		GradYear:       req.GradYear,
		DomainInterest: req.DomainInterest,
	})
	if err != nil {
		return err
	}

	return response.Created(c, output, "Registration successful, check your email for the verification code")
}

// VerifyOTP handles POST /users/verify-otp.
func (h *UserHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{Email: req.Email, Code: req.OTP})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output, "Email verified")
}

// ResendOTP handles POST /users/resend-otp.
func (h *UserHandler) ResendOTP(c echo.Context) error {
	var req ResendOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.ResendOTP(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fresh, err := h.userUC.GetCurrentUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, fresh)
}

// UpdateProfile handles PUT /users/update-profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.userUC.UpdateProfile(c.Request().Context(), user.ID, &usecase.UpdateProfileInput{
		FullName:       req.FullName,
		Expertise:      req.Expertise,
		Experience:     req.Experience,
		Domain:         req.Domain,
		LinkedIn:       req.LinkedIn,
		GitHub:         req.GitHub,
		WhyMentor:      req.WhyMentor,
		College:        req.College,
		GradYear:       req.GradYear,
		DomainInterest: req.DomainInterest,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Profile updated")
}
