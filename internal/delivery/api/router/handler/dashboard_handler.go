package handler

import (
	"net/http"

	"nextstep/internal/delivery/api/response"
	"nextstep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	BookingUC      usecase.BookingUsecase
	ConversationUC usecase.ConversationUsecase
}

// DashboardHandler serves the mentor dashboard. Routes are mounted behind
// RequireMentor, which places the resolved caller on the context.
type DashboardHandler struct {
	bookingUC      usecase.BookingUsecase
	conversationUC usecase.ConversationUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		bookingUC:      params.BookingUC,
		conversationUC: params.ConversationUC,
	}
}

type AddLinkRequest struct {
	Link string `json:"link" validate:"required,max=512"`
}

type CheckInRequest struct {
	QRData string `json:"qrData" validate:"required,max=2048"`
}

// Messages handles GET /mentor/messages.
func (h *DashboardHandler) Messages(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	threads, err := h.conversationUC.ListForMentor(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return response.OK(c, threads)
}

// Reply handles POST /mentor/messages/:threadId/reply.
func (h *DashboardHandler) Reply(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	threadID, err := uuidParam(c, "threadId")
	if err != nil {
		return err
	}

	var req ReplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	thread, err := h.conversationUC.ReplyAsMentor(c.Request().Context(), caller, threadID, req.Text)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, thread, "Reply sent")
}

// Sessions handles GET /mentor/sessions.
func (h *DashboardHandler) Sessions(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingUC.ListForMentor(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return response.OK(c, bookings)
}

// AddLink handles PUT /mentor/sessions/:id/link.
func (h *DashboardHandler) AddLink(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	bookingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AddLinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.bookingUC.AddLink(c.Request().Context(), caller, bookingID, req.Link)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, booking, "Session link added")
}

// Complete handles PUT /mentor/sessions/:id/complete.
func (h *DashboardHandler) Complete(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}
	bookingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.bookingUC.MarkCompleted(c.Request().Context(), caller, bookingID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, booking, "Session marked as completed")
}

// CheckIn handles POST /mentor/sessions/scan.
func (h *DashboardHandler) CheckIn(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	var req CheckInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.bookingUC.CheckIn(c.Request().Context(), caller, req.QRData)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, booking, "Session checked in")
}
