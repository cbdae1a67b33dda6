package handler

import (
	"net/http"

	"nextstep/internal/delivery/api/response"
	"nextstep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LearnerHandlerParams holds dependencies for LearnerHandler, injected by Fx.
type LearnerHandlerParams struct {
	fx.In

	BookingUC      usecase.BookingUsecase
	ConversationUC usecase.ConversationUsecase
}

// LearnerHandler serves the learner side of bookings and conversations.
// Every route runs after authentication; any role may act as a learner.
type LearnerHandler struct {
	bookingUC      usecase.BookingUsecase
	conversationUC usecase.ConversationUsecase
}

// NewLearnerHandler is the constructor for LearnerHandler.
func NewLearnerHandler(params LearnerHandlerParams) *LearnerHandler {
	return &LearnerHandler{
		bookingUC:      params.BookingUC,
		conversationUC: params.ConversationUC,
	}
}

type BookSessionRequest struct {
	Date  string `json:"date" validate:"required,max=32"`
	Time  string `json:"time" validate:"required,max=31"`
	Topic string `json:"topic"`
}

type SendMessageRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

type ReplyRequest struct {
	Text string `json:"text" validate:"required"`
}

// BookSession handles POST /mentors/:mentorId/book.
func (h *LearnerHandler) BookSession(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	mentorID, err := uuidParam(c, "mentorId")
	if err != nil {
		return err
	}

	var req BookSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.bookingUC.Book(c.Request().Context(), user.ID, mentorID, &usecase.BookSessionInput{
		Date:  req.Date,
		Time:  req.Time,
		Topic: req.Topic,
	})
	if err != nil {
		return err
	}

	return response.Created(c, booking, "Session booked successfully")
}

// MessageMentor handles POST /mentors/:mentorId/message.
func (h *LearnerHandler) MessageMentor(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	mentorID, err := uuidParam(c, "mentorId")
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	thread, err := h.conversationUC.SendAsLearner(c.Request().Context(), user.ID, mentorID, req.Subject, req.Message)
	if err != nil {
		return err
	}

	return response.Created(c, thread, "Message sent successfully")
}

// MySessions handles GET /users/my-sessions.
func (h *LearnerHandler) MySessions(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingUC.ListForLearner(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, bookings)
}

// SessionQRCode handles GET /users/my-sessions/:id/qrcode and writes a PNG.
func (h *LearnerHandler) SessionQRCode(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	bookingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.bookingUC.SessionQRCode(c.Request().Context(), user.ID, bookingID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// MyMessages handles GET /users/my-messages.
func (h *LearnerHandler) MyMessages(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	threads, err := h.conversationUC.ListForLearner(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.OK(c, threads)
}

// Reply handles POST /users/my-messages/:threadId/reply.
func (h *LearnerHandler) Reply(c echo.Context) error {
	user, err := currentUser(c)
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

	thread, err := h.conversationUC.ReplyAsLearner(c.Request().Context(), user.ID, threadID, req.Text)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, thread, "Reply sent")
}
