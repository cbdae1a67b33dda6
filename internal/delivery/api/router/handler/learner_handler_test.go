package handler

import (
	"net/http"
	"strings"
	"testing"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	mockUsecase "nextstep/internal/mocks/usecase"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type learnerHandlerFixtures struct {
	handler        *LearnerHandler
	bookingUC      *mockUsecase.MockBookingUsecase
	conversationUC *mockUsecase.MockConversationUsecase
	user           *entity.User
}

func createTestLearnerHandler(t *testing.T) learnerHandlerFixtures {
	bookingUC := mockUsecase.NewMockBookingUsecase(t)
	conversationUC := mockUsecase.NewMockConversationUsecase(t)

	return learnerHandlerFixtures{
		handler:        NewLearnerHandler(LearnerHandlerParams{BookingUC: bookingUC, ConversationUC: conversationUC}),
		bookingUC:      bookingUC,
		conversationUC: conversationUC,
		user:           &entity.User{ID: uuid.New(), Role: entity.RoleLearner},
	}
}

func TestLearnerHandler_BookSession(t *testing.T) {
	fx := createTestLearnerHandler(t)
	mentorID := uuid.New()

	fx.bookingUC.EXPECT().
		Book(mock.Anything, fx.user.ID, mentorID, &usecase.BookSessionInput{Date: "2025-01-10", Time: "14:00", Topic: "Interview prep"}).
		Return(&entity.Booking{ID: uuid.New(), Date: "2025-01-10 14:00"}, nil)

	rec, env := serve(t, http.MethodPost, "/mentors/:mentorId/book", "/mentors/"+mentorID.String()+"/book",
		`{"date":"2025-01-10","time":"14:00","topic":"Interview prep"}`,
		fx.handler.BookSession, asUser(fx.user))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), "2025-01-10 14:00")
}

func TestLearnerHandler_BookSession_BadMentorID(t *testing.T) {
	fx := createTestLearnerHandler(t)

	rec, env := serve(t, http.MethodPost, "/mentors/:mentorId/book", "/mentors/not-a-uuid/book",
		`{"date":"2025-01-10","time":"14:00"}`,
		fx.handler.BookSession, asUser(fx.user))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
}

func TestLearnerHandler_BookSession_PartialFailure(t *testing.T) {
	fx := createTestLearnerHandler(t)
	mentorID := uuid.New()

	fx.bookingUC.EXPECT().
		Book(mock.Anything, fx.user.ID, mentorID, mock.Anything).
		Return(&entity.Booking{ID: uuid.New()}, domainerrors.ErrPartialFailure.WithDetails("counter not updated"))

	rec, env := serve(t, http.MethodPost, "/mentors/:mentorId/book", "/mentors/"+mentorID.String()+"/book",
		`{"date":"2025-01-10","time":"14:00"}`,
		fx.handler.BookSession, asUser(fx.user))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "PARTIAL_FAILURE", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestLearnerHandler_MessageMentor(t *testing.T) {
	fx := createTestLearnerHandler(t)
	mentorID := uuid.New()

	fx.conversationUC.EXPECT().
		SendAsLearner(mock.Anything, fx.user.ID, mentorID, "Question", "Hi").
		Return(&entity.Thread{ID: uuid.New(), Subject: "Question"}, nil)

	rec, _ := serve(t, http.MethodPost, "/mentors/:mentorId/message", "/mentors/"+mentorID.String()+"/message",
		`{"subject":"Question","message":"Hi"}`,
		fx.handler.MessageMentor, asUser(fx.user))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLearnerHandler_Reply_ForeignThread(t *testing.T) {
	fx := createTestLearnerHandler(t)
	threadID := uuid.New()

	fx.conversationUC.EXPECT().
		ReplyAsLearner(mock.Anything, fx.user.ID, threadID, "thanks").
		Return(nil, domainerrors.ErrThreadNotFound)

	rec, env := serve(t, http.MethodPost, "/users/my-messages/:threadId/reply", "/users/my-messages/"+threadID.String()+"/reply",
		`{"text":"thanks"}`,
		fx.handler.Reply, asUser(fx.user))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CONVERSATION_NOT_FOUND", env.Error.Code)
}

func TestLearnerHandler_SessionQRCode(t *testing.T) {
	fx := createTestLearnerHandler(t)
	bookingID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.bookingUC.EXPECT().SessionQRCode(mock.Anything, fx.user.ID, bookingID).Return(png, nil)

	rec, _ := serve(t, http.MethodGet, "/users/my-sessions/:id/qrcode", "/users/my-sessions/"+bookingID.String()+"/qrcode", "",
		fx.handler.SessionQRCode, asUser(fx.user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestLearnerHandler_RejectsOverlongFields(t *testing.T) {
	mentorID := uuid.New()
	long := strings.Repeat("x", 256)

	tests := []struct {
		name   string
		route  string
		target string
		body   string
		call   func(*LearnerHandler) echo.HandlerFunc
	}{
		{
			name:   "booking date",
			route:  "/mentors/:mentorId/book",
			target: "/mentors/" + mentorID.String() + "/book",
			body:   `{"date":"` + strings.Repeat("1", 33) + `","time":"14:00"}`,
			call:   func(h *LearnerHandler) echo.HandlerFunc { return h.BookSession },
		},
		{
			name:   "booking time",
			route:  "/mentors/:mentorId/book",
			target: "/mentors/" + mentorID.String() + "/book",
			body:   `{"date":"2025-01-10","time":"` + strings.Repeat("1", 32) + `"}`,
			call:   func(h *LearnerHandler) echo.HandlerFunc { return h.BookSession },
		},
		{
			name:   "thread subject",
			route:  "/mentors/:mentorId/message",
			target: "/mentors/" + mentorID.String() + "/message",
			body:   `{"subject":"` + long + `","message":"Hi"}`,
			call:   func(h *LearnerHandler) echo.HandlerFunc { return h.MessageMentor },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLearnerHandler(t)

			rec, env := serve(t, http.MethodPost, tt.route, tt.target, tt.body, tt.call(fx.handler), asUser(fx.user))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}
