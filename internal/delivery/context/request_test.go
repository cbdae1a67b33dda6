package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID_MintsOncePerRequest(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))
}

func TestGetRequestID_ReturnsStored(t *testing.T) {
	c := newEchoContext()
	SetRequestID(c, "req-1")

	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestUserAndCaller(t *testing.T) {
	c := newEchoContext()

	_, ok := GetUser(c)
	assert.False(t, ok)
	_, ok = GetCaller(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleMentor}
	caller := entity.Caller{UserID: user.ID, Role: entity.RoleMentor, MentorID: uuid.New()}
	SetUser(c, user)
	SetCaller(c, caller)

	gotUser, ok := GetUser(c)
	assert.True(t, ok)
	assert.Equal(t, user, gotUser)

	gotCaller, ok := GetCaller(c)
	assert.True(t, ok)
	assert.Equal(t, caller, gotCaller)
}
