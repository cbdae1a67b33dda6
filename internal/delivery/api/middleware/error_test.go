package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nextstep/config"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestErrorMiddleware(debug bool) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func runErrorHandler(t *testing.T, m *ErrorMiddleware, err error) (int, domainerrors.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	m.HandleHTTPError(err, c)

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	tests := []struct {
		name        string
		debug       bool
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "details shown in debug",
			debug:       true,
			err:         domainerrors.ErrInvalidArgument.WithDetails("text is empty"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_ARGUMENT",
			wantDetails: "text is empty",
		},
		{
			name:       "details hidden outside debug",
			debug:      false,
			err:        domainerrors.ErrInvalidArgument.WithDetails("text is empty"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ARGUMENT",
		},
		{
			name:       "details never shown for 5xx",
			debug:      true,
			err:        domainerrors.ErrPartialFailure.WithDetails("booking 123 created"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "PARTIAL_FAILURE",
		},
		{
			name:       "details never shown for 403",
			debug:      true,
			err:        domainerrors.ErrInvalidRole.WithDetails("learner"),
			wantStatus: http.StatusForbidden,
			wantCode:   "INVALID_ROLE",
		},
		{
			name:       "wrapped app error",
			debug:      true,
			err:        errors.Wrap(domainerrors.ErrBookingNotFound, "mark completed"),
			wantStatus: http.StatusNotFound,
			wantCode:   "SESSION_NOT_FOUND",
		},
		{
			name:       "duplicate email",
			err:        domainerrors.ErrUserAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := runErrorHandler(t, newTestErrorMiddleware(tt.debug), tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Message)
			require.NotNil(t, body.Meta)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}

func TestHandleHTTPError_UnknownErrorIsInternal(t *testing.T) {
	status, body := runErrorHandler(t, newTestErrorMiddleware(true), errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Message, "pq")
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	status, body := runErrorHandler(t, newTestErrorMiddleware(false), echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}
