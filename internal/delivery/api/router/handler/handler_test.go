package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"nextstep/config"
	apimiddleware "nextstep/internal/delivery/api/middleware"
	"nextstep/internal/delivery/api/validator"
	deliverycontext "nextstep/internal/delivery/context"
	"nextstep/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg).HandleHTTPError

	return e
}

// serve runs h for one request, routing through path so params resolve, and
// returns the recorded response.
func serve(t *testing.T, method, route, target, body string, h echo.HandlerFunc, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := newTestEcho()
	e.Add(method, route, h, mw...)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func asUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUser(c, user)

			return next(c)
		}
	}
}

func asCaller(caller entity.Caller) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetCaller(c, caller)

			return next(c)
		}
	}
}
