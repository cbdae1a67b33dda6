package handler

import (
	"context"
	"net/http"
	"time"

	"nextstep/internal/delivery/api/response"
	"nextstep/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	status := map[string]string{"status": "ok", "database": "ok"}

	if err := h.ping(c.Request().Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"

		return response.Success(c, http.StatusServiceUnavailable, status, "database unreachable")
	}

	return response.OK(c, status)
}

func (h *HealthHandler) ping(ctx context.Context) error {
	if h.db == nil {
		return errors.New("database not configured")
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	return sqlDB.PingContext(ctx)
}
