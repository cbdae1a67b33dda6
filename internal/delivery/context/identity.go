package context

import (
	"nextstep/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyUser is the key for the authenticated user.
	KeyUser ContextKey = "user"

	// KeyCaller is the key for the resolved mentor-side caller.
	KeyCaller ContextKey = "caller"
)

// SetUser stores the authenticated user on the request.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated user, if the request passed authentication.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

// SetCaller stores the caller resolved for mentor-side routes.
func SetCaller(c echo.Context, caller entity.Caller) {
	c.Set(string(KeyCaller), caller)
}

// GetCaller returns the resolved mentor-side caller.
func GetCaller(c echo.Context) (entity.Caller, bool) {
	caller, ok := c.Get(string(KeyCaller)).(entity.Caller)

	return caller, ok
}
