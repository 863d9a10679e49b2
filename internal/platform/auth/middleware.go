package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/simrs/simrs/internal/platform/httpapi"
)

const ctxUserIDKey = "auth.user_id"

// RequireLogin rejects unauthenticated requests with a 401 before any
// handler or store mutation runs. The caller id is stashed on the context
// for handlers and the activity log.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := UserID(c)
			if !ok {
				return httpapi.Unauthorized(c)
			}
			c.Set(ctxUserIDKey, uid)
			return next(c)
		}
	}
}

// CurrentUserID returns the caller id placed by RequireLogin.
func CurrentUserID(c echo.Context) int64 {
	if v, ok := c.Get(ctxUserIDKey).(int64); ok {
		return v
	}
	return 0
}
