package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the cookie carrying the login session.
const SessionName = "simrs_session"

const userIDKey = "user_id"

// NewStore builds the cookie store backing login sessions.
func NewStore(secret string, secure bool) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Middleware wires the session store into the echo request context.
func Middleware(store sessions.Store) echo.MiddlewareFunc {
	return session.Middleware(store)
}

// Login binds the user id to the request's session cookie.
func Login(c echo.Context, userID int64) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Values[userIDKey] = userID
	return sess.Save(c.Request(), c.Response())
}

// Logout drops the session so subsequent requests are anonymous.
func Logout(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// UserID returns the logged-in user id, or false when the request carries no
// valid session.
func UserID(c echo.Context) (int64, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return 0, false
	}
	switch v := sess.Values[userIDKey].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
