package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simrs/simrs/internal/platform/auth"
	"github.com/simrs/simrs/internal/platform/httpapi"
	"github.com/simrs/simrs/internal/platform/store"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the auth flow on the root group and the user listing
// behind the session gate.
func (h *Handler) RegisterRoutes(root *echo.Group, api *echo.Group) {
	root.POST("/register", h.Register)
	root.POST("/login", h.Login)
	root.POST("/logout", h.Logout)
	root.GET("/user", h.CurrentUser)
	api.GET("/users", h.ListUsers)
}

func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, "Data registrasi tidak valid", err)
	}
	u, err := h.svc.Register(c.Request().Context(), req)
	if errors.Is(err, ErrUsernameTaken) {
		return httpapi.Message(c, http.StatusBadRequest, "Username sudah digunakan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat registrasi")
	}
	if err := auth.Login(c, u.ID); err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat membuat sesi")
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, "Data login tidak valid", err)
	}
	u, err := h.svc.Authenticate(c.Request().Context(), req)
	if errors.Is(err, ErrInvalidCredentials) {
		return httpapi.Unauthorized(c)
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat login")
	}
	if err := auth.Login(c, u.ID); err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat membuat sesi")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Logout(c echo.Context) error {
	if uid, ok := auth.UserID(c); ok {
		h.svc.RecordLogout(c.Request().Context(), uid)
	}
	if err := auth.Logout(c); err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat logout")
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) CurrentUser(c echo.Context) error {
	uid, ok := auth.UserID(c)
	if !ok {
		return httpapi.Unauthorized(c)
	}
	u, err := h.svc.GetUser(c.Request().Context(), uid)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.Unauthorized(c)
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data pengguna")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data pengguna")
	}
	if users == nil {
		users = []*User{}
	}
	return c.JSON(http.StatusOK, users)
}
