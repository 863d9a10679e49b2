package diagnostik

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/simrs/simrs/internal/platform/auth"
	"github.com/simrs/simrs/internal/platform/httpapi"
	"github.com/simrs/simrs/internal/platform/store"
)

// Handler serves one modality under its own route prefix
// (/api/laboratorium or /api/radiologi).
type Handler struct {
	svc    *Service
	prefix string
	label  string
}

func NewHandler(svc *Service) *Handler {
	label := "laboratorium"
	if svc.jenis == Radiologi {
		label = "radiologi"
	}
	return &Handler{svc: svc, prefix: "/" + label, label: label}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET(h.prefix, h.List)
	api.GET(h.prefix+"/:id", h.Get)
	api.POST(h.prefix, h.Create)
	api.PUT(h.prefix+"/:id", h.Update)
}

func (h *Handler) notFound(c echo.Context) error {
	return httpapi.NotFound(c, fmt.Sprintf("Data %s tidak ditemukan", h.label))
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, fmt.Sprintf("Terjadi kesalahan saat mengambil data %s", h.label))
	}
	if items == nil {
		items = []*Pemeriksaan{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.notFound(c)
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return h.notFound(c)
	}
	if err != nil {
		return httpapi.Internal(c, fmt.Sprintf("Terjadi kesalahan saat mengambil data %s", h.label))
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, fmt.Sprintf("Data %s tidak valid", h.label), err)
	}
	p, err := h.svc.Create(c.Request().Context(), auth.CurrentUserID(c), req)
	if err != nil {
		return httpapi.Internal(c, fmt.Sprintf("Terjadi kesalahan saat membuat data %s", h.label))
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.notFound(c)
	}
	var patch Patch
	if err := httpapi.Bind(c, &patch); err != nil {
		return httpapi.Invalid(c, fmt.Sprintf("Data %s tidak valid", h.label), err)
	}
	p, err := h.svc.Update(c.Request().Context(), auth.CurrentUserID(c), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return h.notFound(c)
	}
	if err != nil {
		return httpapi.Internal(c, fmt.Sprintf("Terjadi kesalahan saat memperbarui data %s", h.label))
	}
	return c.JSON(http.StatusOK, p)
}
