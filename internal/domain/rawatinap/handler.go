package rawatinap

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/rawat-inap", h.ListRawatInap)
	api.GET("/rawat-inap/aktif", h.ListRawatInapAktif)
	api.GET("/rawat-inap/:id", h.GetRawatInap)
	api.POST("/rawat-inap", h.CreateRawatInap)
	api.PUT("/rawat-inap/:id", h.UpdateRawatInap)
}

func (h *Handler) ListRawatInap(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data rawat inap")
	}
	if items == nil {
		items = []*RawatInap{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListRawatInapAktif(c echo.Context) error {
	items, err := h.svc.ListAktif(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data rawat inap aktif")
	}
	if items == nil {
		items = []*RawatInap{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetRawatInap(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Data rawat inap tidak ditemukan")
	}
	ri, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Data rawat inap tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data rawat inap")
	}
	return c.JSON(http.StatusOK, ri)
}

func (h *Handler) CreateRawatInap(c echo.Context) error {
	var req CreateRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, "Data rawat inap tidak valid", err)
	}
	ri, err := h.svc.Admit(c.Request().Context(), auth.CurrentUserID(c), req)
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat membuat data rawat inap")
	}
	return c.JSON(http.StatusCreated, ri)
}

func (h *Handler) UpdateRawatInap(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Data rawat inap tidak ditemukan")
	}
	var patch Patch
	if err := httpapi.Bind(c, &patch); err != nil {
		return httpapi.Invalid(c, "Data rawat inap tidak valid", err)
	}
	ri, err := h.svc.Update(c.Request().Context(), auth.CurrentUserID(c), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Data rawat inap tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat memperbarui data rawat inap")
	}
	return c.JSON(http.StatusOK, ri)
}
