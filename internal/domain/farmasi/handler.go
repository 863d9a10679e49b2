package farmasi

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
	api.GET("/obat", h.ListObat)
	api.GET("/obat/:id", h.GetObat)
	api.POST("/obat", h.CreateObat)
	api.PUT("/obat/:id", h.UpdateObat)
	api.DELETE("/obat/:id", h.DeleteObat)

	api.GET("/resep", h.ListResep)
	api.GET("/resep/:id", h.GetResep)
	api.POST("/resep", h.CreateResep)
	api.PUT("/resep/:id", h.UpdateResep)
}

func (h *Handler) ListObat(c echo.Context) error {
	items, err := h.svc.ListObat(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data obat")
	}
	if items == nil {
		items = []*Obat{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetObat(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Obat tidak ditemukan")
	}
	o, err := h.svc.GetObat(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Obat tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data obat")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) CreateObat(c echo.Context) error {
	var req CreateObatRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, "Data obat tidak valid", err)
	}
	o, err := h.svc.CreateObat(c.Request().Context(), auth.CurrentUserID(c), req)
	if errors.Is(err, ErrKodeTerdaftar) {
		return httpapi.Message(c, http.StatusBadRequest, "Kode obat sudah terdaftar")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat menambahkan obat")
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) UpdateObat(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Obat tidak ditemukan")
	}
	var patch ObatPatch
	if err := httpapi.Bind(c, &patch); err != nil {
		return httpapi.Invalid(c, "Data obat tidak valid", err)
	}
	o, err := h.svc.UpdateObat(c.Request().Context(), auth.CurrentUserID(c), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Obat tidak ditemukan")
	}
	if errors.Is(err, ErrKodeTerdaftar) {
		return httpapi.Message(c, http.StatusBadRequest, "Kode obat sudah terdaftar")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat memperbarui obat")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) DeleteObat(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Obat tidak ditemukan")
	}
	err = h.svc.DeleteObat(c.Request().Context(), auth.CurrentUserID(c), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Obat tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat menghapus obat")
	}
	return httpapi.Message(c, http.StatusOK, "Obat berhasil dihapus")
}

func (h *Handler) ListResep(c echo.Context) error {
	items, err := h.svc.ListResep(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data resep")
	}
	if items == nil {
		items = []*Resep{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetResep(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Resep tidak ditemukan")
	}
	rs, err := h.svc.GetResep(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Resep tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data resep")
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *Handler) CreateResep(c echo.Context) error {
	var req CreateResepRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, "Data resep tidak valid", err)
	}
	rs, err := h.svc.CreateResep(c.Request().Context(), auth.CurrentUserID(c), req)
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat membuat resep")
	}
	return c.JSON(http.StatusCreated, rs)
}

func (h *Handler) UpdateResep(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Resep tidak ditemukan")
	}
	var patch ResepPatch
	if err := httpapi.Bind(c, &patch); err != nil {
		return httpapi.Invalid(c, "Data resep tidak valid", err)
	}
	rs, err := h.svc.UpdateResep(c.Request().Context(), auth.CurrentUserID(c), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Resep tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat memperbarui resep")
	}
	return c.JSON(http.StatusOK, rs)
}
