package pasien

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
	api.GET("/pasien", h.ListPasien)
	api.GET("/pasien/:id", h.GetPasien)
	api.POST("/pasien", h.CreatePasien)
	api.PUT("/pasien/:id", h.UpdatePasien)
	api.DELETE("/pasien/:id", h.DeletePasien)
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *Handler) ListPasien(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data pasien")
	}
	if items == nil {
		items = []*Pasien{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetPasien(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpapi.NotFound(c, "Pasien tidak ditemukan")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Pasien tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data pasien")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePasien(c echo.Context) error {
	var req CreateRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, "Data pasien tidak valid", err)
	}
	p, err := h.svc.Register(c.Request().Context(), auth.CurrentUserID(c), req)
	if errors.Is(err, ErrNIKTerdaftar) {
		return httpapi.Message(c, http.StatusBadRequest, "NIK sudah terdaftar")
	}
	if errors.Is(err, ErrNomorRMTerdaftar) {
		return httpapi.Message(c, http.StatusBadRequest, "Nomor RM sudah terdaftar")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat membuat data pasien")
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdatePasien(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpapi.NotFound(c, "Pasien tidak ditemukan")
	}
	var patch Patch
	if err := httpapi.Bind(c, &patch); err != nil {
		return httpapi.Invalid(c, "Data pasien tidak valid", err)
	}
	p, err := h.svc.Update(c.Request().Context(), auth.CurrentUserID(c), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Pasien tidak ditemukan")
	}
	if errors.Is(err, ErrNIKTerdaftar) {
		return httpapi.Message(c, http.StatusBadRequest, "NIK sudah terdaftar")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat memperbarui data pasien")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePasien(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpapi.NotFound(c, "Pasien tidak ditemukan")
	}
	err = h.svc.Delete(c.Request().Context(), auth.CurrentUserID(c), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Pasien tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat menghapus data pasien")
	}
	return httpapi.Message(c, http.StatusOK, "Pasien berhasil dihapus")
}
