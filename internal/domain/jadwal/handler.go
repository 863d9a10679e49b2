package jadwal

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
	// hari-ini must register before :id so echo routes it first
	api.GET("/jadwal", h.ListJadwal)
	api.GET("/jadwal/hari-ini", h.ListJadwalHariIni)
	api.GET("/jadwal/pasien/:pasienId", h.ListJadwalByPasien)
	api.GET("/jadwal/:id", h.GetJadwal)
	api.POST("/jadwal", h.CreateJadwal)
	api.PUT("/jadwal/:id", h.UpdateJadwal)
	api.DELETE("/jadwal/:id", h.DeleteJadwal)
}

func (h *Handler) ListJadwal(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data jadwal")
	}
	if items == nil {
		items = []*Jadwal{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListJadwalHariIni(c echo.Context) error {
	items, err := h.svc.ListHariIni(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil jadwal hari ini")
	}
	if items == nil {
		items = []*Jadwal{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetJadwal(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Jadwal tidak ditemukan")
	}
	j, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data jadwal")
	}
	return c.JSON(http.StatusOK, j)
}

func (h *Handler) CreateJadwal(c echo.Context) error {
	var req CreateRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, "Data jadwal tidak valid", err)
	}
	j, err := h.svc.Create(c.Request().Context(), auth.CurrentUserID(c), req)
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat membuat jadwal")
	}
	return c.JSON(http.StatusCreated, j)
}

func (h *Handler) UpdateJadwal(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Jadwal tidak ditemukan")
	}
	var patch Patch
	if err := httpapi.Bind(c, &patch); err != nil {
		return httpapi.Invalid(c, "Data jadwal tidak valid", err)
	}
	j, err := h.svc.Update(c.Request().Context(), auth.CurrentUserID(c), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat memperbarui jadwal")
	}
	return c.JSON(http.StatusOK, j)
}

func (h *Handler) DeleteJadwal(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Jadwal tidak ditemukan")
	}
	err = h.svc.Delete(c.Request().Context(), auth.CurrentUserID(c), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Jadwal tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat menghapus jadwal")
	}
	return httpapi.Message(c, http.StatusOK, "Jadwal berhasil dihapus")
}

func (h *Handler) ListJadwalByPasien(c echo.Context) error {
	pasienID, err := strconv.ParseInt(c.Param("pasienId"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Pasien tidak ditemukan")
	}
	items, err := h.svc.ListByPasien(c.Request().Context(), pasienID)
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data jadwal")
	}
	if items == nil {
		items = []*Jadwal{}
	}
	return c.JSON(http.StatusOK, items)
}
