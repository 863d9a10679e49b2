package rekammedis

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
	api.GET("/rekam-medis", h.ListRekamMedis)
	api.GET("/rekam-medis/pasien/:pasienId", h.ListRekamMedisByPasien)
	api.GET("/rekam-medis/:id", h.GetRekamMedis)
	api.POST("/rekam-medis", h.CreateRekamMedis)
	api.PUT("/rekam-medis/:id", h.UpdateRekamMedis)
}

func (h *Handler) ListRekamMedis(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data rekam medis")
	}
	if items == nil {
		items = []*RekamMedis{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetRekamMedis(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Rekam medis tidak ditemukan")
	}
	rm, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Rekam medis tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data rekam medis")
	}
	return c.JSON(http.StatusOK, rm)
}

func (h *Handler) ListRekamMedisByPasien(c echo.Context) error {
	pasienID, err := strconv.ParseInt(c.Param("pasienId"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Pasien tidak ditemukan")
	}
	items, err := h.svc.ListByPasien(c.Request().Context(), pasienID)
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat mengambil data rekam medis pasien")
	}
	if items == nil {
		items = []*RekamMedis{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateRekamMedis(c echo.Context) error {
	var req CreateRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return httpapi.Invalid(c, "Data rekam medis tidak valid", err)
	}
	rm, err := h.svc.Create(c.Request().Context(), auth.CurrentUserID(c), req)
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat membuat rekam medis")
	}
	return c.JSON(http.StatusCreated, rm)
}

func (h *Handler) UpdateRekamMedis(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return httpapi.NotFound(c, "Rekam medis tidak ditemukan")
	}
	var patch Patch
	if err := httpapi.Bind(c, &patch); err != nil {
		return httpapi.Invalid(c, "Data rekam medis tidak valid", err)
	}
	rm, err := h.svc.Update(c.Request().Context(), auth.CurrentUserID(c), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return httpapi.NotFound(c, "Rekam medis tidak ditemukan")
	}
	if err != nil {
		return httpapi.Internal(c, "Terjadi kesalahan saat memperbarui rekam medis")
	}
	return c.JSON(http.StatusOK, rm)
}
