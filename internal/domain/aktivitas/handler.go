package aktivitas

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/simrs/simrs/internal/platform/httpapi"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/aktivitas", h.ListAktivitas)
}

func (h *Handler) ListAktivitas(c echo.Context) error {
	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return httpapi.Message(c, http.StatusBadRequest, "Parameter limit tidak valid")
		}
		limit = n
	}
	items, err := h.svc.ListTerbaru(c.Request().Context(), limit)
	if err != nil {
		return httpapi.Internal(c, "Gagal mengambil data aktivitas")
	}
	if items == nil {
		items = []*Aktivitas{}
	}
	return c.JSON(http.StatusOK, items)
}
