package jadwal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func setupHandler(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	resolver := resolverStub{names: map[int64]string{1: "Budi Santoso"}}
	h := NewHandler(NewService(NewMemRepo(), resolver, &recorderSpy{}))
	h.RegisterRoutes(e.Group("/api"))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func jadwalBody(tanggal time.Time) string {
	return fmt.Sprintf(`{"pasienId":1,"dokterUserId":2,"tanggal":%q,
		"jenisPelayanan":"poli","namaLayanan":"Poli Umum"}`, tanggal.Format(time.RFC3339))
}

func TestCreateJadwal(t *testing.T) {
	e := setupHandler(t)
	rec := doJSON(e, http.MethodPost, "/api/jadwal", jadwalBody(time.Now()))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var j Jadwal
	json.Unmarshal(rec.Body.Bytes(), &j)
	if j.Status != "menunggu" {
		t.Fatalf("status = %q", j.Status)
	}
}

func TestCreateJadwal_InvalidJenis(t *testing.T) {
	e := setupHandler(t)
	body := `{"pasienId":1,"dokterUserId":2,"tanggal":"2025-06-10T09:00:00Z",
		"jenisPelayanan":"apotek","namaLayanan":"X"}`
	rec := doJSON(e, http.MethodPost, "/api/jadwal", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Data jadwal tidak valid") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHariIni_Route(t *testing.T) {
	e := setupHandler(t)
	doJSON(e, http.MethodPost, "/api/jadwal", jadwalBody(time.Now()))
	doJSON(e, http.MethodPost, "/api/jadwal", jadwalBody(time.Now().AddDate(0, 0, 1)))

	rec := doJSON(e, http.MethodGet, "/api/jadwal/hari-ini", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var items []Jadwal
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Fatalf("expected 1 today, got %d", len(items))
	}
}

func TestGetJadwal_NotFound(t *testing.T) {
	e := setupHandler(t)
	rec := doJSON(e, http.MethodGet, "/api/jadwal/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Jadwal tidak ditemukan") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestDeleteJadwal(t *testing.T) {
	e := setupHandler(t)
	doJSON(e, http.MethodPost, "/api/jadwal", jadwalBody(time.Now()))
	rec := doJSON(e, http.MethodDelete, "/api/jadwal/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	rec = doJSON(e, http.MethodDelete, "/api/jadwal/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", rec.Code)
	}
}
