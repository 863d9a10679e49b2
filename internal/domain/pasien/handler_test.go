package pasien

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupHandler(t *testing.T) (*echo.Echo, *recorderSpy) {
	t.Helper()
	e := echo.New()
	spy := &recorderSpy{}
	h := NewHandler(NewService(NewMemRepo(), spy))
	h.RegisterRoutes(e.Group("/api"))
	return e, spy
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

const budi = `{"nik":"1234567890123456","nama":"Budi Santoso","jenisKelamin":"L",
	"tanggalLahir":"1990-05-17T00:00:00Z","alamat":"Jl. Merdeka No. 1"}`

func TestCreatePasien(t *testing.T) {
	e, _ := setupHandler(t)
	rec := doJSON(e, http.MethodPost, "/api/pasien", budi)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var p Pasien
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(p.NomorRM, "RM") {
		t.Fatalf("nomorRM = %q", p.NomorRM)
	}
}

func TestCreatePasien_InvalidBody(t *testing.T) {
	e, spy := setupHandler(t)
	rec := doJSON(e, http.MethodPost, "/api/pasien", `{"nama":"Tanpa NIK"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Data pasien tidak valid") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if len(spy.entries) != 0 {
		t.Fatal("invalid request must not log activity")
	}
}

func TestCreatePasien_DuplicateNIK(t *testing.T) {
	e, _ := setupHandler(t)
	doJSON(e, http.MethodPost, "/api/pasien", budi)
	rec := doJSON(e, http.MethodPost, "/api/pasien", budi)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "NIK sudah terdaftar") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestGetPasien_NotFound(t *testing.T) {
	e, _ := setupHandler(t)
	rec := doJSON(e, http.MethodGet, "/api/pasien/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Pasien tidak ditemukan") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestUpdatePasien_NotFound(t *testing.T) {
	e, _ := setupHandler(t)
	rec := doJSON(e, http.MethodPut, "/api/pasien/99", `{"nama":"Baru"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDeletePasien_Flow(t *testing.T) {
	e, _ := setupHandler(t)
	rec := doJSON(e, http.MethodPost, "/api/pasien", budi)
	var p Pasien
	json.Unmarshal(rec.Body.Bytes(), &p)

	rec = doJSON(e, http.MethodDelete, "/api/pasien/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Pasien berhasil dihapus") {
		t.Fatalf("body = %s", rec.Body.String())
	}

	rec = doJSON(e, http.MethodDelete, "/api/pasien/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", rec.Code)
	}
}

func TestListPasien_EmptyIsArray(t *testing.T) {
	e, _ := setupHandler(t)
	rec := doJSON(e, http.MethodGet, "/api/pasien", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("body = %q", body)
	}
}
