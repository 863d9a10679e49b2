package rekammedis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

const rekamBudi = `{"pasienId":1,"dokterUserId":2,"keluhanUtama":"Demam tiga hari",
	"pemeriksaanFisik":{"tekananDarah":"120/80"},"diagnosis":"Demam dengue",
	"jenisPelayanan":"rawat jalan"}`

func TestCreateRekamMedis(t *testing.T) {
	e := setupHandler(t)
	rec := doJSON(e, http.MethodPost, "/api/rekam-medis", rekamBudi)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var rm RekamMedis
	json.Unmarshal(rec.Body.Bytes(), &rm)
	if rm.ID == 0 || rm.Diagnosis != "Demam dengue" {
		t.Fatalf("rm = %+v", rm)
	}
}

func TestCreateRekamMedis_MissingFields(t *testing.T) {
	e := setupHandler(t)
	rec := doJSON(e, http.MethodPost, "/api/rekam-medis", `{"pasienId":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Data rekam medis tidak valid") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestByPasienRoute_NotShadowedByID(t *testing.T) {
	e := setupHandler(t)
	doJSON(e, http.MethodPost, "/api/rekam-medis", rekamBudi)

	rec := doJSON(e, http.MethodGet, "/api/rekam-medis/pasien/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var items []RekamMedis
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Fatalf("expected 1, got %d", len(items))
	}
}

func TestGetRekamMedis_NotFound(t *testing.T) {
	e := setupHandler(t)
	rec := doJSON(e, http.MethodGet, "/api/rekam-medis/5", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Rekam medis tidak ditemukan") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestUpdateRekamMedis(t *testing.T) {
	e := setupHandler(t)
	doJSON(e, http.MethodPost, "/api/rekam-medis", rekamBudi)

	rec := doJSON(e, http.MethodPut, "/api/rekam-medis/1", `{"diagnosis":"DBD grade I"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var rm RekamMedis
	json.Unmarshal(rec.Body.Bytes(), &rm)
	if rm.Diagnosis != "DBD grade I" {
		t.Fatalf("diagnosis = %q", rm.Diagnosis)
	}
}
