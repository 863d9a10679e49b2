package farmasi

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
	rekam := rekamStub{pasienByRekam: map[int64]int64{10: 1}}
	svc := NewService(NewObatMemRepo(), NewResepMemRepo(), pasienStub{}, rekam, &recorderSpy{})
	h := NewHandler(svc)
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

const paracetamol = `{"kode":"OBT001","nama":"Paracetamol 500mg","kategori":"analgesik",
	"satuan":"tablet","harga":1500,"stok":100}`

func TestCreateObat_Handler(t *testing.T) {
	e := setupHandler(t)
	rec := doJSON(e, http.MethodPost, "/api/obat", paracetamol)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/api/obat", paracetamol)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Kode obat sudah terdaftar") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestCreateResep_Handler(t *testing.T) {
	e := setupHandler(t)
	doJSON(e, http.MethodPost, "/api/obat", paracetamol)

	body := `{"resep":{"rekamMedisId":10},
		"detail":[{"obatId":1,"jumlah":10,"aturanPakai":"3x1 sesudah makan"}]}`
	rec := doJSON(e, http.MethodPost, "/api/resep", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var rs ResepLengkap
	json.Unmarshal(rec.Body.Bytes(), &rs)
	if len(rs.Detail) != 1 {
		t.Fatalf("detail = %d", len(rs.Detail))
	}

	rec = doJSON(e, http.MethodGet, "/api/obat/1", "")
	var o Obat
	json.Unmarshal(rec.Body.Bytes(), &o)
	if o.Stok != 90 {
		t.Fatalf("stok = %d", o.Stok)
	}
}

func TestGetResep_EmbedsDetailOnRead(t *testing.T) {
	e := setupHandler(t)
	doJSON(e, http.MethodPost, "/api/obat", paracetamol)
	doJSON(e, http.MethodPost, "/api/resep",
		`{"resep":{"rekamMedisId":10},"detail":[{"obatId":1,"jumlah":2,"aturanPakai":"1x1"}]}`)

	rec := doJSON(e, http.MethodGet, "/api/resep/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var rs ResepLengkap
	json.Unmarshal(rec.Body.Bytes(), &rs)
	if len(rs.Detail) != 1 || rs.Detail[0].Jumlah != 2 {
		t.Fatalf("detail = %+v", rs.Detail)
	}
}

func TestGetObat_NotFound(t *testing.T) {
	e := setupHandler(t)
	rec := doJSON(e, http.MethodGet, "/api/obat/9", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Obat tidak ditemukan") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestUpdateResep_InvalidStatus(t *testing.T) {
	e := setupHandler(t)
	doJSON(e, http.MethodPost, "/api/resep", `{"resep":{"rekamMedisId":10}}`)
	rec := doJSON(e, http.MethodPut, "/api/resep/1", `{"status":"dikirim"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
