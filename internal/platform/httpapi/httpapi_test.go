package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type bindTarget struct {
	Nama string `json:"nama" validate:"required"`
	NIK  string `json:"nik" validate:"required,len=16"`
}

func newCtx(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBind_Valid(t *testing.T) {
	c, _ := newCtx(`{"nama":"Budi","nik":"1234567890123456"}`)
	var v bindTarget
	if err := Bind(c, &v); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if v.Nama != "Budi" {
		t.Fatalf("nama = %q", v.Nama)
	}
}

func TestBind_MissingField(t *testing.T) {
	c, _ := newCtx(`{"nama":"Budi"}`)
	var v bindTarget
	err := Bind(c, &v)
	if err == nil {
		t.Fatal("expected error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) == 0 {
		t.Fatal("expected field errors")
	}
}

func TestBind_MalformedJSON(t *testing.T) {
	c, _ := newCtx(`{not json`)
	var v bindTarget
	if err := Bind(c, &v); err == nil {
		t.Fatal("expected error")
	}
}

func TestInvalid_WritesFieldErrors(t *testing.T) {
	c, rec := newCtx(`{}`)
	err := &ValidationError{Fields: []FieldError{{Field: "nik", Message: "gagal pada aturan required"}}}
	if e := Invalid(c, "Data pasien tidak valid", err); e != nil {
		t.Fatalf("Invalid: %v", e)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Message string       `json:"message"`
		Errors  []FieldError `json:"errors"`
	}
	if e := json.Unmarshal(rec.Body.Bytes(), &body); e != nil {
		t.Fatalf("unmarshal: %v", e)
	}
	if body.Message != "Data pasien tidak valid" || len(body.Errors) != 1 {
		t.Fatalf("body = %+v", body)
	}
}

func TestUnauthorized(t *testing.T) {
	c, rec := newCtx(``)
	if err := Unauthorized(c); err != nil {
		t.Fatalf("Unauthorized: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
