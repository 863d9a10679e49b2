package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/simrs/simrs/internal/platform/auth"
)

func setupServer(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()
	e := echo.New()
	e.Use(auth.Middleware(auth.NewStore("test-secret", false)))
	svc, _, _ := newService(t)
	h := NewHandler(svc)
	h.RegisterRoutes(e.Group("/api"), e.Group("/api", auth.RequireLogin()))
	return e, svc
}

func doJSON(e *echo.Echo, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginFlow(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/api/register",
		`{"username":"budi","password":"rahasia123","nama":"Budi","rumahSakit":"RS Sehat"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d body=%s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "rahasia123") {
		t.Fatal("response leaks password")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("register did not open a session")
	}

	rec = doJSON(e, http.MethodGet, "/api/user", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("current user status = %d", rec.Code)
	}
	var u map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &u)
	if u["username"] != "budi" {
		t.Fatalf("user = %+v", u)
	}
	if _, leaked := u["password"]; leaked {
		t.Fatal("current user leaks password")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	e, svc := setupServer(t)
	svc.SeedDemoUsers(nil)

	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"salah"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCurrentUser_Anonymous(t *testing.T) {
	e, _ := setupServer(t)
	rec := doJSON(e, http.MethodGet, "/api/user", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListUsers_NoPasswordField(t *testing.T) {
	e, svc := setupServer(t)
	svc.SeedDemoUsers(nil)

	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`, nil)
	cookies := rec.Result().Cookies()

	rec = doJSON(e, http.MethodGet, "/api/users", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("listing leaks password: %s", rec.Body.String())
	}
	var users []map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &users)
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestListUsers_RequiresSession(t *testing.T) {
	e, _ := setupServer(t)
	rec := doJSON(e, http.MethodGet, "/api/users", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLogout(t *testing.T) {
	e, svc := setupServer(t)
	svc.SeedDemoUsers(nil)
	rec := doJSON(e, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`, nil)
	cookies := rec.Result().Cookies()

	rec = doJSON(e, http.MethodPost, "/api/logout", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d", rec.Code)
	}
	after := rec.Result().Cookies()

	rec = doJSON(e, http.MethodGet, "/api/user", "", after)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("after logout status = %d", rec.Code)
	}
}
