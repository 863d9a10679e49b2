package identity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/simrs/simrs/internal/domain/aktivitas"
)

type recorderSpy struct {
	entries []aktivitas.Entry
}

func (r *recorderSpy) Record(_ context.Context, e aktivitas.Entry) {
	r.entries = append(r.entries, e)
}

func newService(t *testing.T) (*Service, *MemRepo, *recorderSpy) {
	t.Helper()
	repo := NewMemRepo()
	spy := &recorderSpy{}
	return NewService(repo, spy), repo, spy
}

func TestRegister_HashesPasswordAndLogs(t *testing.T) {
	svc, _, spy := newService(t)
	u, err := svc.Register(context.Background(), RegisterRequest{
		Username:   "budi",
		Password:   "rahasia123",
		Nama:       "Budi Santoso",
		RumahSakit: "RS Sehat Sentosa",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Password == "rahasia123" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.Contains(u.Password, ".") {
		t.Fatalf("password hash missing salt segment: %q", u.Password)
	}
	if u.Role != "staff" {
		t.Fatalf("default role = %q", u.Role)
	}
	if len(spy.entries) != 1 || spy.entries[0].Aktivitas != "Pendaftaran User" {
		t.Fatalf("entries = %+v", spy.entries)
	}
	if spy.entries[0].UserID != u.ID {
		t.Fatal("activity not attributed to new user")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := newService(t)
	req := RegisterRequest{Username: "budi", Password: "rahasia123", Nama: "Budi", RumahSakit: "RS"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _, spy := newService(t)
	u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "budi", Password: "rahasia123", Nama: "Budi", RumahSakit: "RS",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := svc.Authenticate(context.Background(), LoginRequest{Username: "budi", Password: "rahasia123"})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("id = %d", got.ID)
	}
	last := spy.entries[len(spy.entries)-1]
	if last.Aktivitas != "Login" {
		t.Fatalf("last entry = %+v", last)
	}

	if _, err := svc.Authenticate(context.Background(), LoginRequest{Username: "budi", Password: "salah"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), LoginRequest{Username: "siapa", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: %v", err)
	}
}

func TestAuthenticate_WrongPasswordNotLogged(t *testing.T) {
	svc, _, spy := newService(t)
	svc.Register(context.Background(), RegisterRequest{
		Username: "budi", Password: "rahasia123", Nama: "Budi", RumahSakit: "RS",
	})
	before := len(spy.entries)
	svc.Authenticate(context.Background(), LoginRequest{Username: "budi", Password: "salah"})
	if len(spy.entries) != before {
		t.Fatal("failed login must not append an activity entry")
	}
}

func TestSeedDemoUsers_Idempotent(t *testing.T) {
	svc, repo, _ := newService(t)
	if err := svc.SeedDemoUsers(context.Background()); err != nil {
		t.Fatalf("SeedDemoUsers: %v", err)
	}
	if err := svc.SeedDemoUsers(context.Background()); err != nil {
		t.Fatalf("second SeedDemoUsers: %v", err)
	}
	users, _ := repo.ListAll(context.Background())
	if len(users) != 2 {
		t.Fatalf("expected 2 demo users, got %d", len(users))
	}
	admin, err := repo.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if admin.Password == "admin123" {
		t.Fatal("demo password stored in plaintext")
	}
	if _, err := svc.Authenticate(context.Background(), LoginRequest{Username: "admin", Password: "admin123"}); err != nil {
		t.Fatalf("demo login: %v", err)
	}
}
