package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/simrs/simrs/internal/domain/aktivitas"
	"github.com/simrs/simrs/internal/platform/auth"
	"github.com/simrs/simrs/internal/platform/store"
)

// ErrUsernameTaken is returned by Register when the username already exists.
var ErrUsernameTaken = errors.New("username sudah digunakan")

// ErrInvalidCredentials is returned by Authenticate for an unknown username,
// a wrong password, or a deactivated account. Callers must not distinguish
// the three.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo     Repository
	recorder aktivitas.Recorder
}

func NewService(repo Repository, recorder aktivitas.Recorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	role := req.Role
	if role == "" {
		role = "staff"
	}
	u, err := s.repo.Create(ctx, &User{
		Username:   req.Username,
		Password:   hashed,
		Nama:       req.Nama,
		Role:       role,
		RumahSakit: req.RumahSakit,
		Active:     true,
	})
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     u.ID,
		Aktivitas:  "Pendaftaran User",
		Keterangan: fmt.Sprintf("User %s berhasil terdaftar", u.Username),
	})
	return u, nil
}

func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	ok, err := auth.ComparePasswords(u.Password, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok || !u.Active {
		return nil, ErrInvalidCredentials
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     u.ID,
		Aktivitas:  "Login",
		Keterangan: fmt.Sprintf("User %s berhasil login", u.Username),
	})
	return u, nil
}

func (s *Service) RecordLogout(ctx context.Context, userID int64) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     u.ID,
		Aktivitas:  "Logout",
		Keterangan: fmt.Sprintf("User %s berhasil logout", u.Username),
	})
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.ListAll(ctx)
}

// SeedDemoUsers inserts the demo accounts used by fresh installs. Existing
// usernames are left untouched so restarts stay idempotent on postgres.
func (s *Service) SeedDemoUsers(ctx context.Context) error {
	demo := []struct {
		username, password, nama, role string
	}{
		{"admin", "admin123", "Administrator", "admin"},
		{"dokter", "dokter123", "dr. Siti Rahayu", "dokter"},
	}
	for _, d := range demo {
		if _, err := s.repo.GetByUsername(ctx, d.username); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		hashed, err := auth.HashPassword(d.password)
		if err != nil {
			return err
		}
		if _, err := s.repo.Create(ctx, &User{
			Username:   d.username,
			Password:   hashed,
			Nama:       d.nama,
			Role:       d.role,
			RumahSakit: "RS Sehat Sentosa",
			Active:     true,
		}); err != nil {
			return err
		}
	}
	return nil
}
