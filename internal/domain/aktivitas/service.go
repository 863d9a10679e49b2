package aktivitas

import (
	"context"

	"github.com/rs/zerolog"
)

// Service writes and reads the activity log. It implements Recorder for the
// other domain services; a failed write is logged and swallowed so the
// triggering operation still succeeds.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) Record(ctx context.Context, e Entry) {
	status := e.Status
	if status == "" {
		status = "Selesai"
	}
	_, err := s.repo.Create(ctx, &Aktivitas{
		UserID:     e.UserID,
		PasienID:   e.PasienID,
		Aktivitas:  e.Aktivitas,
		Keterangan: e.Keterangan,
		Status:     status,
	})
	if err != nil {
		s.log.Error().Err(err).Str("aktivitas", e.Aktivitas).Msg("failed to record activity")
	}
}

func (s *Service) ListTerbaru(ctx context.Context, limit int) ([]*Aktivitas, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListTerbaru(ctx, limit)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*Aktivitas, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByPasien(ctx context.Context, pasienID int64) ([]*Aktivitas, error) {
	return s.repo.ListByPasien(ctx, pasienID)
}

func (s *Service) ListAll(ctx context.Context) ([]*Aktivitas, error) {
	return s.repo.ListAll(ctx)
}
