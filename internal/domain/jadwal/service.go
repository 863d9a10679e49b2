package jadwal

import (
	"context"
	"fmt"
	"time"

	"github.com/simrs/simrs/internal/domain/aktivitas"
)

// PasienResolver supplies patient names for activity log entries. A lookup
// failure degrades the entry to a generic label instead of failing the
// operation.
type PasienResolver interface {
	NamaPasien(ctx context.Context, id int64) (string, error)
}

type Service struct {
	repo     Repository
	pasien   PasienResolver
	recorder aktivitas.Recorder
}

func NewService(repo Repository, pasien PasienResolver, recorder aktivitas.Recorder) *Service {
	return &Service{repo: repo, pasien: pasien, recorder: recorder}
}

func (s *Service) namaPasien(ctx context.Context, id int64) string {
	nama, err := s.pasien.NamaPasien(ctx, id)
	if err != nil || nama == "" {
		return "pasien"
	}
	return nama
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Jadwal, error) {
	j, err := s.repo.Create(ctx, &Jadwal{
		PasienID:       req.PasienID,
		DokterUserID:   req.DokterUserID,
		Tanggal:        req.Tanggal,
		JenisPelayanan: req.JenisPelayanan,
		NamaLayanan:    req.NamaLayanan,
		Status:         req.Status,
		Keterangan:     req.Keterangan,
	})
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		PasienID:   &j.PasienID,
		Aktivitas:  "Penjadwalan",
		Keterangan: fmt.Sprintf("Jadwal baru untuk %s berhasil dibuat", s.namaPasien(ctx, j.PasienID)),
	})
	return j, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, patch Patch) (*Jadwal, error) {
	j, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		PasienID:   &j.PasienID,
		Aktivitas:  "Update Jadwal",
		Keterangan: fmt.Sprintf("Jadwal untuk %s berhasil diperbarui", s.namaPasien(ctx, j.PasienID)),
	})
	return j, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		PasienID:   &j.PasienID,
		Aktivitas:  "Hapus Jadwal",
		Keterangan: fmt.Sprintf("Jadwal untuk %s berhasil dihapus", s.namaPasien(ctx, j.PasienID)),
	})
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Jadwal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Jadwal, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListHariIni(ctx context.Context) ([]*Jadwal, error) {
	return s.repo.ListByTanggal(ctx, time.Now())
}

func (s *Service) ListByPasien(ctx context.Context, pasienID int64) ([]*Jadwal, error) {
	return s.repo.ListByPasien(ctx, pasienID)
}

func (s *Service) ListByDokter(ctx context.Context, dokterUserID int64) ([]*Jadwal, error) {
	return s.repo.ListByDokter(ctx, dokterUserID)
}

func (s *Service) CountHariIni(ctx context.Context) (int64, error) {
	return s.repo.CountByTanggal(ctx, time.Now())
}
