package rekammedis

import (
	"context"
	"fmt"

	"github.com/simrs/simrs/internal/domain/aktivitas"
)

// PasienResolver supplies patient names for activity log entries.
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

func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*RekamMedis, error) {
	rm := &RekamMedis{
		PasienID:                req.PasienID,
		DokterUserID:            req.DokterUserID,
		KeluhanUtama:            req.KeluhanUtama,
		RiwayatPenyakitSekarang: req.RiwayatPenyakitSekarang,
		RiwayatPenyakitDahulu:   req.RiwayatPenyakitDahulu,
		PemeriksaanFisik:        req.PemeriksaanFisik,
		Diagnosis:               req.Diagnosis,
		Tindakan:                req.Tindakan,
		Pengobatan:              req.Pengobatan,
		CatatanLain:             req.CatatanLain,
		JenisPelayanan:          req.JenisPelayanan,
	}
	if req.Tanggal != nil {
		rm.Tanggal = *req.Tanggal
	}
	created, err := s.repo.Create(ctx, rm)
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		PasienID:   &created.PasienID,
		Aktivitas:  "Pembuatan Rekam Medis",
		Keterangan: fmt.Sprintf("Rekam medis baru untuk %s berhasil dibuat", s.namaPasien(ctx, created.PasienID)),
	})
	return created, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, patch Patch) (*RekamMedis, error) {
	rm, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		PasienID:   &rm.PasienID,
		Aktivitas:  "Update Rekam Medis",
		Keterangan: fmt.Sprintf("Rekam medis untuk %s berhasil diperbarui", s.namaPasien(ctx, rm.PasienID)),
	})
	return rm, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*RekamMedis, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*RekamMedis, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByPasien(ctx context.Context, pasienID int64) ([]*RekamMedis, error) {
	return s.repo.ListByPasien(ctx, pasienID)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
