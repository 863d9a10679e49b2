package rawatinap

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

func (s *Service) namaPasien(ctx context.Context, id int64, fallback string) string {
	nama, err := s.pasien.NamaPasien(ctx, id)
	if err != nil || nama == "" {
		return fallback
	}
	return nama
}

func (s *Service) Admit(ctx context.Context, userID int64, req CreateRequest) (*RawatInap, error) {
	ri, err := s.repo.Create(ctx, &RawatInap{
		PasienID:              req.PasienID,
		RekamMedisID:          req.RekamMedisID,
		TanggalMasuk:          req.TanggalMasuk,
		Ruangan:               req.Ruangan,
		NomorBed:              req.NomorBed,
		DokterPenanggungJawab: req.DokterPenanggungJawab,
		DiagnosisAwal:         req.DiagnosisAwal,
		CatatanPerawat:        req.CatatanPerawat,
	})
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:   userID,
		PasienID: &ri.PasienID,
		Aktivitas: "Pendaftaran Rawat Inap",
		Keterangan: fmt.Sprintf("%s terdaftar untuk rawat inap di ruangan %s",
			s.namaPasien(ctx, ri.PasienID, "Pasien"), ri.Ruangan),
		Status: "Aktif",
	})
	return ri, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, patch Patch) (*RawatInap, error) {
	ri, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:   userID,
		PasienID: &ri.PasienID,
		Aktivitas: "Update Rawat Inap",
		Keterangan: fmt.Sprintf("Data rawat inap %s berhasil diperbarui",
			s.namaPasien(ctx, ri.PasienID, "pasien")),
		Status: ri.Status,
	})
	return ri, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*RawatInap, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*RawatInap, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListAktif(ctx context.Context) ([]*RawatInap, error) {
	return s.repo.ListAktif(ctx)
}

func (s *Service) ListByPasien(ctx context.Context, pasienID int64) ([]*RawatInap, error) {
	return s.repo.ListByPasien(ctx, pasienID)
}

func (s *Service) CountAktif(ctx context.Context) (int64, error) {
	return s.repo.CountAktif(ctx)
}
