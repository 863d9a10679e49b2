package diagnostik

import (
	"context"
	"fmt"

	"github.com/simrs/simrs/internal/domain/aktivitas"
)

// PasienResolver supplies patient names for activity log entries.
type PasienResolver interface {
	NamaPasien(ctx context.Context, id int64) (string, error)
}

// Service serves one modality; the activity labels differ between lab and
// radiologi, everything else is shared.
type Service struct {
	jenis    Jenis
	repo     Repository
	pasien   PasienResolver
	recorder aktivitas.Recorder
}

func NewService(jenis Jenis, repo Repository, pasien PasienResolver, recorder aktivitas.Recorder) *Service {
	return &Service{jenis: jenis, repo: repo, pasien: pasien, recorder: recorder}
}

func (s *Service) namaPasien(ctx context.Context, id int64) string {
	nama, err := s.pasien.NamaPasien(ctx, id)
	if err != nil || nama == "" {
		return "pasien"
	}
	return nama
}

func (s *Service) labels() (created, updated, short string) {
	if s.jenis == Radiologi {
		return "Pemeriksaan Radiologi", "Update Pemeriksaan Radiologi", "radiologi"
	}
	return "Pemeriksaan Laboratorium", "Update Pemeriksaan Laboratorium", "lab"
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Pemeriksaan, error) {
	p := &Pemeriksaan{
		PasienID:         req.PasienID,
		DokterUserID:     req.DokterUserID,
		JenisPemeriksaan: req.JenisPemeriksaan,
		CatatanDokter:    req.CatatanDokter,
	}
	if req.Tanggal != nil {
		p.Tanggal = *req.Tanggal
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	label, _, short := s.labels()
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:   userID,
		PasienID: &created.PasienID,
		Aktivitas: label,
		Keterangan: fmt.Sprintf("Pemeriksaan %s %s untuk %s",
			short, created.JenisPemeriksaan, s.namaPasien(ctx, created.PasienID)),
		Status: "Menunggu",
	})
	return created, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, patch Patch) (*Pemeriksaan, error) {
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	_, label, short := s.labels()
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:   userID,
		PasienID: &p.PasienID,
		Aktivitas: label,
		Keterangan: fmt.Sprintf("Update pemeriksaan %s %s untuk %s",
			short, p.JenisPemeriksaan, s.namaPasien(ctx, p.PasienID)),
		Status: p.Status,
	})
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Pemeriksaan, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Pemeriksaan, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByPasien(ctx context.Context, pasienID int64) ([]*Pemeriksaan, error) {
	return s.repo.ListByPasien(ctx, pasienID)
}
