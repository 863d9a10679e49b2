package pasien

import (
	"context"
	"errors"
	"fmt"

	"github.com/simrs/simrs/internal/domain/aktivitas"
	"github.com/simrs/simrs/internal/platform/store"
)

// ErrNIKTerdaftar is returned when registering a patient whose NIK already
// exists.
var ErrNIKTerdaftar = errors.New("nik sudah terdaftar")

// ErrNomorRMTerdaftar is returned when a caller supplies an explicit medical
// record number that is already in use.
var ErrNomorRMTerdaftar = errors.New("nomor rm sudah terdaftar")

type Service struct {
	repo     Repository
	recorder aktivitas.Recorder
}

func NewService(repo Repository, recorder aktivitas.Recorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

func (s *Service) Register(ctx context.Context, userID int64, req CreateRequest) (*Pasien, error) {
	if _, err := s.repo.GetByNIK(ctx, req.NIK); err == nil {
		return nil, ErrNIKTerdaftar
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if req.NomorRM != "" {
		if _, err := s.repo.GetByNomorRM(ctx, req.NomorRM); err == nil {
			return nil, ErrNomorRMTerdaftar
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	p, err := s.repo.Create(ctx, &Pasien{
		NomorRM:       req.NomorRM,
		NIK:           req.NIK,
		Nama:          req.Nama,
		JenisKelamin:  req.JenisKelamin,
		TanggalLahir:  req.TanggalLahir,
		Alamat:        req.Alamat,
		Telepon:       req.Telepon,
		Email:         req.Email,
		GolonganDarah: req.GolonganDarah,
		Alergi:        req.Alergi,
		CatatanKhusus: req.CatatanKhusus,
	})
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		PasienID:   &p.ID,
		Aktivitas:  "Pendaftaran Pasien",
		Keterangan: fmt.Sprintf("Pasien %s berhasil didaftarkan", p.Nama),
	})
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID, id int64, patch Patch) (*Pasien, error) {
	if patch.NIK != nil {
		existing, err := s.repo.GetByNIK(ctx, *patch.NIK)
		if err == nil && existing.ID != id {
			return nil, ErrNIKTerdaftar
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		PasienID:   &p.ID,
		Aktivitas:  "Update Data Pasien",
		Keterangan: fmt.Sprintf("Data pasien %s berhasil diperbarui", p.Nama),
	})
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		Aktivitas:  "Hapus Data Pasien",
		Keterangan: fmt.Sprintf("Data pasien %s berhasil dihapus", p.Nama),
	})
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Pasien, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByNomorRM(ctx context.Context, nomorRM string) (*Pasien, error) {
	return s.repo.GetByNomorRM(ctx, nomorRM)
}

func (s *Service) List(ctx context.Context) ([]*Pasien, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
