package farmasi

import (
	"context"
	"errors"
	"fmt"

	"github.com/simrs/simrs/internal/domain/aktivitas"
	"github.com/simrs/simrs/internal/platform/store"
)

// ErrKodeTerdaftar is returned when adding a drug whose kode already exists.
var ErrKodeTerdaftar = errors.New("kode obat sudah terdaftar")

// PasienResolver supplies patient names for activity log entries.
type PasienResolver interface {
	NamaPasien(ctx context.Context, id int64) (string, error)
}

// RekamMedisResolver maps a medical record to its patient so prescription
// activity can be attributed. A failed lookup skips the log entry.
type RekamMedisResolver interface {
	PasienIDForRekamMedis(ctx context.Context, rekamMedisID int64) (int64, error)
}

type Service struct {
	obat     ObatRepository
	resep    ResepRepository
	pasien   PasienResolver
	rekam    RekamMedisResolver
	recorder aktivitas.Recorder
}

func NewService(obat ObatRepository, resep ResepRepository, pasien PasienResolver,
	rekam RekamMedisResolver, recorder aktivitas.Recorder) *Service {
	return &Service{obat: obat, resep: resep, pasien: pasien, rekam: rekam, recorder: recorder}
}

func (s *Service) namaPasien(ctx context.Context, id int64) string {
	nama, err := s.pasien.NamaPasien(ctx, id)
	if err != nil || nama == "" {
		return "pasien"
	}
	return nama
}

func (s *Service) CreateObat(ctx context.Context, userID int64, req CreateObatRequest) (*Obat, error) {
	if _, err := s.obat.GetByKode(ctx, req.Kode); err == nil {
		return nil, ErrKodeTerdaftar
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	minStok := int64(10)
	if req.MinimumStok != nil {
		minStok = *req.MinimumStok
	}
	o, err := s.obat.Create(ctx, &Obat{
		Kode:        req.Kode,
		Nama:        req.Nama,
		Kategori:    req.Kategori,
		Satuan:      req.Satuan,
		Harga:       req.Harga,
		Stok:        req.Stok,
		MinimumStok: minStok,
		Deskripsi:   req.Deskripsi,
	})
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		Aktivitas:  "Tambah Obat",
		Keterangan: fmt.Sprintf("Obat %s berhasil ditambahkan", o.Nama),
	})
	return o, nil
}

func (s *Service) UpdateObat(ctx context.Context, userID, id int64, patch ObatPatch) (*Obat, error) {
	if patch.Kode != nil {
		existing, err := s.obat.GetByKode(ctx, *patch.Kode)
		if err == nil && existing.ID != id {
			return nil, ErrKodeTerdaftar
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	o, err := s.obat.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		Aktivitas:  "Update Obat",
		Keterangan: fmt.Sprintf("Obat %s berhasil diperbarui", o.Nama),
	})
	return o, nil
}

func (s *Service) DeleteObat(ctx context.Context, userID, id int64) error {
	o, err := s.obat.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.obat.Delete(ctx, id); err != nil {
		return err
	}
	s.recorder.Record(ctx, aktivitas.Entry{
		UserID:     userID,
		Aktivitas:  "Hapus Obat",
		Keterangan: fmt.Sprintf("Obat %s berhasil dihapus", o.Nama),
	})
	return nil
}

func (s *Service) GetObat(ctx context.Context, id int64) (*Obat, error) {
	return s.obat.GetByID(ctx, id)
}

func (s *Service) ListObat(ctx context.Context) ([]*Obat, error) {
	return s.obat.ListAll(ctx)
}

// CreateResep writes the prescription header, then its line items one at a
// time, decrementing stock per line. A line naming an unknown drug still
// records the line but skips the decrement. Stock has no floor, so a
// prescription can drive it negative. The steps are not isolated: readers
// may observe the header before its lines exist.
func (s *Service) CreateResep(ctx context.Context, userID int64, req CreateResepRequest) (*ResepLengkap, error) {
	created, err := s.resep.Create(ctx, &Resep{
		RekamMedisID: req.Resep.RekamMedisID,
		Status:       req.Resep.Status,
	})
	if err != nil {
		return nil, err
	}

	detail := make([]*DetailResep, 0, len(req.Detail))
	for _, item := range req.Detail {
		d, err := s.resep.CreateDetail(ctx, &DetailResep{
			ResepID:     created.ID,
			ObatID:      item.ObatID,
			Jumlah:      item.Jumlah,
			AturanPakai: item.AturanPakai,
		})
		if err != nil {
			return nil, err
		}
		detail = append(detail, d)

		if _, err := s.obat.AdjustStok(ctx, item.ObatID, -item.Jumlah); err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	if pasienID, err := s.rekam.PasienIDForRekamMedis(ctx, created.RekamMedisID); err == nil {
		s.recorder.Record(ctx, aktivitas.Entry{
			UserID:     userID,
			PasienID:   &pasienID,
			Aktivitas:  "Pembuatan Resep",
			Keterangan: fmt.Sprintf("Resep dibuat untuk %s", s.namaPasien(ctx, pasienID)),
			Status:     "Menunggu",
		})
	}

	return &ResepLengkap{Resep: *created, Detail: detail}, nil
}

func (s *Service) UpdateResep(ctx context.Context, userID, id int64, patch ResepPatch) (*Resep, error) {
	rs, err := s.resep.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if pasienID, err := s.rekam.PasienIDForRekamMedis(ctx, rs.RekamMedisID); err == nil {
		s.recorder.Record(ctx, aktivitas.Entry{
			UserID:     userID,
			PasienID:   &pasienID,
			Aktivitas:  "Update Status Resep",
			Keterangan: fmt.Sprintf("Status resep untuk %s diubah menjadi %s", s.namaPasien(ctx, pasienID), rs.Status),
			Status:     rs.Status,
		})
	}
	return rs, nil
}

func (s *Service) GetResep(ctx context.Context, id int64) (*ResepLengkap, error) {
	rs, err := s.resep.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail, err := s.resep.ListDetailByResep(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ResepLengkap{Resep: *rs, Detail: detail}, nil
}

func (s *Service) ListResep(ctx context.Context) ([]*Resep, error) {
	return s.resep.ListAll(ctx)
}
