package rekammedis

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/simrs/simrs/internal/platform/store"
)

type MemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*RekamMedis
	nextID int64
}

func NewMemRepo() *MemRepo {
	return &MemRepo{items: make(map[int64]*RekamMedis), nextID: 1}
}

func (r *MemRepo) Create(_ context.Context, rm *RekamMedis) (*RekamMedis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rm
	cp.ID = r.nextID
	r.nextID++
	now := time.Now()
	if cp.Tanggal.IsZero() {
		cp.Tanggal = now
	}
	cp.CreatedAt = now
	cp.UpdatedAt = now
	cp.StatusSinkronisasi = "belum"
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemRepo) GetByID(_ context.Context, id int64) (*RekamMedis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rm
	return &cp, nil
}

func (r *MemRepo) Update(_ context.Context, id int64, patch Patch) (*RekamMedis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.DokterUserID != nil {
		rm.DokterUserID = *patch.DokterUserID
	}
	if patch.Tanggal != nil {
		rm.Tanggal = *patch.Tanggal
	}
	if patch.KeluhanUtama != nil {
		rm.KeluhanUtama = *patch.KeluhanUtama
	}
	if patch.RiwayatPenyakitSekarang != nil {
		rm.RiwayatPenyakitSekarang = patch.RiwayatPenyakitSekarang
	}
	if patch.RiwayatPenyakitDahulu != nil {
		rm.RiwayatPenyakitDahulu = patch.RiwayatPenyakitDahulu
	}
	if patch.PemeriksaanFisik != nil {
		rm.PemeriksaanFisik = patch.PemeriksaanFisik
	}
	if patch.Diagnosis != nil {
		rm.Diagnosis = *patch.Diagnosis
	}
	if patch.Tindakan != nil {
		rm.Tindakan = patch.Tindakan
	}
	if patch.Pengobatan != nil {
		rm.Pengobatan = patch.Pengobatan
	}
	if patch.CatatanLain != nil {
		rm.CatatanLain = patch.CatatanLain
	}
	if patch.JenisPelayanan != nil {
		rm.JenisPelayanan = *patch.JenisPelayanan
	}
	rm.UpdatedAt = time.Now()
	cp := *rm
	return &cp, nil
}

func (r *MemRepo) ListByPasien(_ context.Context, pasienID int64) ([]*RekamMedis, error) {
	return r.collect(func(rm *RekamMedis) bool { return rm.PasienID == pasienID })
}

func (r *MemRepo) ListAll(_ context.Context) ([]*RekamMedis, error) {
	return r.collect(func(*RekamMedis) bool { return true })
}

func (r *MemRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *MemRepo) collect(match func(*RekamMedis) bool) ([]*RekamMedis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*RekamMedis, 0, len(r.items))
	for _, rm := range r.items {
		if match(rm) {
			cp := *rm
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
