package rawatinap

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/simrs/simrs/internal/platform/store"
)

type MemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*RawatInap
	nextID int64
}

func NewMemRepo() *MemRepo {
	return &MemRepo{items: make(map[int64]*RawatInap), nextID: 1}
}

func (r *MemRepo) Create(_ context.Context, ri *RawatInap) (*RawatInap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ri
	cp.ID = r.nextID
	r.nextID++
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	if cp.Status == "" {
		cp.Status = "aktif"
	}
	cp.TanggalKeluar = nil
	cp.DiagnosisAkhir = nil
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemRepo) GetByID(_ context.Context, id int64) (*RawatInap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ri, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *ri
	return &cp, nil
}

func (r *MemRepo) Update(_ context.Context, id int64, patch Patch) (*RawatInap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ri, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.RekamMedisID != nil {
		ri.RekamMedisID = patch.RekamMedisID
	}
	if patch.TanggalMasuk != nil {
		ri.TanggalMasuk = *patch.TanggalMasuk
	}
	if patch.TanggalKeluar != nil {
		ri.TanggalKeluar = patch.TanggalKeluar
	}
	if patch.Ruangan != nil {
		ri.Ruangan = *patch.Ruangan
	}
	if patch.NomorBed != nil {
		ri.NomorBed = *patch.NomorBed
	}
	if patch.DokterPenanggungJawab != nil {
		ri.DokterPenanggungJawab = *patch.DokterPenanggungJawab
	}
	if patch.DiagnosisAwal != nil {
		ri.DiagnosisAwal = *patch.DiagnosisAwal
	}
	if patch.DiagnosisAkhir != nil {
		ri.DiagnosisAkhir = patch.DiagnosisAkhir
	}
	if patch.CatatanPerawat != nil {
		ri.CatatanPerawat = patch.CatatanPerawat
	}
	if patch.Status != nil {
		ri.Status = *patch.Status
	}
	ri.UpdatedAt = time.Now()
	cp := *ri
	return &cp, nil
}

func (r *MemRepo) ListByPasien(_ context.Context, pasienID int64) ([]*RawatInap, error) {
	return r.collect(func(ri *RawatInap) bool { return ri.PasienID == pasienID })
}

func (r *MemRepo) ListAktif(_ context.Context) ([]*RawatInap, error) {
	return r.collect(func(ri *RawatInap) bool { return ri.Status == "aktif" })
}

func (r *MemRepo) ListAll(_ context.Context) ([]*RawatInap, error) {
	return r.collect(func(*RawatInap) bool { return true })
}

func (r *MemRepo) CountAktif(ctx context.Context) (int64, error) {
	items, err := r.ListAktif(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}

func (r *MemRepo) collect(match func(*RawatInap) bool) ([]*RawatInap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*RawatInap, 0, len(r.items))
	for _, ri := range r.items {
		if match(ri) {
			cp := *ri
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
