package jadwal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/simrs/simrs/internal/platform/store"
)

type MemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*Jadwal
	nextID int64
}

func NewMemRepo() *MemRepo {
	return &MemRepo{items: make(map[int64]*Jadwal), nextID: 1}
}

func (r *MemRepo) Create(_ context.Context, j *Jadwal) (*Jadwal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *j
	cp.ID = r.nextID
	r.nextID++
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	if cp.Status == "" {
		cp.Status = "menunggu"
	}
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemRepo) GetByID(_ context.Context, id int64) (*Jadwal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *MemRepo) Update(_ context.Context, id int64, patch Patch) (*Jadwal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.PasienID != nil {
		j.PasienID = *patch.PasienID
	}
	if patch.DokterUserID != nil {
		j.DokterUserID = *patch.DokterUserID
	}
	if patch.Tanggal != nil {
		j.Tanggal = *patch.Tanggal
	}
	if patch.JenisPelayanan != nil {
		j.JenisPelayanan = *patch.JenisPelayanan
	}
	if patch.NamaLayanan != nil {
		j.NamaLayanan = *patch.NamaLayanan
	}
	if patch.Status != nil {
		j.Status = *patch.Status
	}
	if patch.Keterangan != nil {
		j.Keterangan = patch.Keterangan
	}
	j.UpdatedAt = time.Now()
	cp := *j
	return &cp, nil
}

func (r *MemRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemRepo) ListByPasien(_ context.Context, pasienID int64) ([]*Jadwal, error) {
	return r.collect(func(j *Jadwal) bool { return j.PasienID == pasienID })
}

func (r *MemRepo) ListByDokter(_ context.Context, dokterUserID int64) ([]*Jadwal, error) {
	return r.collect(func(j *Jadwal) bool { return j.DokterUserID == dokterUserID })
}

func (r *MemRepo) ListByTanggal(_ context.Context, tanggal time.Time) ([]*Jadwal, error) {
	return r.collect(func(j *Jadwal) bool { return SameDay(j.Tanggal, tanggal) })
}

func (r *MemRepo) ListAll(_ context.Context) ([]*Jadwal, error) {
	return r.collect(func(*Jadwal) bool { return true })
}

func (r *MemRepo) CountByTanggal(ctx context.Context, tanggal time.Time) (int64, error) {
	items, err := r.ListByTanggal(ctx, tanggal)
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}

func (r *MemRepo) collect(match func(*Jadwal) bool) ([]*Jadwal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Jadwal, 0, len(r.items))
	for _, j := range r.items {
		if match(j) {
			cp := *j
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
