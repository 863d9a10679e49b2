package diagnostik

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/simrs/simrs/internal/platform/store"
)

// MemRepo backs one modality; lab and radiologi each get their own instance
// so ids never collide across the two.
type MemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*Pemeriksaan
	nextID int64
}

func NewMemRepo() *MemRepo {
	return &MemRepo{items: make(map[int64]*Pemeriksaan), nextID: 1}
}

func (r *MemRepo) Create(_ context.Context, p *Pemeriksaan) (*Pemeriksaan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.ID = r.nextID
	r.nextID++
	now := time.Now()
	if cp.Tanggal.IsZero() {
		cp.Tanggal = now
	}
	if cp.Status == "" {
		cp.Status = "menunggu"
	}
	cp.HasilPemeriksaan = nil
	cp.Kesimpulan = nil
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemRepo) GetByID(_ context.Context, id int64) (*Pemeriksaan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemRepo) Update(_ context.Context, id int64, patch Patch) (*Pemeriksaan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Tanggal != nil {
		p.Tanggal = *patch.Tanggal
	}
	if patch.JenisPemeriksaan != nil {
		p.JenisPemeriksaan = *patch.JenisPemeriksaan
	}
	if patch.HasilPemeriksaan != nil {
		p.HasilPemeriksaan = patch.HasilPemeriksaan
	}
	if patch.Kesimpulan != nil {
		p.Kesimpulan = patch.Kesimpulan
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.CatatanDokter != nil {
		p.CatatanDokter = patch.CatatanDokter
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *MemRepo) ListByPasien(_ context.Context, pasienID int64) ([]*Pemeriksaan, error) {
	return r.collect(func(p *Pemeriksaan) bool { return p.PasienID == pasienID })
}

func (r *MemRepo) ListAll(_ context.Context) ([]*Pemeriksaan, error) {
	return r.collect(func(*Pemeriksaan) bool { return true })
}

func (r *MemRepo) collect(match func(*Pemeriksaan) bool) ([]*Pemeriksaan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Pemeriksaan, 0, len(r.items))
	for _, p := range r.items {
		if match(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
