package farmasi

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/simrs/simrs/internal/platform/store"
)

type ObatMemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*Obat
	nextID int64
}

func NewObatMemRepo() *ObatMemRepo {
	return &ObatMemRepo{items: make(map[int64]*Obat), nextID: 1}
}

func (r *ObatMemRepo) Create(_ context.Context, o *Obat) (*Obat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	cp.ID = r.nextID
	r.nextID++
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *ObatMemRepo) GetByID(_ context.Context, id int64) (*Obat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *ObatMemRepo) GetByKode(_ context.Context, kode string) (*Obat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.items {
		if o.Kode == kode {
			cp := *o
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *ObatMemRepo) Update(_ context.Context, id int64, patch ObatPatch) (*Obat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Kode != nil {
		o.Kode = *patch.Kode
	}
	if patch.Nama != nil {
		o.Nama = *patch.Nama
	}
	if patch.Kategori != nil {
		o.Kategori = *patch.Kategori
	}
	if patch.Satuan != nil {
		o.Satuan = *patch.Satuan
	}
	if patch.Harga != nil {
		o.Harga = *patch.Harga
	}
	if patch.Stok != nil {
		o.Stok = *patch.Stok
	}
	if patch.MinimumStok != nil {
		o.MinimumStok = *patch.MinimumStok
	}
	if patch.Deskripsi != nil {
		o.Deskripsi = patch.Deskripsi
	}
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

func (r *ObatMemRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *ObatMemRepo) ListAll(_ context.Context) ([]*Obat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Obat, 0, len(r.items))
	for _, o := range r.items {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ObatMemRepo) AdjustStok(_ context.Context, id int64, delta int64) (*Obat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	o.Stok += delta
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

type ResepMemRepo struct {
	mu           sync.RWMutex
	resep        map[int64]*Resep
	detail       map[int64]*DetailResep
	nextResepID  int64
	nextDetailID int64
}

func NewResepMemRepo() *ResepMemRepo {
	return &ResepMemRepo{
		resep:        make(map[int64]*Resep),
		detail:       make(map[int64]*DetailResep),
		nextResepID:  1,
		nextDetailID: 1,
	}
}

func (r *ResepMemRepo) Create(_ context.Context, rs *Resep) (*Resep, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rs
	cp.ID = r.nextResepID
	r.nextResepID++
	now := time.Now()
	if cp.Tanggal.IsZero() {
		cp.Tanggal = now
	}
	if cp.Status == "" {
		cp.Status = "menunggu"
	}
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.resep[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *ResepMemRepo) GetByID(_ context.Context, id int64) (*Resep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rs, ok := r.resep[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rs
	return &cp, nil
}

func (r *ResepMemRepo) GetByRekamMedis(_ context.Context, rekamMedisID int64) (*Resep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rs := range r.resep {
		if rs.RekamMedisID == rekamMedisID {
			cp := *rs
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *ResepMemRepo) Update(_ context.Context, id int64, patch ResepPatch) (*Resep, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rs, ok := r.resep[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Status != nil {
		rs.Status = *patch.Status
	}
	rs.UpdatedAt = time.Now()
	cp := *rs
	return &cp, nil
}

func (r *ResepMemRepo) ListAll(_ context.Context) ([]*Resep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Resep, 0, len(r.resep))
	for _, rs := range r.resep {
		cp := *rs
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ResepMemRepo) CreateDetail(_ context.Context, d *DetailResep) (*DetailResep, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	cp.ID = r.nextDetailID
	r.nextDetailID++
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.detail[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *ResepMemRepo) ListDetailByResep(_ context.Context, resepID int64) ([]*DetailResep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*DetailResep, 0)
	for _, d := range r.detail {
		if d.ResepID == resepID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
