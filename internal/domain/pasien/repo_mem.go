package pasien

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/simrs/simrs/internal/platform/store"
)

type MemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*Pasien
	nextID int64
}

func NewMemRepo() *MemRepo {
	return &MemRepo{items: make(map[int64]*Pasien), nextID: 1}
}

func (r *MemRepo) Create(_ context.Context, p *Pasien) (*Pasien, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.ID = r.nextID
	r.nextID++
	now := time.Now()
	if cp.NomorRM == "" {
		cp.NomorRM = FormatNomorRM(cp.ID, now)
	}
	cp.CreatedAt = now
	cp.UpdatedAt = now
	cp.StatusSinkronisasi = "belum"
	cp.SatuSehatID = nil
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemRepo) GetByID(_ context.Context, id int64) (*Pasien, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemRepo) GetByNomorRM(_ context.Context, nomorRM string) (*Pasien, error) {
	return r.find(func(p *Pasien) bool { return p.NomorRM == nomorRM })
}

func (r *MemRepo) GetByNIK(_ context.Context, nik string) (*Pasien, error) {
	return r.find(func(p *Pasien) bool { return p.NIK == nik })
}

func (r *MemRepo) find(match func(*Pasien) bool) (*Pasien, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if match(p) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *MemRepo) Update(_ context.Context, id int64, patch Patch) (*Pasien, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	applyPatch(p, patch)
	p.UpdatedAt = time.Now()
	cp := *p
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

func (r *MemRepo) ListAll(_ context.Context) ([]*Pasien, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Pasien, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func applyPatch(p *Pasien, patch Patch) {
	if patch.NIK != nil {
		p.NIK = *patch.NIK
	}
	if patch.Nama != nil {
		p.Nama = *patch.Nama
	}
	if patch.JenisKelamin != nil {
		p.JenisKelamin = *patch.JenisKelamin
	}
	if patch.TanggalLahir != nil {
		p.TanggalLahir = *patch.TanggalLahir
	}
	if patch.Alamat != nil {
		p.Alamat = *patch.Alamat
	}
	if patch.Telepon != nil {
		p.Telepon = patch.Telepon
	}
	if patch.Email != nil {
		p.Email = patch.Email
	}
	if patch.GolonganDarah != nil {
		p.GolonganDarah = patch.GolonganDarah
	}
	if patch.Alergi != nil {
		p.Alergi = patch.Alergi
	}
	if patch.CatatanKhusus != nil {
		p.CatatanKhusus = patch.CatatanKhusus
	}
}
