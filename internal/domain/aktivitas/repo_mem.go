package aktivitas

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/simrs/simrs/internal/platform/store"
)

type MemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*Aktivitas
	nextID int64
}

func NewMemRepo() *MemRepo {
	return &MemRepo{items: make(map[int64]*Aktivitas), nextID: 1}
}

func (r *MemRepo) Create(_ context.Context, a *Aktivitas) (*Aktivitas, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	cp.ID = r.nextID
	r.nextID++
	if cp.Tanggal.IsZero() {
		cp.Tanggal = time.Now()
	}
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemRepo) GetByID(_ context.Context, id int64) (*Aktivitas, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *MemRepo) ListByUser(_ context.Context, userID int64) ([]*Aktivitas, error) {
	return r.collect(func(a *Aktivitas) bool { return a.UserID == userID }, 0)
}

func (r *MemRepo) ListByPasien(_ context.Context, pasienID int64) ([]*Aktivitas, error) {
	return r.collect(func(a *Aktivitas) bool { return a.PasienID != nil && *a.PasienID == pasienID }, 0)
}

func (r *MemRepo) ListTerbaru(_ context.Context, limit int) ([]*Aktivitas, error) {
	return r.collect(func(*Aktivitas) bool { return true }, limit)
}

func (r *MemRepo) ListAll(_ context.Context) ([]*Aktivitas, error) {
	return r.collect(func(*Aktivitas) bool { return true }, 0)
}

// collect returns matching entries newest first, ties broken by higher id.
func (r *MemRepo) collect(match func(*Aktivitas) bool, limit int) ([]*Aktivitas, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Aktivitas, 0, len(r.items))
	for _, a := range r.items {
		if match(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Tanggal.Equal(out[j].Tanggal) {
			return out[i].Tanggal.After(out[j].Tanggal)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
