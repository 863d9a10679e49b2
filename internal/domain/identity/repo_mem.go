package identity

import (
	"context"
	"sort"
	"sync"

	"github.com/simrs/simrs/internal/platform/store"
)

type MemRepo struct {
	mu     sync.RWMutex
	items  map[int64]*User
	nextID int64
}

func NewMemRepo() *MemRepo {
	return &MemRepo{items: make(map[int64]*User), nextID: 1}
}

func (r *MemRepo) Create(_ context.Context, u *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	cp.ID = r.nextID
	r.nextID++
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *MemRepo) GetByID(_ context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *MemRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *MemRepo) ListAll(_ context.Context) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*User, 0, len(r.items))
	for _, u := range r.items {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepo) CountByRole(_ context.Context, role string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, u := range r.items {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}
