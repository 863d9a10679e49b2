package diagnostik

import "context"

type Repository interface {
	Create(ctx context.Context, p *Pemeriksaan) (*Pemeriksaan, error)
	GetByID(ctx context.Context, id int64) (*Pemeriksaan, error)
	Update(ctx context.Context, id int64, patch Patch) (*Pemeriksaan, error)
	ListByPasien(ctx context.Context, pasienID int64) ([]*Pemeriksaan, error)
	ListAll(ctx context.Context) ([]*Pemeriksaan, error)
}
