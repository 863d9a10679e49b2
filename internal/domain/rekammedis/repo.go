package rekammedis

import "context"

type Repository interface {
	Create(ctx context.Context, rm *RekamMedis) (*RekamMedis, error)
	GetByID(ctx context.Context, id int64) (*RekamMedis, error)
	Update(ctx context.Context, id int64, patch Patch) (*RekamMedis, error)
	ListByPasien(ctx context.Context, pasienID int64) ([]*RekamMedis, error)
	ListAll(ctx context.Context) ([]*RekamMedis, error)
	Count(ctx context.Context) (int64, error)
}
