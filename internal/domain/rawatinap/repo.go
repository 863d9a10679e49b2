package rawatinap

import "context"

type Repository interface {
	Create(ctx context.Context, ri *RawatInap) (*RawatInap, error)
	GetByID(ctx context.Context, id int64) (*RawatInap, error)
	Update(ctx context.Context, id int64, patch Patch) (*RawatInap, error)
	ListByPasien(ctx context.Context, pasienID int64) ([]*RawatInap, error)
	ListAktif(ctx context.Context) ([]*RawatInap, error)
	ListAll(ctx context.Context) ([]*RawatInap, error)
	CountAktif(ctx context.Context) (int64, error)
}
