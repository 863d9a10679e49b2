package pasien

import "context"

type Repository interface {
	// Create persists p, generating the id and, when p.NomorRM is empty,
	// the medical record number derived from that id.
	Create(ctx context.Context, p *Pasien) (*Pasien, error)
	GetByID(ctx context.Context, id int64) (*Pasien, error)
	GetByNomorRM(ctx context.Context, nomorRM string) (*Pasien, error)
	GetByNIK(ctx context.Context, nik string) (*Pasien, error)
	Update(ctx context.Context, id int64, patch Patch) (*Pasien, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]*Pasien, error)
	Count(ctx context.Context) (int64, error)
}
