package farmasi

import "context"

type ObatRepository interface {
	Create(ctx context.Context, o *Obat) (*Obat, error)
	GetByID(ctx context.Context, id int64) (*Obat, error)
	GetByKode(ctx context.Context, kode string) (*Obat, error)
	Update(ctx context.Context, id int64, patch ObatPatch) (*Obat, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]*Obat, error)
	// AdjustStok adds delta to the stock level, which may drive it negative.
	AdjustStok(ctx context.Context, id int64, delta int64) (*Obat, error)
}

type ResepRepository interface {
	Create(ctx context.Context, rs *Resep) (*Resep, error)
	GetByID(ctx context.Context, id int64) (*Resep, error)
	GetByRekamMedis(ctx context.Context, rekamMedisID int64) (*Resep, error)
	Update(ctx context.Context, id int64, patch ResepPatch) (*Resep, error)
	ListAll(ctx context.Context) ([]*Resep, error)

	CreateDetail(ctx context.Context, d *DetailResep) (*DetailResep, error)
	ListDetailByResep(ctx context.Context, resepID int64) ([]*DetailResep, error)
}
