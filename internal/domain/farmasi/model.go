// Package farmasi covers the pharmacy: the drug catalog with stock levels
// and prescriptions issued from medical records. Prescription creation
// decrements stock per line item without a floor, so stock can go negative
// and flag over-prescription for the pharmacist.
package farmasi

import "time"

type Obat struct {
	ID          int64     `json:"id"`
	Kode        string    `json:"kode"`
	Nama        string    `json:"nama"`
	Kategori    string    `json:"kategori"`
	Satuan      string    `json:"satuan"`
	Harga       int64     `json:"harga"`
	Stok        int64     `json:"stok"`
	MinimumStok int64     `json:"minimumStok"`
	Deskripsi   *string   `json:"deskripsi"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Resep struct {
	ID           int64     `json:"id"`
	RekamMedisID int64     `json:"rekamMedisId"`
	Tanggal      time.Time `json:"tanggal"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type DetailResep struct {
	ID          int64     `json:"id"`
	ResepID     int64     `json:"resepId"`
	ObatID      int64     `json:"obatId"`
	Jumlah      int64     `json:"jumlah"`
	AturanPakai string    `json:"aturanPakai"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ResepLengkap is a prescription with its line items embedded, the shape
// returned by the read and create endpoints.
type ResepLengkap struct {
	Resep
	Detail []*DetailResep `json:"detail"`
}

type CreateObatRequest struct {
	Kode        string  `json:"kode" validate:"required"`
	Nama        string  `json:"nama" validate:"required"`
	Kategori    string  `json:"kategori" validate:"required"`
	Satuan      string  `json:"satuan" validate:"required"`
	Harga       int64   `json:"harga" validate:"required,min=0"`
	Stok        int64   `json:"stok"`
	MinimumStok *int64  `json:"minimumStok"`
	Deskripsi   *string `json:"deskripsi"`
}

// ObatPatch carries a partial update; nil fields are left untouched.
type ObatPatch struct {
	Kode        *string `json:"kode"`
	Nama        *string `json:"nama"`
	Kategori    *string `json:"kategori"`
	Satuan      *string `json:"satuan"`
	Harga       *int64  `json:"harga"`
	Stok        *int64  `json:"stok"`
	MinimumStok *int64  `json:"minimumStok"`
	Deskripsi   *string `json:"deskripsi"`
}

type CreateResepRequest struct {
	Resep  ResepData    `json:"resep" validate:"required"`
	Detail []DetailData `json:"detail" validate:"dive"`
}

type ResepData struct {
	RekamMedisID int64  `json:"rekamMedisId" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=menunggu diproses selesai"`
}

type DetailData struct {
	ObatID      int64  `json:"obatId" validate:"required"`
	Jumlah      int64  `json:"jumlah" validate:"required,min=1"`
	AturanPakai string `json:"aturanPakai" validate:"required"`
}

// ResepPatch carries a partial update of the prescription header.
type ResepPatch struct {
	Status *string `json:"status" validate:"omitempty,oneof=menunggu diproses selesai"`
}
