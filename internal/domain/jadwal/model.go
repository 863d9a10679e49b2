// Package jadwal covers service scheduling: appointments for poli, lab and
// radiologi visits, including the calendar-day "hari ini" view.
package jadwal

import "time"

type Jadwal struct {
	ID             int64     `json:"id"`
	PasienID       int64     `json:"pasienId"`
	DokterUserID   int64     `json:"dokterUserId"`
	Tanggal        time.Time `json:"tanggal"`
	JenisPelayanan string    `json:"jenisPelayanan"`
	NamaLayanan    string    `json:"namaLayanan"`
	Status         string    `json:"status"`
	Keterangan     *string   `json:"keterangan"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateRequest struct {
	PasienID       int64     `json:"pasienId" validate:"required"`
	DokterUserID   int64     `json:"dokterUserId" validate:"required"`
	Tanggal        time.Time `json:"tanggal" validate:"required"`
	JenisPelayanan string    `json:"jenisPelayanan" validate:"required,oneof=poli lab radiologi"`
	NamaLayanan    string    `json:"namaLayanan" validate:"required"`
	Status         string    `json:"status" validate:"omitempty,oneof=menunggu konfirmasi batal selesai"`
	Keterangan     *string   `json:"keterangan"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	PasienID       *int64     `json:"pasienId"`
	DokterUserID   *int64     `json:"dokterUserId"`
	Tanggal        *time.Time `json:"tanggal"`
	JenisPelayanan *string    `json:"jenisPelayanan" validate:"omitempty,oneof=poli lab radiologi"`
	NamaLayanan    *string    `json:"namaLayanan"`
	Status         *string    `json:"status" validate:"omitempty,oneof=menunggu konfirmasi batal selesai"`
	Keterangan     *string    `json:"keterangan"`
}

// SameDay reports whether two instants fall on the same calendar day in
// local time. The "hari ini" view matches on this, not on a 24h window.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
