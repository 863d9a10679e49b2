// Package diagnostik covers laboratory and radiology examination orders.
// The two modalities share one model and repository shape but keep separate
// stores, id spaces and endpoints.
package diagnostik

import (
	"encoding/json"
	"time"
)

// Jenis selects the examination modality.
type Jenis string

const (
	Laboratorium Jenis = "laboratorium"
	Radiologi    Jenis = "radiologi"
)

type Pemeriksaan struct {
	ID               int64           `json:"id"`
	PasienID         int64           `json:"pasienId"`
	DokterUserID     int64           `json:"dokterUserId"`
	Tanggal          time.Time       `json:"tanggal"`
	JenisPemeriksaan string          `json:"jenisPemeriksaan"`
	HasilPemeriksaan json.RawMessage `json:"hasilPemeriksaan"`
	Kesimpulan       *string         `json:"kesimpulan"`
	Status           string          `json:"status"`
	CatatanDokter    *string         `json:"catatanDokter"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type CreateRequest struct {
	PasienID         int64      `json:"pasienId" validate:"required"`
	DokterUserID     int64      `json:"dokterUserId" validate:"required"`
	Tanggal          *time.Time `json:"tanggal"`
	JenisPemeriksaan string     `json:"jenisPemeriksaan" validate:"required"`
	CatatanDokter    *string    `json:"catatanDokter"`
}

// Patch carries a partial update; results and the conclusion arrive here
// once the examination is done.
type Patch struct {
	Tanggal          *time.Time      `json:"tanggal"`
	JenisPemeriksaan *string         `json:"jenisPemeriksaan"`
	HasilPemeriksaan json.RawMessage `json:"hasilPemeriksaan"`
	Kesimpulan       *string         `json:"kesimpulan"`
	Status           *string         `json:"status" validate:"omitempty,oneof=menunggu diproses selesai"`
	CatatanDokter    *string         `json:"catatanDokter"`
}
