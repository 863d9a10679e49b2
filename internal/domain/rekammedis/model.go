// Package rekammedis covers outpatient and inpatient clinical encounter
// records. The physical exam and medication fields are free-form JSON
// documents supplied by the client.
package rekammedis

import (
	"encoding/json"
	"time"
)

type RekamMedis struct {
	ID                      int64           `json:"id"`
	PasienID                int64           `json:"pasienId"`
	DokterUserID            int64           `json:"dokterUserId"`
	Tanggal                 time.Time       `json:"tanggal"`
	KeluhanUtama            string          `json:"keluhanUtama"`
	RiwayatPenyakitSekarang *string         `json:"riwayatPenyakitSekarang"`
	RiwayatPenyakitDahulu   *string         `json:"riwayatPenyakitDahulu"`
	PemeriksaanFisik        json.RawMessage `json:"pemeriksaanFisik"`
	Diagnosis               string          `json:"diagnosis"`
	Tindakan                *string         `json:"tindakan"`
	Pengobatan              json.RawMessage `json:"pengobatan"`
	CatatanLain             *string         `json:"catatanLain"`
	JenisPelayanan          string          `json:"jenisPelayanan"`
	StatusSinkronisasi      string          `json:"statusSinkronisasi"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
}

type CreateRequest struct {
	PasienID                int64           `json:"pasienId" validate:"required"`
	DokterUserID            int64           `json:"dokterUserId" validate:"required"`
	Tanggal                 *time.Time      `json:"tanggal"`
	KeluhanUtama            string          `json:"keluhanUtama" validate:"required"`
	RiwayatPenyakitSekarang *string         `json:"riwayatPenyakitSekarang"`
	RiwayatPenyakitDahulu   *string         `json:"riwayatPenyakitDahulu"`
	PemeriksaanFisik        json.RawMessage `json:"pemeriksaanFisik" validate:"required"`
	Diagnosis               string          `json:"diagnosis" validate:"required"`
	Tindakan                *string         `json:"tindakan"`
	Pengobatan              json.RawMessage `json:"pengobatan"`
	CatatanLain             *string         `json:"catatanLain"`
	JenisPelayanan          string          `json:"jenisPelayanan" validate:"required"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	DokterUserID            *int64          `json:"dokterUserId"`
	Tanggal                 *time.Time      `json:"tanggal"`
	KeluhanUtama            *string         `json:"keluhanUtama"`
	RiwayatPenyakitSekarang *string         `json:"riwayatPenyakitSekarang"`
	RiwayatPenyakitDahulu   *string         `json:"riwayatPenyakitDahulu"`
	PemeriksaanFisik        json.RawMessage `json:"pemeriksaanFisik"`
	Diagnosis               *string         `json:"diagnosis"`
	Tindakan                *string         `json:"tindakan"`
	Pengobatan              json.RawMessage `json:"pengobatan"`
	CatatanLain             *string         `json:"catatanLain"`
	JenisPelayanan          *string         `json:"jenisPelayanan"`
}
