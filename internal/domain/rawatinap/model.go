// Package rawatinap covers inpatient stays: admission, ward and bed
// assignment, nurse notes and discharge. A stay is "aktif" until it is
// closed with a discharge date and final diagnosis.
package rawatinap

import (
	"encoding/json"
	"time"
)

type RawatInap struct {
	ID                    int64           `json:"id"`
	PasienID              int64           `json:"pasienId"`
	RekamMedisID          *int64          `json:"rekamMedisId"`
	TanggalMasuk          time.Time       `json:"tanggalMasuk"`
	TanggalKeluar         *time.Time      `json:"tanggalKeluar"`
	Ruangan               string          `json:"ruangan"`
	NomorBed              string          `json:"nomorBed"`
	DokterPenanggungJawab int64           `json:"dokterPenanggungJawab"`
	DiagnosisAwal         string          `json:"diagnosisAwal"`
	DiagnosisAkhir        *string         `json:"diagnosisAkhir"`
	CatatanPerawat        json.RawMessage `json:"catatanPerawat"`
	Status                string          `json:"status"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

type CreateRequest struct {
	PasienID              int64           `json:"pasienId" validate:"required"`
	RekamMedisID          *int64          `json:"rekamMedisId"`
	TanggalMasuk          time.Time       `json:"tanggalMasuk" validate:"required"`
	Ruangan               string          `json:"ruangan" validate:"required"`
	NomorBed              string          `json:"nomorBed" validate:"required"`
	DokterPenanggungJawab int64           `json:"dokterPenanggungJawab" validate:"required"`
	DiagnosisAwal         string          `json:"diagnosisAwal" validate:"required"`
	CatatanPerawat        json.RawMessage `json:"catatanPerawat"`
}

// Patch carries a partial update; nil fields are left untouched. Setting
// TanggalKeluar together with Status "selesai" discharges the patient.
type Patch struct {
	RekamMedisID          *int64          `json:"rekamMedisId"`
	TanggalMasuk          *time.Time      `json:"tanggalMasuk"`
	TanggalKeluar         *time.Time      `json:"tanggalKeluar"`
	Ruangan               *string         `json:"ruangan"`
	NomorBed              *string         `json:"nomorBed"`
	DokterPenanggungJawab *int64          `json:"dokterPenanggungJawab"`
	DiagnosisAwal         *string         `json:"diagnosisAwal"`
	DiagnosisAkhir        *string         `json:"diagnosisAkhir"`
	CatatanPerawat        json.RawMessage `json:"catatanPerawat"`
	Status                *string         `json:"status" validate:"omitempty,oneof=aktif selesai"`
}
