// Package pasien covers patient master data: registration with generated
// medical record numbers, NIK uniqueness and the CRUD surface under
// /api/pasien.
package pasien

import "time"

type Pasien struct {
	ID                 int64      `json:"id"`
	NomorRM            string     `json:"nomorRM"`
	NIK                string     `json:"nik"`
	Nama               string     `json:"nama"`
	JenisKelamin       string     `json:"jenisKelamin"`
	TanggalLahir       time.Time  `json:"tanggalLahir"`
	Alamat             string     `json:"alamat"`
	Telepon            *string    `json:"telepon"`
	Email              *string    `json:"email"`
	GolonganDarah      *string    `json:"golonganDarah"`
	Alergi             *string    `json:"alergi"`
	CatatanKhusus      *string    `json:"catatanKhusus"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	SatuSehatID        *string    `json:"satuSehatId"`
	StatusSinkronisasi string     `json:"statusSinkronisasi"`
}

type CreateRequest struct {
	NomorRM       string    `json:"nomorRM"`
	NIK           string    `json:"nik" validate:"required,len=16"`
	Nama          string    `json:"nama" validate:"required"`
	JenisKelamin  string    `json:"jenisKelamin" validate:"required,oneof=L P"`
	TanggalLahir  time.Time `json:"tanggalLahir" validate:"required"`
	Alamat        string    `json:"alamat" validate:"required"`
	Telepon       *string   `json:"telepon"`
	Email         *string   `json:"email" validate:"omitempty,email"`
	GolonganDarah *string   `json:"golonganDarah"`
	Alergi        *string   `json:"alergi"`
	CatatanKhusus *string   `json:"catatanKhusus"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	NIK           *string    `json:"nik" validate:"omitempty,len=16"`
	Nama          *string    `json:"nama"`
	JenisKelamin  *string    `json:"jenisKelamin" validate:"omitempty,oneof=L P"`
	TanggalLahir  *time.Time `json:"tanggalLahir"`
	Alamat        *string    `json:"alamat"`
	Telepon       *string    `json:"telepon"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	GolonganDarah *string    `json:"golonganDarah"`
	Alergi        *string    `json:"alergi"`
	CatatanKhusus *string    `json:"catatanKhusus"`
}
