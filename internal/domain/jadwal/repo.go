package jadwal

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, j *Jadwal) (*Jadwal, error)
	GetByID(ctx context.Context, id int64) (*Jadwal, error)
	Update(ctx context.Context, id int64, patch Patch) (*Jadwal, error)
	Delete(ctx context.Context, id int64) error
	ListByPasien(ctx context.Context, pasienID int64) ([]*Jadwal, error)
	ListByDokter(ctx context.Context, dokterUserID int64) ([]*Jadwal, error)
	// ListByTanggal matches on calendar day, not a rolling window.
	ListByTanggal(ctx context.Context, tanggal time.Time) ([]*Jadwal, error)
	ListAll(ctx context.Context) ([]*Jadwal, error)
	CountByTanggal(ctx context.Context, tanggal time.Time) (int64, error)
}
