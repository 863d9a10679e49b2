package aktivitas

import "context"

type Repository interface {
	Create(ctx context.Context, a *Aktivitas) (*Aktivitas, error)
	GetByID(ctx context.Context, id int64) (*Aktivitas, error)
	ListByUser(ctx context.Context, userID int64) ([]*Aktivitas, error)
	ListByPasien(ctx context.Context, pasienID int64) ([]*Aktivitas, error)
	ListTerbaru(ctx context.Context, limit int) ([]*Aktivitas, error)
	ListAll(ctx context.Context) ([]*Aktivitas, error)
}
