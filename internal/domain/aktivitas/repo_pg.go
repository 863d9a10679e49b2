package aktivitas

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simrs/simrs/internal/platform/store"
)

type PGRepo struct {
	pool *pgxpool.Pool
}

func NewPGRepo(pool *pgxpool.Pool) *PGRepo {
	return &PGRepo{pool: pool}
}

const aktivitasCols = `id, user_id, pasien_id, aktivitas, keterangan, tanggal, status`

func scanAktivitas(row pgx.Row) (*Aktivitas, error) {
	var a Aktivitas
	err := row.Scan(&a.ID, &a.UserID, &a.PasienID, &a.Aktivitas, &a.Keterangan, &a.Tanggal, &a.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGRepo) Create(ctx context.Context, a *Aktivitas) (*Aktivitas, error) {
	q := fmt.Sprintf(`INSERT INTO aktivitas (user_id, pasien_id, aktivitas, keterangan, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING %s`, aktivitasCols)
	return scanAktivitas(r.pool.QueryRow(ctx, q, a.UserID, a.PasienID, a.Aktivitas, a.Keterangan, a.Status))
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Aktivitas, error) {
	q := fmt.Sprintf(`SELECT %s FROM aktivitas WHERE id = $1`, aktivitasCols)
	return scanAktivitas(r.pool.QueryRow(ctx, q, id))
}

func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]*Aktivitas, error) {
	q := fmt.Sprintf(`SELECT %s FROM aktivitas WHERE user_id = $1 ORDER BY tanggal DESC, id DESC`, aktivitasCols)
	return r.list(ctx, q, userID)
}

func (r *PGRepo) ListByPasien(ctx context.Context, pasienID int64) ([]*Aktivitas, error) {
	q := fmt.Sprintf(`SELECT %s FROM aktivitas WHERE pasien_id = $1 ORDER BY tanggal DESC, id DESC`, aktivitasCols)
	return r.list(ctx, q, pasienID)
}

func (r *PGRepo) ListTerbaru(ctx context.Context, limit int) ([]*Aktivitas, error) {
	q := fmt.Sprintf(`SELECT %s FROM aktivitas ORDER BY tanggal DESC, id DESC LIMIT $1`, aktivitasCols)
	return r.list(ctx, q, limit)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]*Aktivitas, error) {
	q := fmt.Sprintf(`SELECT %s FROM aktivitas ORDER BY tanggal DESC, id DESC`, aktivitasCols)
	return r.list(ctx, q)
}

func (r *PGRepo) list(ctx context.Context, q string, args ...interface{}) ([]*Aktivitas, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Aktivitas
	for rows.Next() {
		a, err := scanAktivitas(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
