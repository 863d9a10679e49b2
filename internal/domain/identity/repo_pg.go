package identity

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

const userCols = `id, username, password, nama, role, rumah_sakit, active`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Nama, &u.Role, &u.RumahSakit, &u.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PGRepo) Create(ctx context.Context, u *User) (*User, error) {
	q := fmt.Sprintf(`INSERT INTO users (username, password, nama, role, rumah_sakit, active)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING %s`, userCols)
	return scanUser(r.pool.QueryRow(ctx, q, u.Username, u.Password, u.Nama, u.Role, u.RumahSakit, u.Active))
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	q := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userCols)
	return scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *PGRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	q := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userCols)
	return scanUser(r.pool.QueryRow(ctx, q, username))
}

func (r *PGRepo) ListAll(ctx context.Context) ([]*User, error) {
	q := fmt.Sprintf(`SELECT %s FROM users ORDER BY id`, userCols)
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PGRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&n)
	return n, err
}
