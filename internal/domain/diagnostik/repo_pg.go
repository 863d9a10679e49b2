package diagnostik

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simrs/simrs/internal/platform/store"
)

// PGRepo serves one modality; the table is either "laboratorium" or
// "radiologi", both with the same columns.
type PGRepo struct {
	pool  *pgxpool.Pool
	table string
}

func NewPGRepo(pool *pgxpool.Pool, jenis Jenis) *PGRepo {
	return &PGRepo{pool: pool, table: string(jenis)}
}

const pemeriksaanCols = `id, pasien_id, dokter_user_id, tanggal, jenis_pemeriksaan,
	hasil_pemeriksaan, kesimpulan, status, catatan_dokter, created_at, updated_at`

func scanPemeriksaan(row pgx.Row) (*Pemeriksaan, error) {
	var p Pemeriksaan
	err := row.Scan(&p.ID, &p.PasienID, &p.DokterUserID, &p.Tanggal, &p.JenisPemeriksaan,
		&p.HasilPemeriksaan, &p.Kesimpulan, &p.Status, &p.CatatanDokter, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) Create(ctx context.Context, p *Pemeriksaan) (*Pemeriksaan, error) {
	q := fmt.Sprintf(`INSERT INTO %s (pasien_id, dokter_user_id, tanggal, jenis_pemeriksaan,
		status, catatan_dokter)
		VALUES ($1, $2, COALESCE($3, now()), $4, 'menunggu', $5) RETURNING %s`,
		r.table, pemeriksaanCols)
	var tanggal interface{}
	if !p.Tanggal.IsZero() {
		tanggal = p.Tanggal
	}
	return scanPemeriksaan(r.pool.QueryRow(ctx, q, p.PasienID, p.DokterUserID, tanggal,
		p.JenisPemeriksaan, p.CatatanDokter))
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Pemeriksaan, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, pemeriksaanCols, r.table)
	return scanPemeriksaan(r.pool.QueryRow(ctx, q, id))
}

func (r *PGRepo) Update(ctx context.Context, id int64, patch Patch) (*Pemeriksaan, error) {
	set := []string{"updated_at = now()"}
	args := []interface{}{}
	idx := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, v)
		idx++
	}
	if patch.Tanggal != nil {
		add("tanggal", *patch.Tanggal)
	}
	if patch.JenisPemeriksaan != nil {
		add("jenis_pemeriksaan", *patch.JenisPemeriksaan)
	}
	if patch.HasilPemeriksaan != nil {
		add("hasil_pemeriksaan", patch.HasilPemeriksaan)
	}
	if patch.Kesimpulan != nil {
		add("kesimpulan", *patch.Kesimpulan)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.CatatanDokter != nil {
		add("catatan_dokter", *patch.CatatanDokter)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		r.table, strings.Join(set, ", "), idx, pemeriksaanCols)
	return scanPemeriksaan(r.pool.QueryRow(ctx, q, args...))
}

func (r *PGRepo) ListByPasien(ctx context.Context, pasienID int64) ([]*Pemeriksaan, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE pasien_id = $1 ORDER BY id`, pemeriksaanCols, r.table)
	return r.list(ctx, q, pasienID)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]*Pemeriksaan, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, pemeriksaanCols, r.table)
	return r.list(ctx, q)
}

func (r *PGRepo) list(ctx context.Context, q string, args ...interface{}) ([]*Pemeriksaan, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Pemeriksaan
	for rows.Next() {
		p, err := scanPemeriksaan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
