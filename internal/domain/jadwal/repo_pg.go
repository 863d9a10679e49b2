package jadwal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

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

const jadwalCols = `id, pasien_id, dokter_user_id, tanggal, jenis_pelayanan, nama_layanan,
	status, keterangan, created_at, updated_at`

func scanJadwal(row pgx.Row) (*Jadwal, error) {
	var j Jadwal
	err := row.Scan(&j.ID, &j.PasienID, &j.DokterUserID, &j.Tanggal, &j.JenisPelayanan,
		&j.NamaLayanan, &j.Status, &j.Keterangan, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *PGRepo) Create(ctx context.Context, j *Jadwal) (*Jadwal, error) {
	status := j.Status
	if status == "" {
		status = "menunggu"
	}
	q := fmt.Sprintf(`INSERT INTO jadwal (pasien_id, dokter_user_id, tanggal, jenis_pelayanan,
		nama_layanan, status, keterangan)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s`, jadwalCols)
	return scanJadwal(r.pool.QueryRow(ctx, q, j.PasienID, j.DokterUserID, j.Tanggal,
		j.JenisPelayanan, j.NamaLayanan, status, j.Keterangan))
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Jadwal, error) {
	q := fmt.Sprintf(`SELECT %s FROM jadwal WHERE id = $1`, jadwalCols)
	return scanJadwal(r.pool.QueryRow(ctx, q, id))
}

func (r *PGRepo) Update(ctx context.Context, id int64, patch Patch) (*Jadwal, error) {
	set := []string{"updated_at = now()"}
	args := []interface{}{}
	idx := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, v)
		idx++
	}
	if patch.PasienID != nil {
		add("pasien_id", *patch.PasienID)
	}
	if patch.DokterUserID != nil {
		add("dokter_user_id", *patch.DokterUserID)
	}
	if patch.Tanggal != nil {
		add("tanggal", *patch.Tanggal)
	}
	if patch.JenisPelayanan != nil {
		add("jenis_pelayanan", *patch.JenisPelayanan)
	}
	if patch.NamaLayanan != nil {
		add("nama_layanan", *patch.NamaLayanan)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Keterangan != nil {
		add("keterangan", *patch.Keterangan)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE jadwal SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), idx, jadwalCols)
	return scanJadwal(r.pool.QueryRow(ctx, q, args...))
}

func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jadwal WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *PGRepo) ListByPasien(ctx context.Context, pasienID int64) ([]*Jadwal, error) {
	q := fmt.Sprintf(`SELECT %s FROM jadwal WHERE pasien_id = $1 ORDER BY id`, jadwalCols)
	return r.list(ctx, q, pasienID)
}

func (r *PGRepo) ListByDokter(ctx context.Context, dokterUserID int64) ([]*Jadwal, error) {
	q := fmt.Sprintf(`SELECT %s FROM jadwal WHERE dokter_user_id = $1 ORDER BY id`, jadwalCols)
	return r.list(ctx, q, dokterUserID)
}

func (r *PGRepo) ListByTanggal(ctx context.Context, tanggal time.Time) ([]*Jadwal, error) {
	q := fmt.Sprintf(`SELECT %s FROM jadwal WHERE tanggal::date = $1::date ORDER BY id`, jadwalCols)
	return r.list(ctx, q, tanggal)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]*Jadwal, error) {
	q := fmt.Sprintf(`SELECT %s FROM jadwal ORDER BY id`, jadwalCols)
	return r.list(ctx, q)
}

func (r *PGRepo) CountByTanggal(ctx context.Context, tanggal time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM jadwal WHERE tanggal::date = $1::date`, tanggal).Scan(&n)
	return n, err
}

func (r *PGRepo) list(ctx context.Context, q string, args ...interface{}) ([]*Jadwal, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Jadwal
	for rows.Next() {
		j, err := scanJadwal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
