package farmasi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simrs/simrs/internal/platform/store"
)

type ObatPGRepo struct {
	pool *pgxpool.Pool
}

func NewObatPGRepo(pool *pgxpool.Pool) *ObatPGRepo {
	return &ObatPGRepo{pool: pool}
}

const obatCols = `id, kode, nama, kategori, satuan, harga, stok, minimum_stok,
	deskripsi, created_at, updated_at`

func scanObat(row pgx.Row) (*Obat, error) {
	var o Obat
	err := row.Scan(&o.ID, &o.Kode, &o.Nama, &o.Kategori, &o.Satuan, &o.Harga, &o.Stok,
		&o.MinimumStok, &o.Deskripsi, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ObatPGRepo) Create(ctx context.Context, o *Obat) (*Obat, error) {
	q := fmt.Sprintf(`INSERT INTO obat (kode, nama, kategori, satuan, harga, stok, minimum_stok, deskripsi)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING %s`, obatCols)
	return scanObat(r.pool.QueryRow(ctx, q, o.Kode, o.Nama, o.Kategori, o.Satuan,
		o.Harga, o.Stok, o.MinimumStok, o.Deskripsi))
}

func (r *ObatPGRepo) GetByID(ctx context.Context, id int64) (*Obat, error) {
	q := fmt.Sprintf(`SELECT %s FROM obat WHERE id = $1`, obatCols)
	return scanObat(r.pool.QueryRow(ctx, q, id))
}

func (r *ObatPGRepo) GetByKode(ctx context.Context, kode string) (*Obat, error) {
	q := fmt.Sprintf(`SELECT %s FROM obat WHERE kode = $1`, obatCols)
	return scanObat(r.pool.QueryRow(ctx, q, kode))
}

func (r *ObatPGRepo) Update(ctx context.Context, id int64, patch ObatPatch) (*Obat, error) {
	set := []string{"updated_at = now()"}
	args := []interface{}{}
	idx := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, v)
		idx++
	}
	if patch.Kode != nil {
		add("kode", *patch.Kode)
	}
	if patch.Nama != nil {
		add("nama", *patch.Nama)
	}
	if patch.Kategori != nil {
		add("kategori", *patch.Kategori)
	}
	if patch.Satuan != nil {
		add("satuan", *patch.Satuan)
	}
	if patch.Harga != nil {
		add("harga", *patch.Harga)
	}
	if patch.Stok != nil {
		add("stok", *patch.Stok)
	}
	if patch.MinimumStok != nil {
		add("minimum_stok", *patch.MinimumStok)
	}
	if patch.Deskripsi != nil {
		add("deskripsi", *patch.Deskripsi)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE obat SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), idx, obatCols)
	return scanObat(r.pool.QueryRow(ctx, q, args...))
}

func (r *ObatPGRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM obat WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *ObatPGRepo) ListAll(ctx context.Context) ([]*Obat, error) {
	q := fmt.Sprintf(`SELECT %s FROM obat ORDER BY id`, obatCols)
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Obat
	for rows.Next() {
		o, err := scanObat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ObatPGRepo) AdjustStok(ctx context.Context, id int64, delta int64) (*Obat, error) {
	q := fmt.Sprintf(`UPDATE obat SET stok = stok + $1, updated_at = now()
		WHERE id = $2 RETURNING %s`, obatCols)
	return scanObat(r.pool.QueryRow(ctx, q, delta, id))
}

type ResepPGRepo struct {
	pool *pgxpool.Pool
}

func NewResepPGRepo(pool *pgxpool.Pool) *ResepPGRepo {
	return &ResepPGRepo{pool: pool}
}

const resepCols = `id, rekam_medis_id, tanggal, status, created_at, updated_at`

func scanResep(row pgx.Row) (*Resep, error) {
	var rs Resep
	err := row.Scan(&rs.ID, &rs.RekamMedisID, &rs.Tanggal, &rs.Status, &rs.CreatedAt, &rs.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *ResepPGRepo) Create(ctx context.Context, rs *Resep) (*Resep, error) {
	status := rs.Status
	if status == "" {
		status = "menunggu"
	}
	q := fmt.Sprintf(`INSERT INTO resep (rekam_medis_id, status)
		VALUES ($1, $2) RETURNING %s`, resepCols)
	return scanResep(r.pool.QueryRow(ctx, q, rs.RekamMedisID, status))
}

func (r *ResepPGRepo) GetByID(ctx context.Context, id int64) (*Resep, error) {
	q := fmt.Sprintf(`SELECT %s FROM resep WHERE id = $1`, resepCols)
	return scanResep(r.pool.QueryRow(ctx, q, id))
}

func (r *ResepPGRepo) GetByRekamMedis(ctx context.Context, rekamMedisID int64) (*Resep, error) {
	q := fmt.Sprintf(`SELECT %s FROM resep WHERE rekam_medis_id = $1 ORDER BY id LIMIT 1`, resepCols)
	return scanResep(r.pool.QueryRow(ctx, q, rekamMedisID))
}

func (r *ResepPGRepo) Update(ctx context.Context, id int64, patch ResepPatch) (*Resep, error) {
	set := []string{"updated_at = now()"}
	args := []interface{}{}
	idx := 1
	if patch.Status != nil {
		set = append(set, fmt.Sprintf("status = $%d", idx))
		args = append(args, *patch.Status)
		idx++
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE resep SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), idx, resepCols)
	return scanResep(r.pool.QueryRow(ctx, q, args...))
}

func (r *ResepPGRepo) ListAll(ctx context.Context) ([]*Resep, error) {
	q := fmt.Sprintf(`SELECT %s FROM resep ORDER BY id`, resepCols)
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Resep
	for rows.Next() {
		rs, err := scanResep(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

const detailCols = `id, resep_id, obat_id, jumlah, aturan_pakai, created_at, updated_at`

func scanDetail(row pgx.Row) (*DetailResep, error) {
	var d DetailResep
	err := row.Scan(&d.ID, &d.ResepID, &d.ObatID, &d.Jumlah, &d.AturanPakai, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ResepPGRepo) CreateDetail(ctx context.Context, d *DetailResep) (*DetailResep, error) {
	q := fmt.Sprintf(`INSERT INTO detail_resep (resep_id, obat_id, jumlah, aturan_pakai)
		VALUES ($1, $2, $3, $4) RETURNING %s`, detailCols)
	return scanDetail(r.pool.QueryRow(ctx, q, d.ResepID, d.ObatID, d.Jumlah, d.AturanPakai))
}

func (r *ResepPGRepo) ListDetailByResep(ctx context.Context, resepID int64) ([]*DetailResep, error) {
	q := fmt.Sprintf(`SELECT %s FROM detail_resep WHERE resep_id = $1 ORDER BY id`, detailCols)
	rows, err := r.pool.Query(ctx, q, resepID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*DetailResep, 0)
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
