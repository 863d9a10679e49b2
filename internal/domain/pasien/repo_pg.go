package pasien

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

const pasienCols = `id, nomor_rm, nik, nama, jenis_kelamin, tanggal_lahir, alamat,
	telepon, email, golongan_darah, alergi, catatan_khusus,
	created_at, updated_at, satu_sehat_id, status_sinkronisasi`

func scanPasien(row pgx.Row) (*Pasien, error) {
	var p Pasien
	err := row.Scan(&p.ID, &p.NomorRM, &p.NIK, &p.Nama, &p.JenisKelamin, &p.TanggalLahir, &p.Alamat,
		&p.Telepon, &p.Email, &p.GolonganDarah, &p.Alergi, &p.CatatanKhusus,
		&p.CreatedAt, &p.UpdatedAt, &p.SatuSehatID, &p.StatusSinkronisasi)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create reserves the id first so a generated medical record number can
// embed it, then inserts the row with that id.
func (r *PGRepo) Create(ctx context.Context, p *Pasien) (*Pasien, error) {
	var id int64
	if err := r.pool.QueryRow(ctx,
		`SELECT nextval(pg_get_serial_sequence('pasien', 'id'))`).Scan(&id); err != nil {
		return nil, err
	}
	nomorRM := p.NomorRM
	if nomorRM == "" {
		nomorRM = FormatNomorRM(id, time.Now())
	}
	q := fmt.Sprintf(`INSERT INTO pasien (id, nomor_rm, nik, nama, jenis_kelamin, tanggal_lahir, alamat,
		telepon, email, golongan_darah, alergi, catatan_khusus, status_sinkronisasi)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'belum') RETURNING %s`, pasienCols)
	return scanPasien(r.pool.QueryRow(ctx, q, id, nomorRM, p.NIK, p.Nama, p.JenisKelamin,
		p.TanggalLahir, p.Alamat, p.Telepon, p.Email, p.GolonganDarah, p.Alergi, p.CatatanKhusus))
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Pasien, error) {
	q := fmt.Sprintf(`SELECT %s FROM pasien WHERE id = $1`, pasienCols)
	return scanPasien(r.pool.QueryRow(ctx, q, id))
}

func (r *PGRepo) GetByNomorRM(ctx context.Context, nomorRM string) (*Pasien, error) {
	q := fmt.Sprintf(`SELECT %s FROM pasien WHERE nomor_rm = $1`, pasienCols)
	return scanPasien(r.pool.QueryRow(ctx, q, nomorRM))
}

func (r *PGRepo) GetByNIK(ctx context.Context, nik string) (*Pasien, error) {
	q := fmt.Sprintf(`SELECT %s FROM pasien WHERE nik = $1`, pasienCols)
	return scanPasien(r.pool.QueryRow(ctx, q, nik))
}

func (r *PGRepo) Update(ctx context.Context, id int64, patch Patch) (*Pasien, error) {
	set := []string{"updated_at = now()"}
	args := []interface{}{}
	idx := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, v)
		idx++
	}
	if patch.NIK != nil {
		add("nik", *patch.NIK)
	}
	if patch.Nama != nil {
		add("nama", *patch.Nama)
	}
	if patch.JenisKelamin != nil {
		add("jenis_kelamin", *patch.JenisKelamin)
	}
	if patch.TanggalLahir != nil {
		add("tanggal_lahir", *patch.TanggalLahir)
	}
	if patch.Alamat != nil {
		add("alamat", *patch.Alamat)
	}
	if patch.Telepon != nil {
		add("telepon", *patch.Telepon)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.GolonganDarah != nil {
		add("golongan_darah", *patch.GolonganDarah)
	}
	if patch.Alergi != nil {
		add("alergi", *patch.Alergi)
	}
	if patch.CatatanKhusus != nil {
		add("catatan_khusus", *patch.CatatanKhusus)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE pasien SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), idx, pasienCols)
	return scanPasien(r.pool.QueryRow(ctx, q, args...))
}

func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pasien WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *PGRepo) ListAll(ctx context.Context) ([]*Pasien, error) {
	q := fmt.Sprintf(`SELECT %s FROM pasien ORDER BY id`, pasienCols)
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*Pasien
	for rows.Next() {
		p, err := scanPasien(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM pasien`).Scan(&n)
	return n, err
}
