package rekammedis

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const rekamMedisCols = `id, pasien_id, dokter_user_id, tanggal, keluhan_utama,
	riwayat_penyakit_sekarang, riwayat_penyakit_dahulu, pemeriksaan_fisik,
	diagnosis, tindakan, pengobatan, catatan_lain, jenis_pelayanan,
	status_sinkronisasi, created_at, updated_at`

func scanRekamMedis(row pgx.Row) (*RekamMedis, error) {
	var rm RekamMedis
	err := row.Scan(&rm.ID, &rm.PasienID, &rm.DokterUserID, &rm.Tanggal, &rm.KeluhanUtama,
		&rm.RiwayatPenyakitSekarang, &rm.RiwayatPenyakitDahulu, &rm.PemeriksaanFisik,
		&rm.Diagnosis, &rm.Tindakan, &rm.Pengobatan, &rm.CatatanLain, &rm.JenisPelayanan,
		&rm.StatusSinkronisasi, &rm.CreatedAt, &rm.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *PGRepo) Create(ctx context.Context, rm *RekamMedis) (*RekamMedis, error) {
	q := fmt.Sprintf(`INSERT INTO rekam_medis (pasien_id, dokter_user_id, tanggal, keluhan_utama,
		riwayat_penyakit_sekarang, riwayat_penyakit_dahulu, pemeriksaan_fisik,
		diagnosis, tindakan, pengobatan, catatan_lain, jenis_pelayanan, status_sinkronisasi)
		VALUES ($1, $2, COALESCE($3, now()), $4, $5, $6, $7, $8, $9, $10, $11, $12, 'belum')
		RETURNING %s`, rekamMedisCols)
	var tanggal interface{}
	if !rm.Tanggal.IsZero() {
		tanggal = rm.Tanggal
	}
	return scanRekamMedis(r.pool.QueryRow(ctx, q, rm.PasienID, rm.DokterUserID, tanggal,
		rm.KeluhanUtama, rm.RiwayatPenyakitSekarang, rm.RiwayatPenyakitDahulu,
		rm.PemeriksaanFisik, rm.Diagnosis, rm.Tindakan, rm.Pengobatan,
		rm.CatatanLain, rm.JenisPelayanan))
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*RekamMedis, error) {
	q := fmt.Sprintf(`SELECT %s FROM rekam_medis WHERE id = $1`, rekamMedisCols)
	return scanRekamMedis(r.pool.QueryRow(ctx, q, id))
}

func (r *PGRepo) Update(ctx context.Context, id int64, patch Patch) (*RekamMedis, error) {
	set := []string{"updated_at = now()"}
	args := []interface{}{}
	idx := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, v)
		idx++
	}
	if patch.DokterUserID != nil {
		add("dokter_user_id", *patch.DokterUserID)
	}
	if patch.Tanggal != nil {
		add("tanggal", *patch.Tanggal)
	}
	if patch.KeluhanUtama != nil {
		add("keluhan_utama", *patch.KeluhanUtama)
	}
	if patch.RiwayatPenyakitSekarang != nil {
		add("riwayat_penyakit_sekarang", *patch.RiwayatPenyakitSekarang)
	}
	if patch.RiwayatPenyakitDahulu != nil {
		add("riwayat_penyakit_dahulu", *patch.RiwayatPenyakitDahulu)
	}
	if patch.PemeriksaanFisik != nil {
		add("pemeriksaan_fisik", patch.PemeriksaanFisik)
	}
	if patch.Diagnosis != nil {
		add("diagnosis", *patch.Diagnosis)
	}
	if patch.Tindakan != nil {
		add("tindakan", *patch.Tindakan)
	}
	if patch.Pengobatan != nil {
		add("pengobatan", patch.Pengobatan)
	}
	if patch.CatatanLain != nil {
		add("catatan_lain", *patch.CatatanLain)
	}
	if patch.JenisPelayanan != nil {
		add("jenis_pelayanan", *patch.JenisPelayanan)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE rekam_medis SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), idx, rekamMedisCols)
	return scanRekamMedis(r.pool.QueryRow(ctx, q, args...))
}

func (r *PGRepo) ListByPasien(ctx context.Context, pasienID int64) ([]*RekamMedis, error) {
	q := fmt.Sprintf(`SELECT %s FROM rekam_medis WHERE pasien_id = $1 ORDER BY id`, rekamMedisCols)
	return r.list(ctx, q, pasienID)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]*RekamMedis, error) {
	q := fmt.Sprintf(`SELECT %s FROM rekam_medis ORDER BY id`, rekamMedisCols)
	return r.list(ctx, q)
}

func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM rekam_medis`).Scan(&n)
	return n, err
}

func (r *PGRepo) list(ctx context.Context, q string, args ...interface{}) ([]*RekamMedis, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*RekamMedis
	for rows.Next() {
		rm, err := scanRekamMedis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}
