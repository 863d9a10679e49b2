package rawatinap

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

const rawatInapCols = `id, pasien_id, rekam_medis_id, tanggal_masuk, tanggal_keluar,
	ruangan, nomor_bed, dokter_penanggung_jawab, diagnosis_awal, diagnosis_akhir,
	catatan_perawat, status, created_at, updated_at`

func scanRawatInap(row pgx.Row) (*RawatInap, error) {
	var ri RawatInap
	err := row.Scan(&ri.ID, &ri.PasienID, &ri.RekamMedisID, &ri.TanggalMasuk, &ri.TanggalKeluar,
		&ri.Ruangan, &ri.NomorBed, &ri.DokterPenanggungJawab, &ri.DiagnosisAwal, &ri.DiagnosisAkhir,
		&ri.CatatanPerawat, &ri.Status, &ri.CreatedAt, &ri.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ri, nil
}

func (r *PGRepo) Create(ctx context.Context, ri *RawatInap) (*RawatInap, error) {
	q := fmt.Sprintf(`INSERT INTO rawat_inap (pasien_id, rekam_medis_id, tanggal_masuk,
		ruangan, nomor_bed, dokter_penanggung_jawab, diagnosis_awal, catatan_perawat, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'aktif') RETURNING %s`, rawatInapCols)
	return scanRawatInap(r.pool.QueryRow(ctx, q, ri.PasienID, ri.RekamMedisID, ri.TanggalMasuk,
		ri.Ruangan, ri.NomorBed, ri.DokterPenanggungJawab, ri.DiagnosisAwal, ri.CatatanPerawat))
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*RawatInap, error) {
	q := fmt.Sprintf(`SELECT %s FROM rawat_inap WHERE id = $1`, rawatInapCols)
	return scanRawatInap(r.pool.QueryRow(ctx, q, id))
}

func (r *PGRepo) Update(ctx context.Context, id int64, patch Patch) (*RawatInap, error) {
	set := []string{"updated_at = now()"}
	args := []interface{}{}
	idx := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, v)
		idx++
	}
	if patch.RekamMedisID != nil {
		add("rekam_medis_id", *patch.RekamMedisID)
	}
	if patch.TanggalMasuk != nil {
		add("tanggal_masuk", *patch.TanggalMasuk)
	}
	if patch.TanggalKeluar != nil {
		add("tanggal_keluar", *patch.TanggalKeluar)
	}
	if patch.Ruangan != nil {
		add("ruangan", *patch.Ruangan)
	}
	if patch.NomorBed != nil {
		add("nomor_bed", *patch.NomorBed)
	}
	if patch.DokterPenanggungJawab != nil {
		add("dokter_penanggung_jawab", *patch.DokterPenanggungJawab)
	}
	if patch.DiagnosisAwal != nil {
		add("diagnosis_awal", *patch.DiagnosisAwal)
	}
	if patch.DiagnosisAkhir != nil {
		add("diagnosis_akhir", *patch.DiagnosisAkhir)
	}
	if patch.CatatanPerawat != nil {
		add("catatan_perawat", patch.CatatanPerawat)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE rawat_inap SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), idx, rawatInapCols)
	return scanRawatInap(r.pool.QueryRow(ctx, q, args...))
}

func (r *PGRepo) ListByPasien(ctx context.Context, pasienID int64) ([]*RawatInap, error) {
	q := fmt.Sprintf(`SELECT %s FROM rawat_inap WHERE pasien_id = $1 ORDER BY id`, rawatInapCols)
	return r.list(ctx, q, pasienID)
}

func (r *PGRepo) ListAktif(ctx context.Context) ([]*RawatInap, error) {
	q := fmt.Sprintf(`SELECT %s FROM rawat_inap WHERE status = 'aktif' ORDER BY id`, rawatInapCols)
	return r.list(ctx, q)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]*RawatInap, error) {
	q := fmt.Sprintf(`SELECT %s FROM rawat_inap ORDER BY id`, rawatInapCols)
	return r.list(ctx, q)
}

func (r *PGRepo) CountAktif(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM rawat_inap WHERE status = 'aktif'`).Scan(&n)
	return n, err
}

func (r *PGRepo) list(ctx context.Context, q string, args ...interface{}) ([]*RawatInap, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*RawatInap
	for rows.Next() {
		ri, err := scanRawatInap(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ri)
	}
	return out, rows.Err()
}
