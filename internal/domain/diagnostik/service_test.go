package diagnostik

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/simrs/simrs/internal/domain/aktivitas"
	"github.com/simrs/simrs/internal/platform/store"
)

type recorderSpy struct {
	entries []aktivitas.Entry
}

func (r *recorderSpy) Record(_ context.Context, e aktivitas.Entry) {
	r.entries = append(r.entries, e)
}

type resolverStub struct{}

func (resolverStub) NamaPasien(_ context.Context, id int64) (string, error) {
	if id == 1 {
		return "Budi Santoso", nil
	}
	return "", errors.New("not found")
}

func newLab(t *testing.T) (*Service, *recorderSpy) {
	t.Helper()
	spy := &recorderSpy{}
	return NewService(Laboratorium, NewMemRepo(), resolverStub{}, spy), spy
}

func newRad(t *testing.T) (*Service, *recorderSpy) {
	t.Helper()
	spy := &recorderSpy{}
	return NewService(Radiologi, NewMemRepo(), resolverStub{}, spy), spy
}

func orderRequest(jenis string) CreateRequest {
	return CreateRequest{PasienID: 1, DokterUserID: 2, JenisPemeriksaan: jenis}
}

func TestCreate_Lab(t *testing.T) {
	svc, spy := newLab(t)
	p, err := svc.Create(context.Background(), 3, orderRequest("Darah lengkap"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != "menunggu" {
		t.Fatalf("status = %q", p.Status)
	}
	if p.HasilPemeriksaan != nil || p.Kesimpulan != nil {
		t.Fatal("results must start empty")
	}
	e := spy.entries[0]
	if e.Aktivitas != "Pemeriksaan Laboratorium" || e.Status != "Menunggu" {
		t.Fatalf("entry = %+v", e)
	}
	if e.Keterangan != "Pemeriksaan lab Darah lengkap untuk Budi Santoso" {
		t.Fatalf("keterangan = %q", e.Keterangan)
	}
}

func TestCreate_RadiologiLabels(t *testing.T) {
	svc, spy := newRad(t)
	if _, err := svc.Create(context.Background(), 3, orderRequest("Rontgen thorax")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	e := spy.entries[0]
	if e.Aktivitas != "Pemeriksaan Radiologi" {
		t.Fatalf("aktivitas = %q", e.Aktivitas)
	}
	if e.Keterangan != "Pemeriksaan radiologi Rontgen thorax untuk Budi Santoso" {
		t.Fatalf("keterangan = %q", e.Keterangan)
	}
}

func TestSeparateIDSpaces(t *testing.T) {
	lab, _ := newLab(t)
	rad, _ := newRad(t)
	ctx := context.Background()

	l, _ := lab.Create(ctx, 3, orderRequest("Darah lengkap"))
	r, _ := rad.Create(ctx, 3, orderRequest("Rontgen thorax"))
	if l.ID != 1 || r.ID != 1 {
		t.Fatalf("ids = %d, %d; each modality keeps its own space", l.ID, r.ID)
	}

	if _, err := lab.Get(ctx, r.ID); err != nil {
		// same numeric id but the lab store only has the lab order
		t.Fatalf("lab Get: %v", err)
	}
	got, _ := lab.Get(ctx, 1)
	if got.JenisPemeriksaan != "Darah lengkap" {
		t.Fatalf("lab store returned %q", got.JenisPemeriksaan)
	}
}

func TestUpdate_AttachResults(t *testing.T) {
	svc, spy := newLab(t)
	ctx := context.Background()
	p, _ := svc.Create(ctx, 3, orderRequest("Darah lengkap"))

	hasil := json.RawMessage(`{"hb":13.2,"leukosit":9000}`)
	kesimpulan := "Dalam batas normal"
	status := "selesai"
	updated, err := svc.Update(ctx, 3, p.ID, Patch{
		HasilPemeriksaan: hasil,
		Kesimpulan:       &kesimpulan,
		Status:           &status,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != "selesai" || updated.Kesimpulan == nil {
		t.Fatalf("updated = %+v", updated)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(updated.HasilPemeriksaan, &parsed); err != nil {
		t.Fatalf("hasil not round-tripped: %v", err)
	}
	last := spy.entries[len(spy.entries)-1]
	if last.Aktivitas != "Update Pemeriksaan Laboratorium" || last.Status != "selesai" {
		t.Fatalf("last = %+v", last)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	svc, _ := newLab(t)
	status := "selesai"
	if _, err := svc.Update(context.Background(), 3, 9, Patch{Status: &status}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
