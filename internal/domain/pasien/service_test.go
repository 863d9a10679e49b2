package pasien

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/simrs/simrs/internal/domain/aktivitas"
	"github.com/simrs/simrs/internal/platform/store"
)

type recorderSpy struct {
	entries []aktivitas.Entry
}

func (r *recorderSpy) Record(_ context.Context, e aktivitas.Entry) {
	r.entries = append(r.entries, e)
}

func newService(t *testing.T) (*Service, *recorderSpy) {
	t.Helper()
	spy := &recorderSpy{}
	return NewService(NewMemRepo(), spy), spy
}

func validRequest(nik string) CreateRequest {
	return CreateRequest{
		NIK:          nik,
		Nama:         "Budi Santoso",
		JenisKelamin: "L",
		TanggalLahir: time.Date(1990, 5, 17, 0, 0, 0, 0, time.Local),
		Alamat:       "Jl. Merdeka No. 1",
	}
}

func TestRegister_GeneratesNomorRM(t *testing.T) {
	svc, spy := newService(t)
	p, err := svc.Register(context.Background(), 1, validRequest("1234567890123456"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	now := time.Now()
	want := fmt.Sprintf("RM%02d%02d%04d", now.Year()%100, int(now.Month()), p.ID)
	if p.NomorRM != want {
		t.Fatalf("nomorRM = %q, want %q", p.NomorRM, want)
	}
	if !regexp.MustCompile(`^RM\d{8}$`).MatchString(p.NomorRM) {
		t.Fatalf("nomorRM %q does not match pattern", p.NomorRM)
	}
	if p.StatusSinkronisasi != "belum" {
		t.Fatalf("statusSinkronisasi = %q", p.StatusSinkronisasi)
	}
	if len(spy.entries) != 1 || spy.entries[0].Aktivitas != "Pendaftaran Pasien" {
		t.Fatalf("entries = %+v", spy.entries)
	}
	if spy.entries[0].PasienID == nil || *spy.entries[0].PasienID != p.ID {
		t.Fatal("activity not linked to patient")
	}
}

func TestRegister_NomorRMUnique(t *testing.T) {
	svc, _ := newService(t)
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		nik := fmt.Sprintf("12345678901234%02d", i)
		p, err := svc.Register(context.Background(), 1, validRequest(nik))
		if err != nil {
			t.Fatalf("Register %d: %v", i, err)
		}
		if seen[p.NomorRM] {
			t.Fatalf("duplicate nomorRM %q", p.NomorRM)
		}
		seen[p.NomorRM] = true
	}
}

func TestRegister_ExplicitNomorRMKept(t *testing.T) {
	svc, _ := newService(t)
	req := validRequest("1234567890123456")
	req.NomorRM = "RM25010042"
	p, err := svc.Register(context.Background(), 1, req)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if p.NomorRM != "RM25010042" {
		t.Fatalf("nomorRM = %q", p.NomorRM)
	}

	req2 := validRequest("6543210987654321")
	req2.NomorRM = "RM25010042"
	if _, err := svc.Register(context.Background(), 1, req2); !errors.Is(err, ErrNomorRMTerdaftar) {
		t.Fatalf("expected ErrNomorRMTerdaftar, got %v", err)
	}
}

func TestRegister_DuplicateNIK(t *testing.T) {
	svc, spy := newService(t)
	if _, err := svc.Register(context.Background(), 1, validRequest("1234567890123456")); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	before := len(spy.entries)
	_, err := svc.Register(context.Background(), 1, validRequest("1234567890123456"))
	if !errors.Is(err, ErrNIKTerdaftar) {
		t.Fatalf("expected ErrNIKTerdaftar, got %v", err)
	}
	if len(spy.entries) != before {
		t.Fatal("rejected registration must not log activity")
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	svc, spy := newService(t)
	nama := "Siapa"
	_, err := svc.Update(context.Background(), 1, 999, Patch{Nama: &nama})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(spy.entries) != 0 {
		t.Fatal("failed update must not log activity")
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	svc, _ := newService(t)
	p, _ := svc.Register(context.Background(), 1, validRequest("1234567890123456"))

	alamat := "Jl. Baru No. 2"
	updated, err := svc.Update(context.Background(), 1, p.ID, Patch{Alamat: &alamat})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Alamat != alamat {
		t.Fatalf("alamat = %q", updated.Alamat)
	}
	if updated.Nama != p.Nama || updated.NIK != p.NIK || updated.NomorRM != p.NomorRM {
		t.Fatal("patch touched fields it should not")
	}
	if !updated.UpdatedAt.After(p.UpdatedAt) && !updated.UpdatedAt.Equal(p.UpdatedAt) {
		t.Fatal("updatedAt went backwards")
	}
}

func TestDelete_Twice(t *testing.T) {
	svc, spy := newService(t)
	p, _ := svc.Register(context.Background(), 1, validRequest("1234567890123456"))

	if err := svc.Delete(context.Background(), 1, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	logged := len(spy.entries)
	err := svc.Delete(context.Background(), 1, p.ID)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
	if len(spy.entries) != logged {
		t.Fatal("second delete must not log activity")
	}
}

func TestGetByNomorRM(t *testing.T) {
	svc, _ := newService(t)
	p, _ := svc.Register(context.Background(), 1, validRequest("1234567890123456"))
	got, err := svc.GetByNomorRM(context.Background(), p.NomorRM)
	if err != nil {
		t.Fatalf("GetByNomorRM: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("id = %d", got.ID)
	}
}
