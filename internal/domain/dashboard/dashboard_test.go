package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type countersStub struct {
	pasien    int64
	jadwal    int64
	rawatInap int64
	dokter    int64
	err       error
}

func (s countersStub) CountPasien(ctx context.Context) (int64, error) {
	return s.pasien, s.err
}

func (s countersStub) CountJadwalHariIni(ctx context.Context) (int64, error) {
	return s.jadwal, s.err
}

func (s countersStub) CountRawatInapAktif(ctx context.Context) (int64, error) {
	return s.rawatInap, s.err
}

func (s countersStub) CountDokter(ctx context.Context) (int64, error) {
	return s.dokter, s.err
}

func TestStatsLiveCounts(t *testing.T) {
	svc := NewService(countersStub{pasien: 120, jadwal: 8, rawatInap: 5, dokter: 12}, zerolog.Nop())
	stats := svc.Stats(context.Background())

	if stats.TotalPatients != 120 {
		t.Errorf("totalPatients = %d, want 120", stats.TotalPatients)
	}
	if stats.TodayPatients != 8 {
		t.Errorf("todayPatients = %d, want 8", stats.TodayPatients)
	}
	if stats.Inpatients != 5 {
		t.Errorf("inpatients = %d, want 5", stats.Inpatients)
	}
	if stats.TotalDoctors != 12 {
		t.Errorf("totalDoctors = %d, want 12", stats.TotalDoctors)
	}
	if stats.BedOccupancy != 72 {
		t.Errorf("bedOccupancy = %d, want 72", stats.BedOccupancy)
	}
}

func TestStatsFallsBackOnCounterError(t *testing.T) {
	svc := NewService(countersStub{err: errors.New("store down")}, zerolog.Nop())
	stats := svc.Stats(context.Background())

	if stats.TotalPatients != 2547 {
		t.Errorf("totalPatients = %d, want baseline 2547", stats.TotalPatients)
	}
	if stats.TodayPatients != 42 {
		t.Errorf("todayPatients = %d, want baseline 42", stats.TodayPatients)
	}
	if stats.Inpatients != 24 {
		t.Errorf("inpatients = %d, want baseline 24", stats.Inpatients)
	}
	if stats.TotalDoctors != 36 {
		t.Errorf("totalDoctors = %d, want baseline 36", stats.TotalDoctors)
	}
}

func TestGetStats(t *testing.T) {
	e := echo.New()
	svc := NewService(countersStub{pasien: 3, jadwal: 1, rawatInap: 2}, zerolog.Nop())
	NewHandler(svc).RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalPatients != 3 || got.TodayPatients != 1 || got.Inpatients != 2 {
		t.Errorf("stats = %+v", got)
	}
}
