package service

import (
	"context"
	"testing"
	"time"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReportRepo returns canned aggregate rows.
type stubReportRepo struct {
	lastFrom, lastTo string
}

var _ repository.ReportRepository = (*stubReportRepo)(nil)

func (r *stubReportRepo) MonthlyOrders(_ context.Context, from, to string) ([]dto.MonthlyOrdersRow, error) {
	r.lastFrom, r.lastTo = from, to
	return []dto.MonthlyOrdersRow{{Month: "2026-03", Orders: 4, Amount: dec("1250.00")}}, nil
}

func (r *stubReportRepo) DailyMovements(_ context.Context, _, _ string) ([]dto.DailyMovementsRow, error) {
	return []dto.DailyMovementsRow{{Day: "2026-03-15", Entradas: 2, Salidas: 1}}, nil
}

func (r *stubReportRepo) SupplierShare(_ context.Context, _, _ string) ([]dto.SupplierShareRow, error) {
	return []dto.SupplierShareRow{{Name: "Recicladora del Norte", Orders: 3, Amount: dec("900.00")}}, nil
}

func (r *stubReportRepo) KilosTrend(_ context.Context, _, _ string) ([]dto.KilosTrendRow, error) {
	return []dto.KilosTrendRow{{Month: "2026-03", Kilos: dec("480.5")}}, nil
}

func (r *stubReportRepo) DashboardCounters(_ context.Context) (*dto.DashboardResponse, error) {
	return &dto.DashboardResponse{PendingOrders: 2}, nil
}

func TestReportSummary_ComposesAllSections(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, t.TempDir())

	resp, err := svc.Summary(context.Background(), dto.ReportFilter{From: "2026-01-01", To: "2026-03-31"})
	require.NoError(t, err)

	assert.Len(t, resp.MonthlyOrders, 1)
	assert.Len(t, resp.DailyMovements, 1)
	assert.Len(t, resp.SupplierShare, 1)
	assert.Len(t, resp.KilosTrend, 1)
	assert.Equal(t, "2026-01-01", repo.lastFrom)
	assert.Equal(t, "2026-03-31", repo.lastTo)
}

func TestNormalizeRange_DefaultsToLastSixMonths(t *testing.T) {
	from, to := normalizeRange(dto.ReportFilter{})

	parsedFrom, err := time.Parse("2006-01-02", from)
	require.NoError(t, err)
	parsedTo, err := time.Parse("2006-01-02", to)
	require.NoError(t, err)

	assert.True(t, parsedFrom.Before(parsedTo))
	// Roughly six months back, allowing for month-length variation
	days := parsedTo.Sub(parsedFrom).Hours() / 24
	assert.InDelta(t, 182, days, 5)
}

func TestNormalizeRange_KeepsExplicitBounds(t *testing.T) {
	from, to := normalizeRange(dto.ReportFilter{From: "2026-01-01", To: "2026-02-01"})
	assert.Equal(t, "2026-01-01", from)
	assert.Equal(t, "2026-02-01", to)
}

func TestReportExportExcel_WritesWorkbook(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, t.TempDir())

	path, err := svc.ExportExcel(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestReportExportPDF_WritesDocument(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, t.TempDir())

	path, err := svc.ExportPDF(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
