package service

import (
	"context"
	"time"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/infra"
	"github.com/ser180/4R/internal/repository"
)

type ReportService interface {
	Summary(ctx context.Context, filter dto.ReportFilter) (*dto.ReportSummaryResponse, error)
	ExportExcel(ctx context.Context, filter dto.ReportFilter) (string, error)
	ExportPDF(ctx context.Context, filter dto.ReportFilter) (string, error)
}

type reportService struct {
	repo       repository.ReportRepository
	exportPath string
}

func NewReportService(repo repository.ReportRepository, exportPath string) ReportService {
	return &reportService{repo: repo, exportPath: exportPath}
}

// normalizeRange defaults to the last six months when the caller picks no
// period, mirroring the report screen's initial view.
func normalizeRange(filter dto.ReportFilter) (string, string) {
	from, to := filter.From, filter.To
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = time.Now().AddDate(0, -6, 0).Format("2006-01-02")
	}
	return from, to
}

func (s *reportService) Summary(ctx context.Context, filter dto.ReportFilter) (*dto.ReportSummaryResponse, error) {
	from, to := normalizeRange(filter)

	monthly, err := s.repo.MonthlyOrders(ctx, from, to)
	if err != nil {
		return nil, err
	}
	daily, err := s.repo.DailyMovements(ctx, from, to)
	if err != nil {
		return nil, err
	}
	share, err := s.repo.SupplierShare(ctx, from, to)
	if err != nil {
		return nil, err
	}
	trend, err := s.repo.KilosTrend(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.ReportSummaryResponse{
		MonthlyOrders:  monthly,
		DailyMovements: daily,
		SupplierShare:  share,
		KilosTrend:     trend,
	}, nil
}

// ExportExcel writes the summary workbook to disk and returns its path.
func (s *reportService) ExportExcel(ctx context.Context, filter dto.ReportFilter) (string, error) {
	summary, err := s.Summary(ctx, filter)
	if err != nil {
		return "", err
	}
	return infra.WriteReportWorkbook(summary, s.exportPath)
}

// ExportPDF writes the summary as a printable PDF and returns its path.
func (s *reportService) ExportPDF(ctx context.Context, filter dto.ReportFilter) (string, error) {
	summary, err := s.Summary(ctx, filter)
	if err != nil {
		return "", err
	}
	return infra.WriteReportPDF(summary, s.exportPath)
}
