package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ser180/4R/internal/apierror"
	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/repository"
	"github.com/ser180/4R/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const dashboardCacheTTL = 60 * time.Second

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Summary(c *gin.Context) {
	var filter dto.ReportFilter
	_ = c.ShouldBindQuery(&filter)

	resp, err := h.svc.Summary(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportExcel generates the workbook on disk and streams it back.
func (h *ReportsHandler) ExportExcel(c *gin.Context) {
	var filter dto.ReportFilter
	_ = c.ShouldBindQuery(&filter)

	path, err := h.svc.ExportExcel(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar el reporte"))
		return
	}
	c.FileAttachment(path, "reporte.xlsx")
}

// ExportPDF generates the printable report on disk and streams it back.
func (h *ReportsHandler) ExportPDF(c *gin.Context) {
	var filter dto.ReportFilter
	_ = c.ShouldBindQuery(&filter)

	path, err := h.svc.ExportPDF(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar el reporte"))
		return
	}
	c.FileAttachment(path, "reporte.pdf")
}

// ── Dashboard ────────────────────────────────────────────────────────────────

// DashboardHandler serves the home screen counters. Counts are cached in
// Redis for a minute — the dashboard refreshes far more often than the
// numbers change.
type DashboardHandler struct {
	repo repository.ReportRepository
	rdb  *redis.Client
}

func NewDashboardHandler(repo repository.ReportRepository, rdb *redis.Client) *DashboardHandler {
	return &DashboardHandler{repo: repo, rdb: rdb}
}

func (h *DashboardHandler) Counters(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := "dashboard:counters"

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.DashboardResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.repo.DashboardCounters(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar el tablero"))
		return
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, dashboardCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
