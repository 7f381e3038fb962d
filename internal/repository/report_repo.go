package repository

import (
	"context"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportRepository runs the aggregate queries behind the reports and
// dashboard screens. These are the only read paths that push predicates to
// the database — list screens load full sets and filter in memory.
type ReportRepository interface {
	MonthlyOrders(ctx context.Context, from, to string) ([]dto.MonthlyOrdersRow, error)
	DailyMovements(ctx context.Context, from, to string) ([]dto.DailyMovementsRow, error)
	SupplierShare(ctx context.Context, from, to string) ([]dto.SupplierShareRow, error)
	KilosTrend(ctx context.Context, from, to string) ([]dto.KilosTrendRow, error)
	DashboardCounters(ctx context.Context) (*dto.DashboardResponse, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) MonthlyOrders(ctx context.Context, from, to string) ([]dto.MonthlyOrdersRow, error) {
	var rows []dto.MonthlyOrdersRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(date, 'YYYY-MM') AS month,
		       COUNT(*)                 AS orders,
		       COALESCE(SUM(total), 0)  AS amount
		FROM purchase_orders
		WHERE date BETWEEN ? AND ?
		GROUP BY 1
		ORDER BY 1`, from, to).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) DailyMovements(ctx context.Context, from, to string) ([]dto.DailyMovementsRow, error) {
	var rows []dto.DailyMovementsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(date, 'YYYY-MM-DD')                          AS day,
		       COUNT(*) FILTER (WHERE type = 'entrada')             AS entradas,
		       COUNT(*) FILTER (WHERE type = 'salida')              AS salidas
		FROM warehouse_movements
		WHERE date BETWEEN ? AND ?
		GROUP BY 1
		ORDER BY 1`, from, to).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) SupplierShare(ctx context.Context, from, to string) ([]dto.SupplierShareRow, error) {
	var rows []dto.SupplierShareRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.name                     AS name,
		       COUNT(po.id)               AS orders,
		       COALESCE(SUM(po.total), 0) AS amount
		FROM purchase_orders po
		JOIN suppliers s ON s.id = po.supplier_id
		WHERE po.date BETWEEN ? AND ?
		GROUP BY s.name
		ORDER BY amount DESC
		LIMIT 5`, from, to).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) KilosTrend(ctx context.Context, from, to string) ([]dto.KilosTrendRow, error) {
	var rows []dto.KilosTrendRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(date, 'YYYY-MM') AS month,
		       COALESCE(SUM(CASE WHEN type = 'entrada' THEN kilos ELSE -kilos END), 0) AS kilos
		FROM warehouse_movements
		WHERE date BETWEEN ? AND ?
		GROUP BY 1
		ORDER BY 1`, from, to).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) DashboardCounters(ctx context.Context) (*dto.DashboardResponse, error) {
	var resp dto.DashboardResponse

	db := r.db.WithContext(ctx)
	if err := db.Model(&model.PurchaseOrder{}).Where("date = CURRENT_DATE").Count(&resp.OrdersToday).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.PurchaseOrder{}).Where("status = ?", model.OrderStatusPendiente).Count(&resp.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Supplier{}).Where("status = ?", "active").Count(&resp.ActiveSuppliers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Document{}).Count(&resp.Documents).Error; err != nil {
		return nil, err
	}

	var kilos decimal.NullDecimal
	err := db.Raw(`
		SELECT SUM(CASE WHEN type = 'entrada' THEN kilos ELSE -kilos END)
		FROM warehouse_movements
		WHERE date = CURRENT_DATE`).Scan(&kilos).Error
	if err != nil {
		return nil, err
	}
	if kilos.Valid {
		resp.KilosToday = kilos.Decimal
	}
	return &resp, nil
}
