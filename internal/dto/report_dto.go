package dto

import "github.com/shopspring/decimal"

type MonthlyOrdersRow struct {
	Month  string          `json:"month"` // YYYY-MM
	Orders int64           `json:"orders"`
	Amount decimal.Decimal `json:"amount"`
}

type DailyMovementsRow struct {
	Day      string `json:"day"` // YYYY-MM-DD
	Entradas int64  `json:"entradas"`
	Salidas  int64  `json:"salidas"`
}

type SupplierShareRow struct {
	Name   string          `json:"name"`
	Orders int64           `json:"orders"`
	Amount decimal.Decimal `json:"amount"`
}

type KilosTrendRow struct {
	Month string          `json:"month"`
	Kilos decimal.Decimal `json:"kilos"` // net: entradas − salidas
}

type ReportFilter struct {
	From string `form:"from"` // YYYY-MM-DD inclusive
	To   string `form:"to"`   // YYYY-MM-DD inclusive
}

type ReportSummaryResponse struct {
	MonthlyOrders  []MonthlyOrdersRow  `json:"monthly_orders"`
	DailyMovements []DailyMovementsRow `json:"daily_movements"`
	SupplierShare  []SupplierShareRow  `json:"supplier_share"`
	KilosTrend     []KilosTrendRow     `json:"kilos_trend"`
}

type DashboardResponse struct {
	OrdersToday    int64           `json:"orders_today"`
	PendingOrders  int64           `json:"pending_orders"`
	KilosToday     decimal.Decimal `json:"kilos_today"`
	ActiveSuppliers int64          `json:"active_suppliers"`
	Documents      int64           `json:"documents"`
}
