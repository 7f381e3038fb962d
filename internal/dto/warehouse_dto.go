package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveMovementRequest struct {
	Folio           string          `json:"folio"`
	Type            string          `json:"type"              validate:"required,oneof=entrada salida"`
	PurchaseOrderID *string         `json:"purchase_order_id" validate:"omitempty,uuid"`
	Date            string          `json:"date"              validate:"required,datetime=2006-01-02"`
	Kilos           decimal.Decimal `json:"kilos"`
	Transporter     string          `json:"transporter"       validate:"required"`
	AuthorizedBy    string          `json:"authorized_by"     validate:"required"`
	ReceivedBy      string          `json:"received_by"       validate:"required"`
	Observations    *string         `json:"observations"`
}

type MovementFilter struct {
	Type  string `form:"type"`
	Date  string `form:"date"`
	Limit int    `form:"limit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovementResponse struct {
	ID            string          `json:"id"`
	Folio         string          `json:"folio"`
	Type          string          `json:"type"`
	OrderFolio    string          `json:"order_folio,omitempty"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Date          string          `json:"date"`
	Kilos         decimal.Decimal `json:"kilos"`
	Transporter   string          `json:"transporter"`
	AuthorizedBy  string          `json:"authorized_by"`
	ReceivedBy    string          `json:"received_by"`
	Status        string          `json:"status"`
	Observations  *string         `json:"observations,omitempty"`
}
