package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest carries no totals: line and order totals are
// recomputed server-side from quantity × unit price. Folio is optional free
// text — empty means "generate one".
type CreatePurchaseOrderRequest struct {
	Folio        string           `json:"folio"`
	SupplierID   string           `json:"supplier_id"   validate:"required,uuid"`
	Date         string           `json:"date"          validate:"required,datetime=2006-01-02"`
	PaymentTerms string           `json:"payment_terms"`
	Observations *string          `json:"observations"`
	Items        []OrderItemInput `json:"items"         validate:"required,min=1"`
}

type UpdatePurchaseOrderRequest struct {
	Status       string           `json:"status"        validate:"required,oneof=Pendiente Aprobada Cancelada"`
	PaymentTerms string           `json:"payment_terms"`
	Observations *string          `json:"observations"`
	Items        []OrderItemInput `json:"items"         validate:"required,min=1"`
}

type PurchaseOrderFilter struct {
	Status   string `form:"status"`
	Supplier string `form:"supplier"`
	Date     string `form:"date"` // YYYY-MM-DD, equality on a single day
	Limit    int    `form:"limit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type PurchaseOrderResponse struct {
	ID           string              `json:"id"`
	Folio        string              `json:"folio"`
	SupplierID   string              `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	Date         string              `json:"date"`
	PaymentTerms string              `json:"payment_terms"`
	Status       string              `json:"status"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	Observations *string             `json:"observations,omitempty"`
	Items        []OrderItemResponse `json:"items"`
}
