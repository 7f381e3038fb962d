package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase order lifecycle states.
const (
	OrderStatusPendiente = "Pendiente"
	OrderStatusAprobada  = "Aprobada"
	OrderStatusCancelada = "Cancelada"
)

// PurchaseOrder is a buy order for recycled material. Total is always the sum
// of the line totals, recomputed at save time — client-sent totals are ignored.
// The folio carries no uniqueness guarantee (truncated-timestamp suffix, or
// free text typed by the user).
type PurchaseOrder struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Folio        string    `gorm:"index;not null"`
	SupplierID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Date         time.Time `gorm:"type:date;not null"`
	PaymentTerms string
	Status       string          `gorm:"not null;default:'Pendiente'"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Observations *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Supplier *Supplier           `gorm:"foreignKey:SupplierID"`
	Items    []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }

// PurchaseOrderItem is one line (description, quantity, unit price) of an
// order. Total = quantity × unit price rounded to two decimals.
type PurchaseOrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description     string          `gorm:"not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt       time.Time
}

func (PurchaseOrderItem) TableName() string { return "purchase_order_items" }
