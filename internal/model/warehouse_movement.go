package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Warehouse movement direction.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
)

// WarehouseMovement records material entering or leaving the warehouse, in
// kilograms. Kilos are independent of any linked order's quantities — no
// invariant ties them together.
type WarehouseMovement struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Folio           string     `gorm:"index;not null"`
	Type            string     `gorm:"not null;index"` // "entrada" | "salida"
	PurchaseOrderID *uuid.UUID `gorm:"type:uuid;index"`
	Date            time.Time  `gorm:"type:date;not null"`
	Kilos           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Transporter     string          `gorm:"not null"`
	AuthorizedBy    string
	ReceivedBy      string
	Status          string `gorm:"not null;default:'Autorizado'"`
	Observations    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	PurchaseOrder *PurchaseOrder `gorm:"foreignKey:PurchaseOrderID"`
}

func (WarehouseMovement) TableName() string { return "warehouse_movements" }
