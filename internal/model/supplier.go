package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a material provider in the directory. Deleted by id with no
// soft-delete — the status field is business state, not a tombstone.
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	RFC           string    `gorm:"column:rfc;not null"`
	Email         string    `gorm:"not null"`
	Phone         *string
	Address       *string
	City          *string
	State         *string
	PostalCode    *string
	ContactPerson *string
	PaymentTerms  string `gorm:"not null;default:'30 días'"`
	Status        string `gorm:"not null;default:'active'"` // "active" | "inactive"
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Supplier) TableName() string { return "suppliers" }
