package model

import (
	"time"

	"github.com/google/uuid"
)

// Document relation kinds — the polymorphic (related_to, related_id) pair is
// a tagged union, validated per variant before a row is written.
const (
	RelatedOrden   = "orden"
	RelatedEntrada = "entrada"
	RelatedSalida  = "salida"
)

// Document is the metadata row for an uploaded binary. The binary itself
// lives in the object store under StoredPath.
type Document struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Filename     string    `gorm:"not null"`
	OriginalName string    `gorm:"not null"`
	StoredPath   string    `gorm:"column:file_path;not null"`
	FileSize     int64     `gorm:"not null"`
	MimeType     string
	DocumentType string     `gorm:"not null"` // factura | ticket | remision | entrada_almacen | salida_almacen | otro
	RelatedTo    string     `gorm:"not null"` // orden | entrada | salida
	RelatedID    uuid.UUID  `gorm:"type:uuid;not null"`
	SupplierID   *uuid.UUID `gorm:"type:uuid;index"`
	UploadedBy   string
	CreatedAt    time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}

func (Document) TableName() string { return "documents" }
