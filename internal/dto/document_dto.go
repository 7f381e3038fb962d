package dto

// UploadDocumentForm mirrors the multipart fields of the upload endpoint; the
// binary travels as the "file" part.
type UploadDocumentForm struct {
	DocumentType string `form:"document_type" validate:"required,oneof=factura ticket remision entrada_almacen salida_almacen otro"`
	RelatedTo    string `form:"related_to"    validate:"required,oneof=orden entrada salida"`
	RelatedID    string `form:"related_id"    validate:"required,uuid"`
	SupplierID   string `form:"supplier_id"   validate:"omitempty,uuid"`
}

// DocumentFilter applies in memory over the full loaded set; clearing every
// field restores the exact result count of the last load.
type DocumentFilter struct {
	Type     string `form:"type"`
	Supplier string `form:"supplier"`
	Date     string `form:"date"` // YYYY-MM-DD, equality on the upload day
}

type DocumentResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DocumentType string `json:"document_type"`
	RelatedTo    string `json:"related_to"`
	RelatedID    string `json:"related_id"`
	SupplierName string `json:"supplier_name,omitempty"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `json:"mime_type"`
	UploadDate   string `json:"upload_date"`
}
