package dto

import "github.com/shopspring/decimal"

// SearchFilter is a conjunction of predicates applied in memory over the
// full loaded set — no predicate is pushed to the database query.
type SearchFilter struct {
	Search   string `form:"search"`   // substring on folio / supplier
	Type     string `form:"type"`     // orden | documento | entrada | salida | all
	Supplier string `form:"supplier"` // exact supplier name
	Status   string `form:"status"`   // exact status
	DocType  string `form:"doc_type"` // exact document type
	Date     string `form:"date"`     // YYYY-MM-DD, single-day equality
}

// SearchResult is the flattened cross-entity row the search screen renders.
type SearchResult struct {
	ID           string           `json:"id"`
	Type         string           `json:"type"` // orden | documento | entrada | salida
	Folio        string           `json:"folio"`
	Supplier     string           `json:"supplier"`
	Date         string           `json:"date"`
	Status       string           `json:"status"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Kilos        *decimal.Decimal `json:"kilos,omitempty"`
	DocumentType string           `json:"document_type,omitempty"`
	Transporter  string           `json:"transporter,omitempty"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}
