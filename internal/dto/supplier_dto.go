package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveSupplierRequest struct {
	Name          string  `json:"name"           validate:"required,min=2"`
	RFC           string  `json:"rfc"            validate:"required"`
	Email         string  `json:"email"          validate:"required,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	PostalCode    *string `json:"postal_code"`
	ContactPerson *string `json:"contact_person"`
	PaymentTerms  string  `json:"payment_terms"  validate:"omitempty,oneof=Contado '15 días' '30 días' '45 días' '60 días' '90 días'"`
	Status        string  `json:"status"         validate:"omitempty,oneof=active inactive"`
	Notes         *string `json:"notes"`
}

// SupplierFilter applies in memory over the full loaded set: substring on
// name/rfc/email, exact status match. "all" disables the status predicate.
type SupplierFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RFC           string  `json:"rfc"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	PaymentTerms  string  `json:"payment_terms"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
