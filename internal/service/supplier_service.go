package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"
	"github.com/ser180/4R/internal/repository"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context, filter dto.SupplierFilter) ([]dto.SupplierResponse, error)
	ListActive(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := supplierFromRequest(req)
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, errors.New("no se pudo crear el proveedor")
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("proveedor no encontrado")
	}
	return supplierToResponse(supplier), nil
}

// List loads the full directory and applies the filters in memory: exact
// status match plus a case-insensitive substring over name/rfc/email.
// Clearing both filters yields the complete loaded set.
func (s *supplierService) List(ctx context.Context, filter dto.SupplierFilter) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		if !matchSupplier(&suppliers[i], filter) {
			continue
		}
		resp = append(resp, *supplierToResponse(&suppliers[i]))
	}
	return resp, nil
}

func matchSupplier(sup *model.Supplier, filter dto.SupplierFilter) bool {
	if filter.Status != "" && filter.Status != "all" && sup.Status != filter.Status {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(sup.Name), needle) &&
			!strings.Contains(strings.ToLower(sup.RFC), needle) &&
			!strings.Contains(strings.ToLower(sup.Email), needle) {
			return false
		}
	}
	return true
}

func (s *supplierService) ListActive(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		resp = append(resp, *supplierToResponse(&suppliers[i]))
	}
	return resp, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("proveedor no encontrado")
	}

	updated := supplierFromRequest(req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, errors.New("no se pudo actualizar el proveedor")
	}
	return supplierToResponse(updated), nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("proveedor no encontrado")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.New("no se pudo eliminar el proveedor")
	}
	return nil
}

func supplierFromRequest(req dto.SaveSupplierRequest) *model.Supplier {
	paymentTerms := req.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = "30 días"
	}
	status := req.Status
	if status == "" {
		status = "active"
	}
	return &model.Supplier{
		Name:          req.Name,
		RFC:           req.RFC,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		ContactPerson: req.ContactPerson,
		PaymentTerms:  paymentTerms,
		Status:        status,
		Notes:         req.Notes,
	}
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		RFC:           s.RFC,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		City:          s.City,
		State:         s.State,
		PostalCode:    s.PostalCode,
		ContactPerson: s.ContactPerson,
		PaymentTerms:  s.PaymentTerms,
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.Format("2006-01-02"),
	}
}
