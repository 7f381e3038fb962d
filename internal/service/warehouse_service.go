package service

import (
	"context"
	"errors"
	"time"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"
	"github.com/ser180/4R/internal/repository"

	"github.com/google/uuid"
)

type WarehouseService interface {
	Create(ctx context.Context, req dto.SaveMovementRequest) (*dto.MovementResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MovementResponse, error)
	List(ctx context.Context, filter dto.MovementFilter) ([]dto.MovementResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveMovementRequest) (*dto.MovementResponse, error)
}

type warehouseService struct {
	repo      repository.WarehouseMovementRepository
	orderRepo repository.PurchaseOrderRepository
}

func NewWarehouseService(repo repository.WarehouseMovementRepository, orderRepo repository.PurchaseOrderRepository) WarehouseService {
	return &warehouseService{repo: repo, orderRepo: orderRepo}
}

// Create registers an entrada or salida. Kilos must be non-negative; they
// are independent of any linked order's quantities. A blank folio gets the
// ALM-<year>-<suffix> shape generated on the spot.
func (s *warehouseService) Create(ctx context.Context, req dto.SaveMovementRequest) (*dto.MovementResponse, error) {
	movement, err := s.buildMovement(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, movement); err != nil {
		return nil, errors.New("no se pudo guardar el movimiento de almacén")
	}
	return movementToResponse(movement), nil
}

func (s *warehouseService) buildMovement(ctx context.Context, req dto.SaveMovementRequest) (*model.WarehouseMovement, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("fecha inválida")
	}
	if req.Kilos.IsNegative() {
		return nil, errors.New("los kilos no pueden ser negativos")
	}

	var orderID *uuid.UUID
	if req.PurchaseOrderID != nil && *req.PurchaseOrderID != "" {
		parsed, err := uuid.Parse(*req.PurchaseOrderID)
		if err != nil {
			return nil, errors.New("orden de compra inválida")
		}
		if _, err := s.orderRepo.FindByID(ctx, parsed); err != nil {
			return nil, errors.New("la orden de compra referenciada no existe")
		}
		orderID = &parsed
	}

	folio := req.Folio
	if folio == "" {
		folio = NewMovementFolio(time.Now())
	}

	return &model.WarehouseMovement{
		Folio:           folio,
		Type:            req.Type,
		PurchaseOrderID: orderID,
		Date:            date,
		Kilos:           req.Kilos,
		Transporter:     req.Transporter,
		AuthorizedBy:    req.AuthorizedBy,
		ReceivedBy:      req.ReceivedBy,
		Status:          "Autorizado",
		Observations:    req.Observations,
	}, nil
}

func (s *warehouseService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MovementResponse, error) {
	movement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("movimiento de almacén no encontrado")
	}
	return movementToResponse(movement), nil
}

func (s *warehouseService) List(ctx context.Context, filter dto.MovementFilter) ([]dto.MovementResponse, error) {
	movements, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovementResponse, 0, len(movements))
	for i := range movements {
		resp = append(resp, *movementToResponse(&movements[i]))
	}
	return resp, nil
}

func (s *warehouseService) Update(ctx context.Context, id uuid.UUID, req dto.SaveMovementRequest) (*dto.MovementResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("movimiento de almacén no encontrado")
	}

	updated, err := s.buildMovement(ctx, req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.Status = existing.Status
	updated.CreatedAt = existing.CreatedAt
	if req.Folio == "" {
		updated.Folio = existing.Folio
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, errors.New("no se pudo actualizar el movimiento de almacén")
	}
	return movementToResponse(updated), nil
}

func movementToResponse(m *model.WarehouseMovement) *dto.MovementResponse {
	resp := &dto.MovementResponse{
		ID:           m.ID.String(),
		Folio:        m.Folio,
		Type:         m.Type,
		Date:         m.Date.Format("2006-01-02"),
		Kilos:        m.Kilos,
		Transporter:  m.Transporter,
		AuthorizedBy: m.AuthorizedBy,
		ReceivedBy:   m.ReceivedBy,
		Status:       m.Status,
		Observations: m.Observations,
	}
	if m.PurchaseOrder != nil {
		resp.OrderFolio = m.PurchaseOrder.Folio
		if m.PurchaseOrder.Supplier != nil {
			resp.SupplierName = m.PurchaseOrder.Supplier.Name
		}
	}
	return resp
}
