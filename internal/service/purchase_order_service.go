package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"
	"github.com/ser180/4R/internal/repository"
	"github.com/ser180/4R/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseOrderService interface {
	Create(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseOrderResponse, error)
	List(ctx context.Context, filter dto.PurchaseOrderFilter) ([]dto.PurchaseOrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
}

type purchaseOrderService struct {
	repo         repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	dispatcher   *worker.Dispatcher
}

func NewPurchaseOrderService(
	repo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	dispatcher *worker.Dispatcher,
) PurchaseOrderService {
	return &purchaseOrderService{repo: repo, supplierRepo: supplierRepo, dispatcher: dispatcher}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// buildItems validates every line and recomputes its total as
// quantity × unit price rounded to two decimals. Client-sent totals never
// reach the database.
func buildItems(inputs []dto.OrderItemInput) ([]model.PurchaseOrderItem, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, errors.New("la orden debe tener al menos un artículo")
	}

	items := make([]model.PurchaseOrderItem, 0, len(inputs))
	orderTotal := decimal.Zero
	for i, in := range inputs {
		if in.Description == "" {
			return nil, decimal.Zero, fmt.Errorf("artículo %d: la descripción es obligatoria", i+1)
		}
		if !in.Quantity.IsPositive() {
			return nil, decimal.Zero, fmt.Errorf("artículo %d: la cantidad debe ser mayor a cero", i+1)
		}
		if !in.UnitPrice.IsPositive() {
			return nil, decimal.Zero, fmt.Errorf("artículo %d: el precio debe ser mayor a cero", i+1)
		}

		lineTotal := in.Quantity.Mul(in.UnitPrice).Round(2)
		orderTotal = orderTotal.Add(lineTotal)
		items = append(items, model.PurchaseOrderItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Total:       lineTotal,
		})
	}
	return items, orderTotal, nil
}

// Create validates, recomputes totals, and writes the order and its items in
// a single transaction. Validation failures block the write entirely — no
// partial state is persisted.
func (s *purchaseOrderService) Create(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, errors.New("proveedor inválido")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("fecha inválida")
	}

	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, errors.New("el proveedor seleccionado no existe")
	}

	items, total, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	folio := req.Folio
	if folio == "" {
		folio = NewOrderFolio(time.Now())
	}

	order := &model.PurchaseOrder{
		Folio:        folio,
		SupplierID:   supplierID,
		Date:         date,
		PaymentTerms: req.PaymentTerms,
		Status:       model.OrderStatusPendiente,
		Subtotal:     total,
		Tax:          decimal.Zero,
		Total:        total,
		Observations: req.Observations,
		Items:        items,
	}

	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, order)
	}); err != nil {
		return nil, fmt.Errorf("no se pudo guardar la orden de compra: %w", err)
	}

	order.Supplier = supplier
	return orderToResponse(order), nil
}

func (s *purchaseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("orden de compra no encontrada")
	}
	return orderToResponse(order), nil
}

func (s *purchaseOrderService) List(ctx context.Context, filter dto.PurchaseOrderFilter) ([]dto.PurchaseOrderResponse, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		o := orderToResponse(&orders[i])
		// Supplier-name filtering stays in memory, matching the list screens.
		if filter.Supplier != "" && o.SupplierName != filter.Supplier {
			continue
		}
		resp = append(resp, *o)
	}
	return resp, nil
}

// Update rewrites the mutable fields and replaces the item list, recomputing
// every total. A transition to Aprobada enqueues the supplier notification.
func (s *purchaseOrderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("orden de compra no encontrada")
	}

	items, total, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].PurchaseOrderID = order.ID
	}

	wasApproved := order.Status == model.OrderStatusAprobada
	order.Status = req.Status
	order.PaymentTerms = req.PaymentTerms
	order.Observations = req.Observations
	order.Subtotal = total
	order.Total = total

	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.ReplaceItems(ctx, tx, order.ID, items); err != nil {
			return err
		}
		return s.repo.Update(ctx, tx, order)
	}); err != nil {
		return nil, fmt.Errorf("no se pudo actualizar la orden de compra: %w", err)
	}
	order.Items = items

	if !wasApproved && order.Status == model.OrderStatusAprobada && s.dispatcher != nil {
		// Best effort — the approval itself is already committed.
		_ = s.dispatcher.EnqueueOrderApproved(ctx, worker.OrderApprovedPayload{
			OrderID: order.ID.String(),
			Folio:   order.Folio,
		})
	}

	return orderToResponse(order), nil
}

func orderToResponse(o *model.PurchaseOrder) *dto.PurchaseOrderResponse {
	supplierName := "Proveedor no especificado"
	if o.Supplier != nil {
		supplierName = o.Supplier.Name
	}

	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          it.ID.String(),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}

	return &dto.PurchaseOrderResponse{
		ID:           o.ID.String(),
		Folio:        o.Folio,
		SupplierID:   o.SupplierID.String(),
		SupplierName: supplierName,
		Date:         o.Date.Format("2006-01-02"),
		PaymentTerms: o.PaymentTerms,
		Status:       o.Status,
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		Total:        o.Total,
		Observations: o.Observations,
		Items:        items,
	}
}
