package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"
	"github.com/ser180/4R/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	_ repository.PurchaseOrderRepository     = (*stubOrderRepo)(nil)
	_ repository.SupplierRepository          = (*stubSupplierRepo)(nil)
	_ repository.WarehouseMovementRepository = (*stubMovementRepo)(nil)
	_ repository.DocumentRepository          = (*stubDocumentRepo)(nil)
)

func mustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubOrderRepo is an in-memory PurchaseOrderRepository for testing.
type stubOrderRepo struct {
	orders    map[uuid.UUID]*model.PurchaseOrder
	createErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.PurchaseOrder)}
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

func (r *stubOrderRepo) Create(_ context.Context, _ *gorm.DB, o *model.PurchaseOrder) error {
	if r.createErr != nil {
		return r.createErr
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ dto.PurchaseOrderFilter) ([]model.PurchaseOrder, error) {
	return r.all(), nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]model.PurchaseOrder, error) {
	return r.all(), nil
}

func (r *stubOrderRepo) all() []model.PurchaseOrder {
	orders := make([]model.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, *o)
	}
	return orders
}

func (r *stubOrderRepo) Update(_ context.Context, _ *gorm.DB, o *model.PurchaseOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) ReplaceItems(_ context.Context, _ *gorm.DB, orderID uuid.UUID, items []model.PurchaseOrderItem) error {
	o, ok := r.orders[orderID]
	if !ok {
		return errors.New("not found")
	}
	o.Items = items
	return nil
}

// stubSupplierRepo is an in-memory SupplierRepository for testing.
type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) add(s *model.Supplier) *model.Supplier {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return s
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	r.add(s)
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	suppliers := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		suppliers = append(suppliers, *s)
	}
	return suppliers, nil
}

func (r *stubSupplierRepo) ListActive(ctx context.Context) ([]model.Supplier, error) {
	all, _ := r.List(ctx)
	active := make([]model.Supplier, 0, len(all))
	for _, s := range all {
		if s.Status == "active" {
			active = append(active, s)
		}
	}
	return active, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

// stubMovementRepo is an in-memory WarehouseMovementRepository for testing.
type stubMovementRepo struct {
	movements map[uuid.UUID]*model.WarehouseMovement
}

func newStubMovementRepo() *stubMovementRepo {
	return &stubMovementRepo{movements: make(map[uuid.UUID]*model.WarehouseMovement)}
}

func (r *stubMovementRepo) Create(_ context.Context, m *model.WarehouseMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movements[m.ID] = m
	return nil
}

func (r *stubMovementRepo) FindByID(_ context.Context, id uuid.UUID) (*model.WarehouseMovement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return m, nil
}

func (r *stubMovementRepo) List(_ context.Context, _ dto.MovementFilter) ([]model.WarehouseMovement, error) {
	return r.all(), nil
}

func (r *stubMovementRepo) ListAll(_ context.Context) ([]model.WarehouseMovement, error) {
	return r.all(), nil
}

func (r *stubMovementRepo) all() []model.WarehouseMovement {
	movements := make([]model.WarehouseMovement, 0, len(r.movements))
	for _, m := range r.movements {
		movements = append(movements, *m)
	}
	return movements
}

func (r *stubMovementRepo) Update(_ context.Context, m *model.WarehouseMovement) error {
	r.movements[m.ID] = m
	return nil
}

// stubDocumentRepo is an in-memory DocumentRepository for testing.
type stubDocumentRepo struct {
	docs      map[uuid.UUID]*model.Document
	createErr error
}

func newStubDocumentRepo() *stubDocumentRepo {
	return &stubDocumentRepo{docs: make(map[uuid.UUID]*model.Document)}
}

func (r *stubDocumentRepo) Create(_ context.Context, d *model.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.docs[d.ID] = d
	return nil
}

func (r *stubDocumentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func (r *stubDocumentRepo) ListAll(_ context.Context) ([]model.Document, error) {
	docs := make([]model.Document, 0, len(r.docs))
	for _, d := range r.docs {
		docs = append(docs, *d)
	}
	return docs, nil
}

func (r *stubDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.docs, id)
	return nil
}
