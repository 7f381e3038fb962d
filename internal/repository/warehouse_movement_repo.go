package repository

import (
	"context"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseMovementRepository interface {
	Create(ctx context.Context, m *model.WarehouseMovement) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.WarehouseMovement, error)
	List(ctx context.Context, filter dto.MovementFilter) ([]model.WarehouseMovement, error)
	ListAll(ctx context.Context) ([]model.WarehouseMovement, error)
	Update(ctx context.Context, m *model.WarehouseMovement) error
}

type warehouseMovementRepo struct{ db *gorm.DB }

func NewWarehouseMovementRepository(db *gorm.DB) WarehouseMovementRepository {
	return &warehouseMovementRepo{db: db}
}

func (r *warehouseMovementRepo) Create(ctx context.Context, m *model.WarehouseMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *warehouseMovementRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.WarehouseMovement, error) {
	var m model.WarehouseMovement
	err := r.db.WithContext(ctx).
		Preload("PurchaseOrder").Preload("PurchaseOrder.Supplier").
		First(&m, id).Error
	return &m, err
}

func (r *warehouseMovementRepo) List(ctx context.Context, filter dto.MovementFilter) ([]model.WarehouseMovement, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	q := r.db.WithContext(ctx).Preload("PurchaseOrder").Preload("PurchaseOrder.Supplier")
	if filter.Type != "" && filter.Type != "all" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}

	var movements []model.WarehouseMovement
	err := q.Order("created_at DESC").Limit(limit).Find(&movements).Error
	return movements, err
}

func (r *warehouseMovementRepo) ListAll(ctx context.Context) ([]model.WarehouseMovement, error) {
	var movements []model.WarehouseMovement
	err := r.db.WithContext(ctx).
		Preload("PurchaseOrder").Preload("PurchaseOrder.Supplier").
		Order("created_at DESC").Find(&movements).Error
	return movements, err
}

func (r *warehouseMovementRepo) Update(ctx context.Context, m *model.WarehouseMovement) error {
	return r.db.WithContext(ctx).Omit("PurchaseOrder").Save(m).Error
}
