package repository

import (
	"context"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	// Create persists the order and its items atomically when called inside
	// a transaction (tx); a partial order+items write cannot occur.
	Create(ctx context.Context, tx *gorm.DB, o *model.PurchaseOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, error)
	ListAll(ctx context.Context) ([]model.PurchaseOrder, error)
	Update(ctx context.Context, tx *gorm.DB, o *model.PurchaseOrder) error
	ReplaceItems(ctx context.Context, tx *gorm.DB, orderID uuid.UUID, items []model.PurchaseOrderItem) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type purchaseOrderRepo struct{ db *gorm.DB }

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) DB() *gorm.DB { return r.db }

func (r *purchaseOrderRepo) Create(ctx context.Context, tx *gorm.DB, o *model.PurchaseOrder) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *purchaseOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	var o model.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Supplier").Preload("Items").First(&o, id).Error
	return &o, err
}

func (r *purchaseOrderRepo) List(ctx context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	q := r.db.WithContext(ctx).Preload("Supplier").Preload("Items")
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}

	var orders []model.PurchaseOrder
	err := q.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) ListAll(ctx context.Context) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Supplier").Preload("Items").
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) Update(ctx context.Context, tx *gorm.DB, o *model.PurchaseOrder) error {
	return tx.WithContext(ctx).Omit("Items", "Supplier").Save(o).Error
}

func (r *purchaseOrderRepo) ReplaceItems(ctx context.Context, tx *gorm.DB, orderID uuid.UUID, items []model.PurchaseOrderItem) error {
	if err := tx.WithContext(ctx).
		Where("purchase_order_id = ?", orderID).
		Delete(&model.PurchaseOrderItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Create(&items).Error
}
