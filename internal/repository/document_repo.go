package repository

import (
	"context"

	"github.com/ser180/4R/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	ListAll(ctx context.Context) ([]model.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) DocumentRepository { return &documentRepo{db: db} }

func (r *documentRepo) Create(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *documentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var d model.Document
	err := r.db.WithContext(ctx).Preload("Supplier").First(&d, id).Error
	return &d, err
}

func (r *documentRepo) ListAll(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).Preload("Supplier").Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Document{}, id).Error
}
