package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"
	"github.com/ser180/4R/internal/repository"

	"github.com/google/uuid"
)

// ObjectStore is the slice of the storage backend the document flow needs.
// Implemented by infra.Storage (MinIO behind a circuit breaker).
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignedGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
}

type UploadInput struct {
	Form         dto.UploadDocumentForm
	OriginalName string
	Size         int64
	ContentType  string
	Content      io.Reader
	UploadedBy   string
}

type DocumentService interface {
	Upload(ctx context.Context, in UploadInput) (*dto.DocumentResponse, error)
	List(ctx context.Context, filter dto.DocumentFilter) ([]dto.DocumentResponse, error)
	DownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	repo         repository.DocumentRepository
	orderRepo    repository.PurchaseOrderRepository
	movementRepo repository.WarehouseMovementRepository
	supplierRepo repository.SupplierRepository
	store        ObjectStore
}

func NewDocumentService(
	repo repository.DocumentRepository,
	orderRepo repository.PurchaseOrderRepository,
	movementRepo repository.WarehouseMovementRepository,
	supplierRepo repository.SupplierRepository,
	store ObjectStore,
) DocumentService {
	return &documentService{
		repo:         repo,
		orderRepo:    orderRepo,
		movementRepo: movementRepo,
		supplierRepo: supplierRepo,
		store:        store,
	}
}

// resolveRelation enforces the tagged union behind (related_to, related_id):
// an "orden" must reference an existing purchase order, "entrada"/"salida"
// must reference an existing movement of that exact type. Free-text kinds
// never reach the database.
func (s *documentService) resolveRelation(ctx context.Context, kind string, id uuid.UUID) error {
	switch kind {
	case model.RelatedOrden:
		if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
			return errors.New("la orden de compra relacionada no existe")
		}
	case model.RelatedEntrada, model.RelatedSalida:
		movement, err := s.movementRepo.FindByID(ctx, id)
		if err != nil {
			return errors.New("el movimiento de almacén relacionado no existe")
		}
		wantType := model.MovementEntrada
		if kind == model.RelatedSalida {
			wantType = model.MovementSalida
		}
		if movement.Type != wantType {
			return fmt.Errorf("el movimiento %s no es una %s", movement.Folio, kind)
		}
	default:
		return errors.New("tipo de relación inválido")
	}
	return nil
}

// Upload stores the binary in the object store under a generated path, then
// writes the metadata row. A failed row write removes the stored object so
// no orphan binary is left behind.
func (s *documentService) Upload(ctx context.Context, in UploadInput) (*dto.DocumentResponse, error) {
	relatedID, err := uuid.Parse(in.Form.RelatedID)
	if err != nil {
		return nil, errors.New("identificador relacionado inválido")
	}
	if err := s.resolveRelation(ctx, in.Form.RelatedTo, relatedID); err != nil {
		return nil, err
	}

	var supplierID *uuid.UUID
	if in.Form.SupplierID != "" {
		parsed, err := uuid.Parse(in.Form.SupplierID)
		if err != nil {
			return nil, errors.New("proveedor inválido")
		}
		if _, err := s.supplierRepo.FindByID(ctx, parsed); err != nil {
			return nil, errors.New("el proveedor seleccionado no existe")
		}
		supplierID = &parsed
	}

	ext := filepath.Ext(in.OriginalName)
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSlug(8), ext)
	storedPath := "documents/" + filename

	if err := s.store.Put(ctx, storedPath, in.Content, in.Size, in.ContentType); err != nil {
		return nil, errors.New("no se pudo subir el archivo")
	}

	doc := &model.Document{
		Filename:     filename,
		OriginalName: in.OriginalName,
		StoredPath:   storedPath,
		FileSize:     in.Size,
		MimeType:     in.ContentType,
		DocumentType: in.Form.DocumentType,
		RelatedTo:    in.Form.RelatedTo,
		RelatedID:    relatedID,
		SupplierID:   supplierID,
		UploadedBy:   in.UploadedBy,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		_ = s.store.Remove(ctx, storedPath)
		return nil, errors.New("no se pudo guardar el documento")
	}

	return documentToResponse(doc), nil
}

// List loads all documents and filters in memory: exact type and supplier
// name, day-equality on the upload date. Empty filters return the full set.
func (s *documentService) List(ctx context.Context, filter dto.DocumentFilter) ([]dto.DocumentResponse, error) {
	docs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		d := documentToResponse(&docs[i])
		if filter.Type != "" && d.DocumentType != filter.Type {
			continue
		}
		if filter.Supplier != "" && d.SupplierName != filter.Supplier {
			continue
		}
		if filter.Date != "" && d.UploadDate[:10] != filter.Date {
			continue
		}
		resp = append(resp, *d)
	}
	return resp, nil
}

func (s *documentService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", errors.New("documento no encontrado")
	}
	url, err := s.store.PresignedGet(ctx, doc.StoredPath, 15*time.Minute)
	if err != nil {
		return "", errors.New("no se pudo generar el enlace de descarga")
	}
	return url, nil
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("documento no encontrado")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.New("no se pudo eliminar el documento")
	}
	// The row is gone; a dangling binary only wastes space.
	_ = s.store.Remove(ctx, doc.StoredPath)
	return nil
}

func documentToResponse(d *model.Document) *dto.DocumentResponse {
	supplierName := ""
	if d.Supplier != nil {
		supplierName = d.Supplier.Name
	}
	return &dto.DocumentResponse{
		ID:           d.ID.String(),
		Name:         d.OriginalName,
		DocumentType: d.DocumentType,
		RelatedTo:    d.RelatedTo,
		RelatedID:    d.RelatedID.String(),
		SupplierName: supplierName,
		FileSize:     d.FileSize,
		MimeType:     d.MimeType,
		UploadDate:   d.CreatedAt.Format("2006-01-02 15:04"),
	}
}

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSlug(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(slugAlphabet[rand.Intn(len(slugAlphabet))])
	}
	return b.String()
}
