package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubObjectStore records Put/Remove calls in memory.
type stubObjectStore struct {
	objects map[string][]byte
	putErr  error
}

var _ ObjectStore = (*stubObjectStore)(nil)

func newStubObjectStore() *stubObjectStore {
	return &stubObjectStore{objects: make(map[string][]byte)}
}

func (s *stubObjectStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if s.putErr != nil {
		return s.putErr
	}
	data, _ := io.ReadAll(r)
	s.objects[key] = data
	return nil
}

func (s *stubObjectStore) PresignedGet(_ context.Context, key string, _ time.Duration) (string, error) {
	if _, ok := s.objects[key]; !ok {
		return "", errors.New("not found")
	}
	return "https://storage.local/" + key, nil
}

func (s *stubObjectStore) Remove(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

type documentFixture struct {
	docRepo      *stubDocumentRepo
	orderRepo    *stubOrderRepo
	movementRepo *stubMovementRepo
	supplierRepo *stubSupplierRepo
	store        *stubObjectStore
	svc          DocumentService
}

func newDocumentFixture() *documentFixture {
	f := &documentFixture{
		docRepo:      newStubDocumentRepo(),
		orderRepo:    newStubOrderRepo(),
		movementRepo: newStubMovementRepo(),
		supplierRepo: newStubSupplierRepo(),
		store:        newStubObjectStore(),
	}
	f.svc = NewDocumentService(f.docRepo, f.orderRepo, f.movementRepo, f.supplierRepo, f.store)
	return f
}

func uploadInput(form dto.UploadDocumentForm) UploadInput {
	return UploadInput{
		Form:         form,
		OriginalName: "factura-123.pdf",
		Size:         11,
		ContentType:  "application/pdf",
		Content:      strings.NewReader("PDF-CONTENT"),
		UploadedBy:   "operador@recicladora4r.com",
	}
}

func TestUpload_OrdenRelationMustExist(t *testing.T) {
	f := newDocumentFixture()

	_, err := f.svc.Upload(context.Background(), uploadInput(dto.UploadDocumentForm{
		DocumentType: "factura",
		RelatedTo:    model.RelatedOrden,
		RelatedID:    "4b6c3c3e-9f6c-4f6f-8a2a-2f6d1d2e3f4a",
	}))
	require.Error(t, err)
	assert.Empty(t, f.docRepo.docs)
	assert.Empty(t, f.store.objects)
}

func TestUpload_EntradaMustReferenceEntradaMovement(t *testing.T) {
	f := newDocumentFixture()

	salida := &model.WarehouseMovement{Folio: "ALM-2026-001", Type: model.MovementSalida}
	require.NoError(t, f.movementRepo.Create(context.Background(), salida))

	_, err := f.svc.Upload(context.Background(), uploadInput(dto.UploadDocumentForm{
		DocumentType: "entrada_almacen",
		RelatedTo:    model.RelatedEntrada,
		RelatedID:    salida.ID.String(),
	}))
	require.Error(t, err)
	assert.Empty(t, f.docRepo.docs)
}

func TestUpload_StoresObjectAndRow(t *testing.T) {
	f := newDocumentFixture()

	order := &model.PurchaseOrder{Folio: "OC-2026-000001"}
	require.NoError(t, f.orderRepo.Create(context.Background(), nil, order))

	resp, err := f.svc.Upload(context.Background(), uploadInput(dto.UploadDocumentForm{
		DocumentType: "factura",
		RelatedTo:    model.RelatedOrden,
		RelatedID:    order.ID.String(),
	}))
	require.NoError(t, err)

	assert.Equal(t, "factura-123.pdf", resp.Name)
	assert.Equal(t, "factura", resp.DocumentType)
	assert.Len(t, f.store.objects, 1)
	assert.Len(t, f.docRepo.docs, 1)
	for key := range f.store.objects {
		assert.True(t, strings.HasPrefix(key, "documents/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
	}
}

// A failed metadata write must remove the already-stored binary.
func TestUpload_RowFailureRemovesStoredObject(t *testing.T) {
	f := newDocumentFixture()
	f.docRepo.createErr = errors.New("db down")

	order := &model.PurchaseOrder{Folio: "OC-2026-000001"}
	require.NoError(t, f.orderRepo.Create(context.Background(), nil, order))

	_, err := f.svc.Upload(context.Background(), uploadInput(dto.UploadDocumentForm{
		DocumentType: "factura",
		RelatedTo:    model.RelatedOrden,
		RelatedID:    order.ID.String(),
	}))
	require.Error(t, err)
	assert.Empty(t, f.store.objects)
}

func TestDocumentList_FiltersInMemory(t *testing.T) {
	f := newDocumentFixture()

	order := &model.PurchaseOrder{Folio: "OC-2026-000001"}
	require.NoError(t, f.orderRepo.Create(context.Background(), nil, order))

	for _, docType := range []string{"factura", "ticket", "factura"} {
		in := uploadInput(dto.UploadDocumentForm{
			DocumentType: docType,
			RelatedTo:    model.RelatedOrden,
			RelatedID:    order.ID.String(),
		})
		in.Content = strings.NewReader("PDF-CONTENT")
		_, err := f.svc.Upload(context.Background(), in)
		require.NoError(t, err)
	}

	facturas, err := f.svc.List(context.Background(), dto.DocumentFilter{Type: "factura"})
	require.NoError(t, err)
	assert.Len(t, facturas, 2)

	// Clearing the filter restores the full set
	all, err := f.svc.List(context.Background(), dto.DocumentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDownloadURL_PresignsStoredPath(t *testing.T) {
	f := newDocumentFixture()

	order := &model.PurchaseOrder{Folio: "OC-2026-000001"}
	require.NoError(t, f.orderRepo.Create(context.Background(), nil, order))

	resp, err := f.svc.Upload(context.Background(), uploadInput(dto.UploadDocumentForm{
		DocumentType: "factura",
		RelatedTo:    model.RelatedOrden,
		RelatedID:    order.ID.String(),
	}))
	require.NoError(t, err)

	var id string = resp.ID
	url, err := f.svc.DownloadURL(context.Background(), mustParse(t, id))
	require.NoError(t, err)
	assert.Contains(t, url, "documents/")
}

func TestDocumentDelete_RemovesRowAndObject(t *testing.T) {
	f := newDocumentFixture()

	order := &model.PurchaseOrder{Folio: "OC-2026-000001"}
	require.NoError(t, f.orderRepo.Create(context.Background(), nil, order))

	resp, err := f.svc.Upload(context.Background(), uploadInput(dto.UploadDocumentForm{
		DocumentType: "factura",
		RelatedTo:    model.RelatedOrden,
		RelatedID:    order.ID.String(),
	}))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), mustParse(t, resp.ID)))
	assert.Empty(t, f.docRepo.docs)
	assert.Empty(t, f.store.objects)
}
