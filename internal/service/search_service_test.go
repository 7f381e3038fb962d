package service

import (
	"context"
	"testing"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []dto.SearchResult {
	return []dto.SearchResult{
		{ID: "1", Type: "orden", Folio: "OC-2026-000123", Supplier: "Recicladora del Norte", Date: "2026-03-15", Status: "Pendiente"},
		{ID: "2", Type: "orden", Folio: "OC-2026-000456", Supplier: "Metales García", Date: "2026-03-16", Status: "Aprobada"},
		{ID: "3", Type: "entrada", Folio: "ALM-2026-001", Supplier: "Recicladora del Norte", Date: "2026-03-15", Status: "Autorizado"},
		{ID: "4", Type: "documento", Folio: "factura-marzo.pdf", Supplier: "Metales García", Date: "2026-03-16", Status: "Procesado", DocumentType: "factura"},
		{ID: "5", Type: "documento", Folio: "ticket-bascula.jpg", Supplier: "Recicladora del Norte", Date: "2026-03-17", Status: "Procesado", DocumentType: "ticket"},
	}
}

func TestFilterResults_EmptyFilterReturnsAll(t *testing.T) {
	results := sampleResults()
	filtered := FilterResults(results, dto.SearchFilter{})
	assert.Len(t, filtered, len(results))
}

func TestFilterResults_SubstringOnFolioAndSupplier(t *testing.T) {
	filtered := FilterResults(sampleResults(), dto.SearchFilter{Search: "oc-2026"})
	assert.Len(t, filtered, 2)

	filtered = FilterResults(sampleResults(), dto.SearchFilter{Search: "garcía"})
	assert.Len(t, filtered, 2)
}

func TestFilterResults_DocTypeNarrowsDocuments(t *testing.T) {
	// Filtering documentos by type factura excludes the ticket row
	filtered := FilterResults(sampleResults(), dto.SearchFilter{Type: "documento", DocType: "factura"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "factura-marzo.pdf", filtered[0].Folio)
}

func TestFilterResults_TypeAllPassesEverything(t *testing.T) {
	filtered := FilterResults(sampleResults(), dto.SearchFilter{Type: "all"})
	assert.Len(t, filtered, 5)
}

func TestFilterResults_ConjunctionOfPredicates(t *testing.T) {
	filtered := FilterResults(sampleResults(), dto.SearchFilter{
		Supplier: "Recicladora del Norte",
		Date:     "2026-03-15",
	})
	assert.Len(t, filtered, 2) // the orden and the entrada of that day

	filtered = FilterResults(sampleResults(), dto.SearchFilter{
		Supplier: "Recicladora del Norte",
		Date:     "2026-03-15",
		Status:   "Autorizado",
	})
	require.Len(t, filtered, 1)
	assert.Equal(t, "entrada", filtered[0].Type)
}

// Clearing every filter after a narrowing search restores the exact count.
func TestFilterResults_ClearingFiltersRestoresCount(t *testing.T) {
	results := sampleResults()

	narrowed := FilterResults(results, dto.SearchFilter{Search: "factura"})
	require.Len(t, narrowed, 1)

	restored := FilterResults(results, dto.SearchFilter{})
	assert.Len(t, restored, len(results))
}

func TestSearch_FlattensAllEntities(t *testing.T) {
	orderRepo := newStubOrderRepo()
	movementRepo := newStubMovementRepo()
	documentRepo := newStubDocumentRepo()
	svc := NewSearchService(orderRepo, movementRepo, documentRepo)

	supplier := &model.Supplier{Name: "Recicladora del Norte"}
	require.NoError(t, orderRepo.Create(context.Background(), nil, &model.PurchaseOrder{
		Folio: "OC-2026-000123", Status: model.OrderStatusPendiente, Supplier: supplier,
	}))
	require.NoError(t, movementRepo.Create(context.Background(), &model.WarehouseMovement{
		Folio: "ALM-2026-001", Type: model.MovementEntrada, Status: "Autorizado",
	}))
	require.NoError(t, documentRepo.Create(context.Background(), &model.Document{
		OriginalName: "factura.pdf", DocumentType: "factura", RelatedTo: model.RelatedOrden,
	}))

	resp, err := svc.Search(context.Background(), dto.SearchFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)

	types := make(map[string]bool)
	for _, r := range resp.Results {
		types[r.Type] = true
	}
	assert.True(t, types["orden"])
	assert.True(t, types["entrada"])
	assert.True(t, types["documento"])
}
