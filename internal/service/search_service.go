package service

import (
	"context"
	"strings"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/repository"
)

type SearchService interface {
	Search(ctx context.Context, filter dto.SearchFilter) (*dto.SearchResponse, error)
}

type searchService struct {
	orderRepo    repository.PurchaseOrderRepository
	movementRepo repository.WarehouseMovementRepository
	documentRepo repository.DocumentRepository
}

func NewSearchService(
	orderRepo repository.PurchaseOrderRepository,
	movementRepo repository.WarehouseMovementRepository,
	documentRepo repository.DocumentRepository,
) SearchService {
	return &searchService{orderRepo: orderRepo, movementRepo: movementRepo, documentRepo: documentRepo}
}

// Search loads the full result set across orders, movements, and documents,
// then applies the filter conjunction in memory. Cost is linear in the
// loaded set — acceptable for human-entered business records.
func (s *searchService) Search(ctx context.Context, filter dto.SearchFilter) (*dto.SearchResponse, error) {
	results, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterResults(results, filter)
	return &dto.SearchResponse{Results: filtered, Total: len(filtered)}, nil
}

func (s *searchService) loadAll(ctx context.Context) ([]dto.SearchResult, error) {
	var results []dto.SearchResult

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		o := &orders[i]
		supplier := ""
		if o.Supplier != nil {
			supplier = o.Supplier.Name
		}
		amount := o.Total
		results = append(results, dto.SearchResult{
			ID:       o.ID.String(),
			Type:     "orden",
			Folio:    o.Folio,
			Supplier: supplier,
			Date:     o.Date.Format("2006-01-02"),
			Status:   o.Status,
			Amount:   &amount,
		})
	}

	movements, err := s.movementRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range movements {
		m := &movements[i]
		supplier := ""
		if m.PurchaseOrder != nil && m.PurchaseOrder.Supplier != nil {
			supplier = m.PurchaseOrder.Supplier.Name
		}
		kilos := m.Kilos
		results = append(results, dto.SearchResult{
			ID:          m.ID.String(),
			Type:        m.Type, // entrada | salida
			Folio:       m.Folio,
			Supplier:    supplier,
			Date:        m.Date.Format("2006-01-02"),
			Status:      m.Status,
			Kilos:       &kilos,
			Transporter: m.Transporter,
		})
	}

	docs, err := s.documentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		d := &docs[i]
		supplier := ""
		if d.Supplier != nil {
			supplier = d.Supplier.Name
		}
		results = append(results, dto.SearchResult{
			ID:           d.ID.String(),
			Type:         "documento",
			Folio:        d.OriginalName,
			Supplier:     supplier,
			Date:         d.CreatedAt.Format("2006-01-02"),
			Status:       "Procesado",
			DocumentType: d.DocumentType,
		})
	}

	return results, nil
}

// FilterResults applies the predicate conjunction purely in memory: substring
// on folio/supplier, exact matches on type/supplier/status/document type,
// single-day date equality. An empty filter returns the input unchanged, so
// clearing all filters restores the exact loaded count.
func FilterResults(results []dto.SearchResult, filter dto.SearchFilter) []dto.SearchResult {
	filtered := make([]dto.SearchResult, 0, len(results))
	for _, r := range results {
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(r.Folio), needle) &&
				!strings.Contains(strings.ToLower(r.Supplier), needle) {
				continue
			}
		}
		if filter.Type != "" && filter.Type != "all" && r.Type != filter.Type {
			continue
		}
		if filter.Supplier != "" && r.Supplier != filter.Supplier {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.DocType != "" && r.DocumentType != filter.DocType {
			continue
		}
		if filter.Date != "" && r.Date != filter.Date {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
