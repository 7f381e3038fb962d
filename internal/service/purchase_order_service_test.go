package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture() (*stubOrderRepo, *stubSupplierRepo, PurchaseOrderService, *model.Supplier) {
	orderRepo := newStubOrderRepo()
	supplierRepo := newStubSupplierRepo()
	supplier := supplierRepo.add(&model.Supplier{Name: "Recicladora del Norte", RFC: "RDN010101AAA", Email: "ventas@rdn.mx", Status: "active"})
	svc := NewPurchaseOrderService(orderRepo, supplierRepo, nil)
	return orderRepo, supplierRepo, svc, supplier
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateOrder_RecomputesTotals(t *testing.T) {
	_, _, svc, supplier := newOrderFixture()

	resp, err := svc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID.String(),
		Date:       "2026-03-15",
		Items: []dto.OrderItemInput{
			{Description: "PET molido", Quantity: dec("3"), UnitPrice: dec("10.333")},
			{Description: "Cartón", Quantity: dec("2"), UnitPrice: dec("5.50")},
		},
	})
	require.NoError(t, err)

	// 3 × 10.333 = 30.999 → 31.00; 2 × 5.50 = 11.00
	assert.Equal(t, "31", resp.Items[0].Total.String())
	assert.Equal(t, "11", resp.Items[1].Total.String())
	assert.Equal(t, "42", resp.Total.String())
	assert.True(t, resp.Subtotal.Equal(resp.Total))
	assert.True(t, resp.Tax.IsZero())
	assert.Equal(t, model.OrderStatusPendiente, resp.Status)
}

func TestCreateOrder_GeneratesFolioWhenBlank(t *testing.T) {
	_, _, svc, supplier := newOrderFixture()

	resp, err := svc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID.String(),
		Date:       "2026-03-15",
		Items:      []dto.OrderItemInput{{Description: "Vidrio", Quantity: dec("1"), UnitPrice: dec("2.00")}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Folio, "OC-"))
}

func TestCreateOrder_KeepsUserFolio(t *testing.T) {
	_, _, svc, supplier := newOrderFixture()

	resp, err := svc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		Folio:      "MI-FOLIO-LIBRE",
		SupplierID: supplier.ID.String(),
		Date:       "2026-03-15",
		Items:      []dto.OrderItemInput{{Description: "Vidrio", Quantity: dec("1"), UnitPrice: dec("2.00")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "MI-FOLIO-LIBRE", resp.Folio)
}

func TestCreateOrder_ValidationBlocksWrite(t *testing.T) {
	cases := []struct {
		name string
		item dto.OrderItemInput
	}{
		{"empty description", dto.OrderItemInput{Description: "", Quantity: dec("1"), UnitPrice: dec("2")}},
		{"zero quantity", dto.OrderItemInput{Description: "PET", Quantity: dec("0"), UnitPrice: dec("2")}},
		{"negative price", dto.OrderItemInput{Description: "PET", Quantity: dec("1"), UnitPrice: dec("-2")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, _, svc, supplier := newOrderFixture()

			_, err := svc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
				SupplierID: supplier.ID.String(),
				Date:       "2026-03-15",
				Items: []dto.OrderItemInput{
					{Description: "Válido", Quantity: dec("1"), UnitPrice: dec("2")},
					tc.item,
				},
			})
			require.Error(t, err)
			// Nothing persisted — not even the valid line.
			assert.Empty(t, orderRepo.orders)
		})
	}
}

func TestCreateOrder_UnknownSupplierRejected(t *testing.T) {
	orderRepo := newStubOrderRepo()
	svc := NewPurchaseOrderService(orderRepo, newStubSupplierRepo(), nil)

	_, err := svc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: "4b6c3c3e-9f6c-4f6f-8a2a-2f6d1d2e3f4a",
		Date:       "2026-03-15",
		Items:      []dto.OrderItemInput{{Description: "PET", Quantity: dec("1"), UnitPrice: dec("2")}},
	})
	require.Error(t, err)
	assert.Empty(t, orderRepo.orders)
}

func TestUpdateOrder_ReplacesItemsAndRecomputes(t *testing.T) {
	orderRepo, _, svc, supplier := newOrderFixture()

	created, err := svc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID.String(),
		Date:       "2026-03-15",
		Items:      []dto.OrderItemInput{{Description: "PET", Quantity: dec("1"), UnitPrice: dec("100")}},
	})
	require.NoError(t, err)

	stored := orderRepo.all()[0]
	updated, err := svc.Update(context.Background(), stored.ID, dto.UpdatePurchaseOrderRequest{
		Status: model.OrderStatusAprobada,
		Items: []dto.OrderItemInput{
			{Description: "Aluminio", Quantity: dec("4"), UnitPrice: dec("25.25")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusAprobada, updated.Status)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Aluminio", updated.Items[0].Description)
	assert.Equal(t, "101", updated.Total.String())
	assert.NotEqual(t, created.Total.String(), updated.Total.String())
}
