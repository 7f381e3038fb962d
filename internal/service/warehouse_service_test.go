package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWarehouseFixture() (*stubMovementRepo, *stubOrderRepo, WarehouseService) {
	movementRepo := newStubMovementRepo()
	orderRepo := newStubOrderRepo()
	svc := NewWarehouseService(movementRepo, orderRepo)
	return movementRepo, orderRepo, svc
}

func validMovementRequest() dto.SaveMovementRequest {
	return dto.SaveMovementRequest{
		Type:         model.MovementEntrada,
		Date:         "2026-03-15",
		Kilos:        dec("1250.50"),
		Transporter:  "Transportes López",
		AuthorizedBy: "J. Ramírez",
		ReceivedBy:   "M. Ortega",
	}
}

func TestCreateMovement_GeneratesFolioAndStatus(t *testing.T) {
	_, _, svc := newWarehouseFixture()

	resp, err := svc.Create(context.Background(), validMovementRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Folio, "ALM-"))
	assert.Equal(t, "Autorizado", resp.Status)
	assert.Equal(t, model.MovementEntrada, resp.Type)
}

func TestCreateMovement_NegativeKilosRejected(t *testing.T) {
	movementRepo, _, svc := newWarehouseFixture()

	req := validMovementRequest()
	req.Kilos = dec("-5")
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, movementRepo.movements)
}

func TestCreateMovement_ZeroKilosAllowed(t *testing.T) {
	_, _, svc := newWarehouseFixture()

	req := validMovementRequest()
	req.Kilos = dec("0")
	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateMovement_UnknownOrderReferenceRejected(t *testing.T) {
	movementRepo, _, svc := newWarehouseFixture()

	missing := uuid.NewString()
	req := validMovementRequest()
	req.PurchaseOrderID = &missing
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, movementRepo.movements)
}

func TestCreateMovement_ValidOrderReferenceAccepted(t *testing.T) {
	movementRepo, orderRepo, svc := newWarehouseFixture()

	order := &model.PurchaseOrder{Folio: "OC-2026-000001"}
	require.NoError(t, orderRepo.Create(context.Background(), nil, order))

	orderID := order.ID.String()
	req := validMovementRequest()
	req.PurchaseOrderID = &orderID
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, movementRepo.movements, 1)
}

func TestUpdateMovement_KeepsFolioWhenBlank(t *testing.T) {
	movementRepo, _, svc := newWarehouseFixture()

	created, err := svc.Create(context.Background(), validMovementRequest())
	require.NoError(t, err)

	var id uuid.UUID
	for k := range movementRepo.movements {
		id = k
	}

	req := validMovementRequest()
	req.Kilos = dec("900")
	updated, err := svc.Update(context.Background(), id, req)
	require.NoError(t, err)

	assert.Equal(t, created.Folio, updated.Folio)
	assert.Equal(t, "900", updated.Kilos.String())
}
