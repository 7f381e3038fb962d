package worker

// order_worker.go
// Processes order-approved jobs from QueueOrderApproved.
// Generates the purchase order PDF and mails it to the supplier.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ser180/4R/internal/infra"
	"github.com/ser180/4R/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OrderApprovedWorker notifies the supplier when an order is approved.
type OrderApprovedWorker struct {
	orderRepo      repository.PurchaseOrderRepository
	mailer         *infra.Mailer
	pdfStoragePath string
}

func NewOrderApprovedWorker(
	orderRepo repository.PurchaseOrderRepository,
	mailer *infra.Mailer,
	pdfStoragePath string,
) *OrderApprovedWorker {
	return &OrderApprovedWorker{
		orderRepo:      orderRepo,
		mailer:         mailer,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single order-approved job:
//  1. Parse OrderApprovedPayload from the job envelope
//  2. Fetch the order (with supplier and items) from DB
//  3. Generate the order PDF
//  4. Mail it to the supplier, if the supplier has an email
func (w *OrderApprovedWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload OrderApprovedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("order_worker: invalid payload")
		return
	}

	orderID, err := uuid.Parse(payload.OrderID)
	if err != nil {
		log.Error().Str("order_id", payload.OrderID).Msg("order_worker: invalid order_id")
		return
	}

	order, err := w.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Str("order_id", payload.OrderID).Msg("order_worker: order not found")
		return
	}

	if order.Supplier == nil || order.Supplier.Email == "" {
		log.Warn().Str("folio", order.Folio).Msg("order_worker: supplier has no email — skipping")
		return
	}

	pdfPath, err := infra.GenerateOrderPDF(order, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("folio", order.Folio).Msg("order_worker: PDF generation failed")
		return
	}

	subject := fmt.Sprintf("Orden de compra aprobada — %s", order.Folio)
	body := fmt.Sprintf(
		"Estimado proveedor %s:\n\nLa orden de compra %s ha sido aprobada. Se adjunta el documento correspondiente.\n\nRecicladora 4R",
		order.Supplier.Name, order.Folio,
	)
	if err := w.mailer.SendOrderNotification(order.Supplier.Email, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("to", order.Supplier.Email).Msg("order_worker: failed to send email")
		return
	}
	log.Info().Str("folio", order.Folio).Str("to", order.Supplier.Email).Msg("order_worker: supplier notified")
}
