package worker

// order_email_worker.go
// Processes purchase-order notification jobs from QueueOrderEmail:
// renders the order as a PDF, then hands delivery off to QueueEmail.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nmacchitella/fashion-inventory/internal/infra"
	"github.com/nmacchitella/fashion-inventory/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// OrderEmailPayload is the job envelope sent to QueueOrderEmail.
type OrderEmailPayload struct {
	OrderID string `json:"order_id"`
	ToEmail string `json:"to_email"`
}

// OrderEmailWorker turns a confirmed material order into a purchase-order
// PDF and enqueues the outgoing email for the supplier.
type OrderEmailWorker struct {
	orderRepo      repository.OrderRepository
	dispatcher     *Dispatcher
	rdb            *redis.Client
	pdfStoragePath string
}

func NewOrderEmailWorker(
	orderRepo repository.OrderRepository,
	dispatcher *Dispatcher,
	rdb *redis.Client,
	pdfStoragePath string,
) *OrderEmailWorker {
	return &OrderEmailWorker{
		orderRepo:      orderRepo,
		dispatcher:     dispatcher,
		rdb:            rdb,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single order notification job:
//  1. Parse OrderEmailPayload from the job envelope
//  2. Fetch the order with its items from the DB
//  3. Render the purchase-order PDF
//  4. Enqueue the email job with the PDF attached
func (w *OrderEmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload OrderEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("order_email_worker: invalid payload")
		return
	}

	orderID, err := uuid.Parse(payload.OrderID)
	if err != nil {
		log.Error().Str("order_id", payload.OrderID).Msg("order_email_worker: invalid order_id")
		return
	}

	order, err := w.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Str("order_id", payload.OrderID).Msg("order_email_worker: order not found")
		SendToDLQ(ctx, w.rdb, QueueOrderEmail, "order_email", raw, "order not found", 1)
		return
	}

	pdfPath, err := infra.GeneratePurchaseOrderPDF(order, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("order", order.OrderNumber).Msg("order_email_worker: PDF generation failed")
		SendToDLQ(ctx, w.rdb, QueueOrderEmail, "order_email", raw, fmt.Sprintf("pdf generation: %v", err), 1)
		return
	}
	log.Info().Str("pdf", pdfPath).Str("order", order.OrderNumber).Msg("order_email_worker: PDF generated")

	emailJob := EmailJobPayload{
		ToEmail: payload.ToEmail,
		Subject: fmt.Sprintf("Purchase Order %s", order.OrderNumber),
		Body: fmt.Sprintf(
			"Please find attached purchase order %s.\nExpected delivery: %s\nTotal: %s %s",
			order.OrderNumber,
			order.ExpectedDelivery.Format("02 Jan 2006"),
			order.TotalPrice.StringFixed(2),
			order.Currency,
		),
		AttachmentPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", payload.ToEmail).Msg("order_email_worker: failed to enqueue email")
		return
	}
	log.Info().Str("email", payload.ToEmail).Str("order", order.OrderNumber).Msg("order_email_worker: email job enqueued")
}
