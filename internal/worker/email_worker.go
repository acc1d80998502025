package worker

// email_worker.go
// Processes plain email jobs from QueueEmail: low-stock alerts and
// purchase-order notifications with an attached PDF. Failed sends are
// retried with backoff, then parked in the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nmacchitella/fashion-inventory/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxEmailAttempts = 3

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail        string `json:"to_email"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	AttachmentPath string `json:"attachment_path,omitempty"`
}

// EmailWorker delivers email jobs from QueueEmail via SMTP.
type EmailWorker struct {
	mailer *infra.Mailer
	rdb    *redis.Client
}

// NewEmailWorker creates an EmailWorker with the provided SMTP mailer.
func NewEmailWorker(mailer *infra.Mailer, rdb *redis.Client) *EmailWorker {
	return &EmailWorker{mailer: mailer, rdb: rdb}
}

// Process sends the email, with the attachment when one is set.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return
	}

	err := withRetry(ctx, maxEmailAttempts, func(attempt int) error {
		sendErr := w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body, payload.AttachmentPath)
		if sendErr != nil {
			log.Warn().
				Err(sendErr).
				Int("attempt", attempt+1).
				Str("to", payload.ToEmail).
				Msg("email_worker: send attempt failed, retrying")
		}
		return sendErr
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email after retries")
		SendToDLQ(ctx, w.rdb, QueueEmail, "email", raw,
			fmt.Sprintf("max retries (%d) exceeded: %v", maxEmailAttempts, err), maxEmailAttempts)
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: email sent successfully")
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
