package worker

// stock_alert_cron.go
// Background goroutine that periodically scans material inventory for rows
// under the low-stock threshold and emails a digest to the configured
// recipient. One email per tick at most; a quiet warehouse sends nothing.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nmacchitella/fashion-inventory/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var lowStockThreshold = decimal.NewFromInt(10)

// StockAlertConfig holds all dependencies for the low-stock scan goroutine.
type StockAlertConfig struct {
	InventoryRepo repository.InventoryRepository
	Dispatcher    *Dispatcher
	Recipient     string
	Interval      time.Duration
}

// StartStockAlertCron launches a background goroutine that ticks on the
// configured interval and enqueues a digest email when any material
// inventory sits below the threshold. It respects the context for
// graceful shutdown.
func StartStockAlertCron(ctx context.Context, cfg StockAlertConfig) {
	if cfg.Interval <= 0 || cfg.Recipient == "" {
		log.Info().Msg("stock_alert: disabled")
		return
	}
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("stock_alert: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("stock_alert: shutting down")
				return
			case <-ticker.C:
				scanLowStock(ctx, cfg)
			}
		}
	}()
}

func scanLowStock(ctx context.Context, cfg StockAlertConfig) {
	rows, err := cfg.InventoryRepo.FindMaterialStockBelow(ctx, lowStockThreshold)
	if err != nil {
		log.Error().Err(err).Msg("stock_alert: failed to query low stock")
		return
	}
	if len(rows) == 0 {
		return
	}

	log.Info().Int("count", len(rows)).Msg("stock_alert: low stock detected")

	var b strings.Builder
	b.WriteString("The following materials are running low:\n\n")
	for _, row := range rows {
		name := "unknown material"
		if row.Material != nil {
			name = row.Material.Type + " " + row.Material.Color
			if row.Material.Brand != "" {
				name += " (" + row.Material.Brand + ")"
			}
		}
		fmt.Fprintf(&b, "  - %s: %s %s at %s\n",
			name, row.Quantity.StringFixed(2), string(row.Unit), row.Location)
	}

	job := EmailJobPayload{
		ToEmail: cfg.Recipient,
		Subject: fmt.Sprintf("Low stock alert: %d materials below threshold", len(rows)),
		Body:    b.String(),
	}
	if err := cfg.Dispatcher.EnqueueEmail(ctx, job); err != nil {
		log.Error().Err(err).Msg("stock_alert: failed to enqueue digest email")
	}
}
