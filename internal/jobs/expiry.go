package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/snowpeak/skistation/internal/services"
)

// Sweeper is the part of the subscription service the expiry loop needs.
type Sweeper interface {
	RetrieveSubscriptions(ctx context.Context, now time.Time) ([]services.Expired, error)
	MonthlyRecurringRevenue(ctx context.Context) (float64, error)
}

// StartExpiryLoop runs the expiry sweep every interval until ctx is done.
func StartExpiryLoop(ctx context.Context, svc Sweeper, log *slog.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info("expiry loop stopped")
				return
			case now := <-ticker.C:
				runSweep(ctx, svc, log, now)
			}
		}
	}()
}

// runSweep logs one record per expired subscription and the current
// recurring revenue. It returns the number of expired subscriptions.
func runSweep(ctx context.Context, svc Sweeper, log *slog.Logger, now time.Time) int {
	expired, err := svc.RetrieveSubscriptions(ctx, now)
	if err != nil {
		log.Error("expiry sweep failed", "error", err)
		return 0
	}
	for _, e := range expired {
		attrs := []any{
			"subscription", e.Subscription.ID,
			"type", e.Subscription.TypeSub,
			"end_date", e.Subscription.EndDate.String(),
		}
		if e.Skier != nil {
			attrs = append(attrs,
				"skier", e.Skier.ID,
				"skier_name", e.Skier.FirstName+" "+e.Skier.LastName,
			)
		}
		log.Info("subscription expired", attrs...)
	}

	mrr, err := svc.MonthlyRecurringRevenue(ctx)
	if err != nil {
		log.Error("recurring revenue failed", "error", err)
		return len(expired)
	}
	log.Info("recurring revenue", "monthly", mrr, "expired", len(expired))
	return len(expired)
}
