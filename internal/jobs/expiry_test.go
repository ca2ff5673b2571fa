package jobs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/snowpeak/skistation/internal/logger"
	"github.com/snowpeak/skistation/internal/models"
	"github.com/snowpeak/skistation/internal/services"
)

type stubSweeper struct {
	expired []services.Expired
	err     error
	mrr     float64
	calls   atomic.Int32
}

func (s *stubSweeper) RetrieveSubscriptions(_ context.Context, _ time.Time) ([]services.Expired, error) {
	s.calls.Add(1)
	return s.expired, s.err
}

func (s *stubSweeper) MonthlyRecurringRevenue(_ context.Context) (float64, error) {
	return s.mrr, nil
}

// TestRunSweep_LogsEachExpired verifies one record per expired
// subscription, with the owner's name only when a skier holds it.
func TestRunSweep_LogsEachExpired(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	sk := models.NewSkier("Eve", "Neige", models.NewDate(1992, 4, 4))
	sk.ID = 7
	stub := &stubSweeper{
		expired: []services.Expired{
			{Subscription: models.Subscription{ID: 1, TypeSub: models.SubscriptionMonthly, EndDate: models.NewDate(2024, 1, 1)}},
			{Subscription: models.Subscription{ID: 2, TypeSub: models.SubscriptionAnnual, EndDate: models.NewDate(2024, 2, 1)}, Skier: &sk},
		},
		mrr: 410,
	}

	n := runSweep(context.Background(), stub, log, time.Now())
	if n != 2 {
		t.Errorf("expired: want 2, got %d", n)
	}
	out := buf.String()
	if got := strings.Count(out, `"msg":"subscription expired"`); got != 2 {
		t.Errorf("expired records: want 2, got %d\n%s", got, out)
	}
	if !strings.Contains(out, `"skier_name":"Eve Neige"`) {
		t.Errorf("owner name missing:\n%s", out)
	}
	if !strings.Contains(out, `"monthly":410`) {
		t.Errorf("revenue line missing:\n%s", out)
	}
}

func TestRunSweep_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")
	stub := &stubSweeper{err: errors.New("db locked")}

	if n := runSweep(context.Background(), stub, log, time.Now()); n != 0 {
		t.Errorf("want 0 on error, got %d", n)
	}
	if !strings.Contains(buf.String(), "expiry sweep failed") {
		t.Errorf("error not logged: %s", buf.String())
	}
}

// TestStartExpiryLoop_StopsOnCancel verifies the loop ticks and exits
// once the context is cancelled.
func TestStartExpiryLoop_StopsOnCancel(t *testing.T) {
	stub := &stubSweeper{}
	ctx, cancel := context.WithCancel(context.Background())
	StartExpiryLoop(ctx, stub, logger.Discard(), 5*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for stub.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if stub.calls.Load() < 2 {
		t.Fatalf("loop did not tick, calls=%d", stub.calls.Load())
	}

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := stub.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if stub.calls.Load() != after {
		t.Errorf("loop kept running after cancel: %d -> %d", after, stub.calls.Load())
	}
}
