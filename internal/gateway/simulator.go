package gateway

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/edvin/saasadmin/internal/platform"
)

// Default simulator tuning: production-like latencies and a 90% approval
// rate.
const (
	DefaultCreateLatency = 500 * time.Millisecond
	DefaultChargeLatency = 2 * time.Second
	DefaultSuccessRate   = 0.9
)

// Simulator is a Gateway that stands in for a real processor. Latencies are
// configurable (zero in tests) and the charge outcome is a uniform draw
// against SuccessRate.
type Simulator struct {
	CreateLatency time.Duration
	ChargeLatency time.Duration
	SuccessRate   float64
	// Rand returns a uniform draw in [0, 1). Tests inject a fixed or seeded
	// source to pin the outcome.
	Rand func() float64
}

func NewSimulator(createLatency, chargeLatency time.Duration, successRate float64) *Simulator {
	return &Simulator{
		CreateLatency: createLatency,
		ChargeLatency: chargeLatency,
		SuccessRate:   successRate,
	}
}

func (s *Simulator) CreateOrder(ctx context.Context, orderID string, amount int64) error {
	return sleep(ctx, s.CreateLatency)
}

func (s *Simulator) Charge(ctx context.Context, orderID, method string) (ChargeResult, error) {
	if err := sleep(ctx, s.ChargeLatency); err != nil {
		return ChargeResult{}, err
	}

	res := ChargeResult{Reference: platform.NewID()}

	// Approved iff the draw clears the decline band: with the default 0.9
	// success rate this is draw > 0.1.
	if s.draw() > 1-s.SuccessRate {
		res.Approved = true
		res.TransactionID = fmt.Sprintf("TXN-%d", time.Now().UnixMilli())
	}
	return res, nil
}

func (s *Simulator) draw() float64 {
	if s.Rand != nil {
		return s.Rand()
	}
	return rand.Float64()
}

// sleep waits out the simulated latency but respects caller cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
