package strategyclient

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
)

type strategyClientWithMetrics struct {
	strategy StrategyInterface
}

func NewClientWithMetrics(strategy StrategyInterface) *strategyClientWithMetrics {
	return &strategyClientWithMetrics{strategy: strategy}
}

func (s *strategyClientWithMetrics) Deposit(ctx context.Context, asset string, amount sdkmath.Int) error {
	type zero struct{}
	_, err := runStrategyMethodWithMetrics("Deposit", func() (zero, error) {
		return zero{}, s.strategy.Deposit(ctx, asset, amount)
	})
	return err
}

func (s *strategyClientWithMetrics) Unwind(ctx context.Context, asset string, amount sdkmath.Int) error {
	type zero struct{}
	_, err := runStrategyMethodWithMetrics("Unwind", func() (zero, error) {
		return zero{}, s.strategy.Unwind(ctx, asset, amount)
	})
	return err
}

func (s *strategyClientWithMetrics) ClaimProfit(ctx context.Context) error {
	type zero struct{}
	_, err := runStrategyMethodWithMetrics("ClaimProfit", func() (zero, error) {
		return zero{}, s.strategy.ClaimProfit(ctx)
	})
	return err
}

func (s *strategyClientWithMetrics) RawCall(ctx context.Context, payload []byte, value sdkmath.Int) ([]byte, error) {
	return runStrategyMethodWithMetrics("RawCall", func() ([]byte, error) {
		return s.strategy.RawCall(ctx, payload, value)
	})
}

func runStrategyMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordStrategyLatency(duration, method, err != nil)
	return v, err
}
