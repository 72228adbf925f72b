package custodyclient

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
)

type custodyClientWithMetrics struct {
	custody CustodyInterface
}

func NewClientWithMetrics(custody CustodyInterface) *custodyClientWithMetrics {
	return &custodyClientWithMetrics{custody: custody}
}

func (c *custodyClientWithMetrics) Decimals(ctx context.Context, asset string) (uint8, error) {
	return runCustodyMethodWithMetrics("Decimals", func() (uint8, error) {
		return c.custody.Decimals(ctx, asset)
	})
}

func (c *custodyClientWithMetrics) BalanceOf(ctx context.Context, asset, account string) (sdkmath.Int, error) {
	return runCustodyMethodWithMetrics("BalanceOf", func() (sdkmath.Int, error) {
		return c.custody.BalanceOf(ctx, asset, account)
	})
}

func (c *custodyClientWithMetrics) TransferIn(ctx context.Context, asset, from string, amount sdkmath.Int) error {
	type zero struct{}
	_, err := runCustodyMethodWithMetrics("TransferIn", func() (zero, error) {
		return zero{}, c.custody.TransferIn(ctx, asset, from, amount)
	})
	return err
}

func (c *custodyClientWithMetrics) TransferOut(ctx context.Context, asset, to string, amount sdkmath.Int) error {
	type zero struct{}
	_, err := runCustodyMethodWithMetrics("TransferOut", func() (zero, error) {
		return zero{}, c.custody.TransferOut(ctx, asset, to, amount)
	})
	return err
}

func (c *custodyClientWithMetrics) Approve(ctx context.Context, asset, spender string) error {
	type zero struct{}
	_, err := runCustodyMethodWithMetrics("Approve", func() (zero, error) {
		return zero{}, c.custody.Approve(ctx, asset, spender)
	})
	return err
}

func (c *custodyClientWithMetrics) Allowance(ctx context.Context, asset, owner, spender string) (sdkmath.Int, error) {
	return runCustodyMethodWithMetrics("Allowance", func() (sdkmath.Int, error) {
		return c.custody.Allowance(ctx, asset, owner, spender)
	})
}

func (c *custodyClientWithMetrics) RawCall(ctx context.Context, target string, payload []byte, value sdkmath.Int) ([]byte, error) {
	return runCustodyMethodWithMetrics("RawCall", func() ([]byte, error) {
		return c.custody.RawCall(ctx, target, payload, value)
	})
}

func runCustodyMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordCustodyLatency(duration, method, err != nil)
	return v, err
}
