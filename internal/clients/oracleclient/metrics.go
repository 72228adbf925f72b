package oracleclient

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
)

type oracleClientWithMetrics struct {
	oracle OracleInterface
}

func NewClientWithMetrics(oracle OracleInterface) *oracleClientWithMetrics {
	return &oracleClientWithMetrics{oracle: oracle}
}

func (o *oracleClientWithMetrics) Price(ctx context.Context, symbol string) (sdkmath.Int, error) {
	return runOracleMethodWithMetrics("Price", func() (sdkmath.Int, error) {
		return o.oracle.Price(ctx, symbol)
	})
}

func runOracleMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordOracleLatency(duration, method, err != nil)
	return v, err
}
