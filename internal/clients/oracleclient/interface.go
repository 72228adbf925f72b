package oracleclient

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

//go:generate mockery --name=OracleInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_oracle_client.go
type OracleInterface interface {
	// Price returns the current price for symbol as an 18-digit
	// fixed-point integer. Unavailable or non-positive quotes fail with
	// OraclePriceUnavailable.
	Price(ctx context.Context, symbol string) (sdkmath.Int, error)
}
