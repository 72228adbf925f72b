package strategyclient

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

//go:generate mockery --name=StrategyInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_strategy_client.go
type StrategyInterface interface {
	// Deposit deploys treasury funds into the strategy.
	Deposit(ctx context.Context, asset string, amount sdkmath.Int) error
	// Unwind releases amount of asset back to the treasury.
	Unwind(ctx context.Context, asset string, amount sdkmath.Int) error
	// ClaimProfit forwards the strategy's profit-claim entry point as-is.
	ClaimProfit(ctx context.Context) error
	// RawCall forwards an owner-supplied payload to the strategy verbatim.
	RawCall(ctx context.Context, payload []byte, value sdkmath.Int) ([]byte, error)
}
