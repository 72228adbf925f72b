package custodyclient

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

//go:generate mockery --name=CustodyInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_custody_client.go
type CustodyInterface interface {
	// Decimals returns the asset's native decimal precision.
	Decimals(ctx context.Context, asset string) (uint8, error)
	// BalanceOf returns account's balance of asset at the gateway.
	BalanceOf(ctx context.Context, asset, account string) (sdkmath.Int, error)
	// TransferIn pulls amount of asset from the depositor into the
	// treasury. Fails when the depositor's balance or allowance is short.
	TransferIn(ctx context.Context, asset, from string, amount sdkmath.Int) error
	// TransferOut pays amount of asset from the treasury to the recipient.
	TransferOut(ctx context.Context, asset, to string, amount sdkmath.Int) error
	// Approve grants spender unlimited spend of the treasury's asset.
	Approve(ctx context.Context, asset, spender string) error
	// Allowance returns the spend currently granted to spender.
	Allowance(ctx context.Context, asset, owner, spender string) (sdkmath.Int, error)
	// RawCall forwards an owner-supplied payload to target verbatim.
	RawCall(ctx context.Context, target string, payload []byte, value sdkmath.Int) ([]byte, error)
}
