// Package treasury routes payouts. Deposited funds may be deployed into
// the yield strategy rather than held idle, so a withdrawal has to find
// its funds: local holdings first, strategy unwind as the fallback.
package treasury

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/clients/custodyclient"
	"github.com/tokenforge-io/presale-ledger/internal/clients/strategyclient"
	"github.com/tokenforge-io/presale-ledger/internal/types"
)

type Router struct {
	custody  custodyclient.CustodyInterface
	strategy strategyclient.StrategyInterface

	treasuryAccount string
	// strategyAsset is the one asset the strategy can unwind.
	strategyAsset string
}

func NewRouter(
	custody custodyclient.CustodyInterface,
	strategy strategyclient.StrategyInterface,
	treasuryAccount string,
	strategyAsset string,
) *Router {
	return &Router{
		custody:         custody,
		strategy:        strategy,
		treasuryAccount: treasuryAccount,
		strategyAsset:   strategyAsset,
	}
}

// Payout delivers amount of asset to recipient. Decision order: paying the
// treasury itself is a no-op; a sufficient local balance pays directly;
// otherwise the strategy is unwound for its one supported asset. Anything
// else is unsupported.
func (r *Router) Payout(ctx context.Context, asset types.Asset, amount sdkmath.Int, recipient string) error {
	if recipient == r.treasuryAccount {
		return nil
	}

	held, err := r.custody.BalanceOf(ctx, asset.ID, r.treasuryAccount)
	if err != nil {
		return types.NewErrorf(types.ErrExternalCallFailed, "failed to check treasury balance: %v", err)
	}

	if held.GTE(amount) {
		return r.transferOut(ctx, asset.ID, recipient, amount)
	}

	// The native asset is never deployed into the strategy; a shortfall
	// there has nowhere to be reclaimed from.
	if asset.Native || asset.ID != r.strategyAsset {
		return types.NewErrorf(types.ErrPayoutUnsupported,
			"treasury holds %s of %s, cannot source %s", held, asset.ID, amount)
	}

	shortfall := amount.Sub(held)
	log.Ctx(ctx).Info().
		Str("asset", asset.ID).
		Stringer("shortfall", shortfall).
		Msg("unwinding strategy to cover payout")

	if err := r.strategy.Unwind(ctx, asset.ID, shortfall); err != nil {
		return types.NewErrorf(types.ErrExternalCallFailed, "strategy unwind failed: %v", err)
	}

	return r.transferOut(ctx, asset.ID, recipient, amount)
}

func (r *Router) transferOut(ctx context.Context, asset, recipient string, amount sdkmath.Int) error {
	if err := r.custody.TransferOut(ctx, asset, recipient, amount); err != nil {
		return types.NewErrorf(types.ErrExternalCallFailed,
			"payout of %s %s to %s failed: %v", amount, asset, recipient, err)
	}
	return nil
}

// Deploy pushes idle treasury funds of the strategy asset into the yield
// strategy. Owner-driven; not part of the core accounting path.
func (r *Router) Deploy(ctx context.Context, amount sdkmath.Int) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deploy amount must be positive, got %s", amount)
	}
	if err := r.strategy.Deposit(ctx, r.strategyAsset, amount); err != nil {
		return types.NewErrorf(types.ErrExternalCallFailed, "strategy deposit failed: %v", err)
	}
	return nil
}
