package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/ledger"
	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
	"github.com/tokenforge-io/presale-ledger/internal/observability/tracing"
	"github.com/tokenforge-io/presale-ledger/internal/queue"
)

// WithdrawalResult is the post-commit state of the row plus the issued
// balance that was burnt to pay for the exit.
type WithdrawalResult struct {
	Record      ledger.Record
	TokensBurnt sdkmath.Int
}

// Withdraw returns amount units of asset to account. Before lock expiry
// the exit burns issued balance equal to the amount revalued at the row's
// weighted average entry price; after expiry the burn is zero. The payout
// is routed through the treasury, unwinding the yield strategy when local
// holdings fall short.
//
// Order matters: burn first, then payout, then ledger commit. A failed
// payout after a successful burn aborts the operation with the burn
// already applied; the deposited balance stays intact and the withdrawal
// can be retried.
func (s *Service) Withdraw(ctx context.Context, account, assetID string, amount sdkmath.Int) (result *WithdrawalResult, err error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "withdraw")
	defer func() { metrics.RecordOperationOutcome("withdraw", err != nil) }()

	asset, err := s.asset(assetID)
	if err != nil {
		return nil, err
	}

	stage, err := s.book.StageWithdrawal(account, asset.ID, amount, asset.Decimals, s.clock.BurnRequired())
	if err != nil {
		return nil, err
	}

	if stage.TokensToBurn.IsPositive() {
		if err := s.token.Burn(ctx, account, stage.TokensToBurn); err != nil {
			return nil, err
		}
	}

	if err := s.router.Payout(ctx, asset, amount, account); err != nil {
		return nil, err
	}

	rec := stage.Commit()

	if err := s.persistRecord(ctx, account, asset.ID, rec); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("account", account).
		Str("asset", asset.ID).
		Stringer("amount", amount).
		Stringer("tokens_burnt", stage.TokensToBurn).
		Msg("Withdrawal processed")

	s.qm.PushWithdrawalProcessed(ctx, &queue.WithdrawalProcessedEvent{
		Account:     account,
		Asset:       asset.ID,
		Amount:      amount.String(),
		TokensBurnt: stage.TokensToBurn.String(),
	})

	return &WithdrawalResult{
		Record:      rec,
		TokensBurnt: stage.TokensToBurn,
	}, nil
}
