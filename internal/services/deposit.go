package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/ledger"
	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
	"github.com/tokenforge-io/presale-ledger/internal/observability/tracing"
	"github.com/tokenforge-io/presale-ledger/internal/queue"
	"github.com/tokenforge-io/presale-ledger/internal/types"
)

// DepositResult is the post-commit state of the depositor's ledger row
// plus the entitlement this deposit accrued.
type DepositResult struct {
	Record ledger.Record
	Minted sdkmath.Int
	Price  sdkmath.Int
}

// Deposit records amount units of asset for account. payment is the value
// attached to the request: for the native asset it must equal amount (it
// IS the deposit), for every other asset it must be zero and the funds
// are pulled through the custody gateway instead.
//
// The ledger is only mutated after the funds transfer succeeds; a failed
// pull leaves no trace.
func (s *Service) Deposit(ctx context.Context, account, assetID string, amount, payment sdkmath.Int) (result *DepositResult, err error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "deposit")
	defer func() { metrics.RecordOperationOutcome("deposit", err != nil) }()

	if !s.clock.DepositOpen() {
		return nil, types.NewErrorf(types.ErrPhaseClosed,
			"enrollment closed at %s", s.cfg.Sale.EnrollmentDeadlineTime())
	}

	asset, err := s.asset(assetID)
	if err != nil {
		return nil, err
	}

	if asset.Native {
		if !payment.Equal(amount) {
			return nil, types.NewErrorf(types.ErrPaymentMismatch,
				"native deposit of %s carries payment %s", amount, payment)
		}
	} else if !payment.IsZero() {
		return nil, types.NewErrorf(types.ErrPaymentMismatch,
			"non-native deposit must not carry a payment, got %s", payment)
	}

	price, err := s.oracle.Price(ctx, asset.Symbol)
	if err != nil {
		return nil, err
	}

	stage, err := s.book.StageDeposit(account, asset.ID, amount, price, asset.Decimals)
	if err != nil {
		return nil, err
	}

	// Native funds arrived attached to the request; anything else is
	// pulled from the depositor into the treasury now. Failure here drops
	// the stage.
	if !asset.Native {
		if err := s.custody.TransferIn(ctx, asset.ID, account, amount); err != nil {
			return nil, types.NewErrorf(types.ErrExternalCallFailed,
				"failed to pull %s %s from %s: %v", amount, asset.ID, account, err)
		}
	}

	rec := stage.Commit()

	if err := s.persistRecord(ctx, account, asset.ID, rec); err != nil {
		return nil, err
	}
	if err := s.persistTotals(ctx); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("account", account).
		Str("asset", asset.ID).
		Stringer("amount", amount).
		Stringer("price", price).
		Stringer("minted", stage.Minted).
		Msg("Deposit recorded")

	s.qm.PushDepositReceived(ctx, &queue.DepositReceivedEvent{
		Account:      account,
		Asset:        asset.ID,
		Amount:       amount.String(),
		Price:        price.String(),
		TokensToMint: stage.Minted.String(),
	})

	return &DepositResult{
		Record: rec,
		Minted: stage.Minted,
		Price:  price,
	}, nil
}
