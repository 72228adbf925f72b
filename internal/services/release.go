package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
	"github.com/tokenforge-io/presale-ledger/internal/observability/tracing"
	"github.com/tokenforge-io/presale-ledger/internal/queue"
	"github.com/tokenforge-io/presale-ledger/internal/types"
)

// ReleaseResult reports what a release finalized.
type ReleaseResult struct {
	Account string
	// Assets whose pending entitlement was finalized. Empty when the
	// account had nothing pending, which is not an error.
	Assets []string
	Minted sdkmath.Int
}

// Release finalizes account's pending entitlements across the requested
// assets and mints the pro-rata scaled aggregate. An empty asset list
// means the whole whitelist. Anyone may release for any account; account
// defaults to the caller when empty.
//
// Releasing an account with nothing pending is a no-op, so the operation
// is idempotent.
func (s *Service) Release(ctx context.Context, caller, account string, assets []string) (result *ReleaseResult, err error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "release")
	defer func() { metrics.RecordOperationOutcome("release", err != nil) }()

	if !s.clock.ReleaseOpen() {
		return nil, types.NewErrorf(types.ErrPhaseNotReached,
			"release opens at enrollment deadline %s", s.cfg.Sale.EnrollmentDeadlineTime())
	}

	if account == "" {
		account = caller
	}

	if len(assets) == 0 {
		assets = s.assetIDs()
	} else {
		for _, id := range assets {
			if _, err := s.asset(id); err != nil {
				return nil, err
			}
		}
	}

	stage := s.book.StageRelease(account, assets)

	if stage.Minted.IsPositive() {
		if err := s.token.Mint(ctx, account, stage.Minted); err != nil {
			return nil, types.NewErrorf(types.ErrExternalCallFailed,
				"failed to mint %s to %s: %v", stage.Minted, account, err)
		}
	}

	updated := stage.Commit()
	for asset, rec := range updated {
		if err := s.persistRecord(ctx, account, asset, rec); err != nil {
			return nil, err
		}
	}

	log.Ctx(ctx).Info().
		Str("caller", caller).
		Str("account", account).
		Strs("assets", stage.Assets()).
		Stringer("minted", stage.Minted).
		Msg("Entitlements released")

	if len(updated) > 0 {
		s.qm.PushEntitlementReleased(ctx, &queue.EntitlementReleasedEvent{
			Account: account,
			Minted:  stage.Minted.String(),
		})
	}

	return &ReleaseResult{
		Account: account,
		Assets:  stage.Assets(),
		Minted:  stage.Minted,
	}, nil
}
