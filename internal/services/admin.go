package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/db"
	"github.com/tokenforge-io/presale-ledger/internal/db/model"
	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
	"github.com/tokenforge-io/presale-ledger/internal/observability/tracing"
	"github.com/tokenforge-io/presale-ledger/internal/queue"
	"github.com/tokenforge-io/presale-ledger/internal/types"
)

func (s *Service) requireOwner(caller string) error {
	if caller != s.cfg.Sale.OwnerAccount {
		return types.NewErrorf(types.ErrPermissionDenied, "%s is not the sale owner", caller)
	}
	return nil
}

// EnableAsset whitelists an asset for deposits. Decimals are read from
// the custody gateway rather than trusted from the caller. Enabling an
// already enabled asset overwrites its registry entry, which is harmless
// because decimals and symbol are immutable upstream.
func (s *Service) EnableAsset(ctx context.Context, caller, assetID, symbol string, native bool) (asset types.Asset, err error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "enable_asset")
	defer func() { metrics.RecordOperationOutcome("enable_asset", err != nil) }()

	if err := s.requireOwner(caller); err != nil {
		return types.Asset{}, err
	}

	decimals, err := s.custody.Decimals(ctx, assetID)
	if err != nil {
		return types.Asset{}, types.NewErrorf(types.ErrExternalCallFailed,
			"failed to read decimals of %s: %v", assetID, err)
	}

	asset = types.Asset{
		ID:       assetID,
		Symbol:   symbol,
		Decimals: decimals,
		Native:   native,
	}

	doc := &model.AssetDocument{
		Id:       asset.ID,
		Symbol:   asset.Symbol,
		Decimals: asset.Decimals,
		Native:   asset.Native,
	}
	if err := s.db.SaveAsset(ctx, doc); err != nil {
		// Re-enabling a known asset is harmless; decimals and symbol are
		// immutable upstream.
		if !db.IsDuplicateKeyError(err) {
			return types.Asset{}, err
		}
	}
	s.assets[asset.ID] = asset

	log.Ctx(ctx).Info().
		Str("asset", asset.ID).
		Str("symbol", asset.Symbol).
		Uint8("decimals", asset.Decimals).
		Bool("native", asset.Native).
		Msg("Asset enabled for deposits")

	return asset, nil
}

// ApproveStrategySpend grants the yield strategy unlimited spend on the
// asset, skipping the call if an allowance already exists.
func (s *Service) ApproveStrategySpend(ctx context.Context, caller, assetID string) (err error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "approve_strategy_spend")
	defer func() { metrics.RecordOperationOutcome("approve_strategy_spend", err != nil) }()

	if err := s.requireOwner(caller); err != nil {
		return err
	}

	asset, err := s.asset(assetID)
	if err != nil {
		return err
	}
	if asset.Native {
		return types.NewErrorf(types.ErrPayoutUnsupported, "the native asset needs no spend approval")
	}

	allowance, err := s.custody.Allowance(ctx, asset.ID, s.cfg.Custody.TreasuryAccount, s.cfg.Strategy.Address)
	if err != nil {
		return types.NewErrorf(types.ErrExternalCallFailed, "failed to read allowance: %v", err)
	}

	if allowance.IsZero() {
		if err := s.custody.Approve(ctx, asset.ID, s.cfg.Strategy.Address); err != nil {
			return types.NewErrorf(types.ErrExternalCallFailed, "failed to approve strategy spend: %v", err)
		}
	}

	if err := s.db.MarkAssetStrategyApproved(ctx, asset.ID); err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Str("asset", asset.ID).
		Str("spender", s.cfg.Strategy.Address).
		Bool("already_allowed", !allowance.IsZero()).
		Msg("Strategy spend approved")

	return nil
}

// DeployToStrategy pushes idle treasury funds of the strategy asset into
// the yield strategy.
func (s *Service) DeployToStrategy(ctx context.Context, caller string, amount sdkmath.Int) (err error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "deploy_to_strategy")
	defer func() { metrics.RecordOperationOutcome("deploy_to_strategy", err != nil) }()

	if err := s.requireOwner(caller); err != nil {
		return err
	}

	if err := s.router.Deploy(ctx, amount); err != nil {
		return err
	}

	log.Ctx(ctx).Info().
		Str("asset", s.cfg.Strategy.Asset).
		Stringer("amount", amount).
		Msg("Treasury funds deployed to strategy")

	s.qm.PushStrategyFundsDeployed(ctx, &queue.StrategyFundsDeployedEvent{
		Asset:  s.cfg.Strategy.Asset,
		Amount: amount.String(),
	})

	return nil
}

// ClaimStrategyProfit sweeps accrued yield from the strategy back to the
// treasury.
func (s *Service) ClaimStrategyProfit(ctx context.Context, caller string) (err error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "claim_strategy_profit")
	defer func() { metrics.RecordOperationOutcome("claim_strategy_profit", err != nil) }()

	if err := s.requireOwner(caller); err != nil {
		return err
	}

	if err := s.strategy.ClaimProfit(ctx); err != nil {
		return types.NewErrorf(types.ErrExternalCallFailed, "failed to claim strategy profit: %v", err)
	}

	log.Ctx(ctx).Info().Msg("Strategy profit claimed")
	return nil
}

// RawCall forwards an opaque payload to one of the two configured
// collaborators. Arbitrary targets are rejected; the escape hatch exists
// for strategy maintenance, not as a general proxy.
func (s *Service) RawCall(ctx context.Context, caller, target string, payload []byte, value sdkmath.Int) (out []byte, err error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "raw_call")
	defer func() { metrics.RecordOperationOutcome("raw_call", err != nil) }()

	if err := s.requireOwner(caller); err != nil {
		return nil, err
	}

	switch target {
	case s.cfg.Strategy.Address:
		out, err = s.strategy.RawCall(ctx, payload, value)
	case s.cfg.Custody.GatewayAddress:
		out, err = s.custody.RawCall(ctx, target, payload, value)
	default:
		return nil, types.NewErrorf(types.ErrPermissionDenied,
			"raw calls are restricted to the strategy and custody gateway, got %s", target)
	}
	if err != nil {
		return nil, types.NewErrorf(types.ErrExternalCallFailed, "raw call to %s failed: %v", target, err)
	}

	log.Ctx(ctx).Info().
		Str("target", target).
		Int("payload_bytes", len(payload)).
		Stringer("value", value).
		Msg("Raw call forwarded")

	return out, nil
}
