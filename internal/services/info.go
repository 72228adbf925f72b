package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/ledger"
	"github.com/tokenforge-io/presale-ledger/internal/observability/tracing"
	"github.com/tokenforge-io/presale-ledger/internal/types"
)

// AccountInfo is the read-side view of one (account, asset) position.
type AccountInfo struct {
	Phase  types.SalePhase
	Record ledger.Record
	// CurrentPrice is the oracle quote at call time, zero when the feed is
	// down. Price staleness never blocks the read path.
	CurrentPrice sdkmath.Int
	// TreasuryBalance is the treasury's local holding of the asset, before
	// any strategy unwind.
	TreasuryBalance sdkmath.Int
	IssuedBalance   sdkmath.Int

	TotalCurrentTokens sdkmath.Int
	TotalMaxTokens     sdkmath.Int
}

// GetInfo reports the account's position in asset together with the sale
// globals. Unknown assets reject; an account that never deposited gets a
// zero row.
func (s *Service) GetInfo(ctx context.Context, account, assetID string) (*AccountInfo, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = tracing.WithOperation(ctx, "get_info")

	asset, err := s.asset(assetID)
	if err != nil {
		return nil, err
	}

	info := &AccountInfo{
		Phase:  s.clock.Phase(),
		Record: s.book.Get(account, asset.ID),
	}
	info.TotalCurrentTokens, info.TotalMaxTokens = s.book.Totals()

	price, err := s.oracle.Price(ctx, asset.Symbol)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("asset", asset.ID).Msg("Price unavailable for info query")
		price = sdkmath.ZeroInt()
	}
	info.CurrentPrice = price

	held, err := s.custody.BalanceOf(ctx, asset.ID, s.cfg.Custody.TreasuryAccount)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("asset", asset.ID).Msg("Treasury balance unavailable for info query")
		held = sdkmath.ZeroInt()
	}
	info.TreasuryBalance = held

	issued, err := s.token.BalanceOf(ctx, account)
	if err != nil {
		return nil, err
	}
	info.IssuedBalance = issued

	return info, nil
}

// ListAssets returns the deposit whitelist in stable order.
func (s *Service) ListAssets(ctx context.Context) []types.Asset {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	out := make([]types.Asset, 0, len(s.assets))
	for _, id := range s.assetIDs() {
		out = append(out, s.assets[id])
	}
	return out
}
