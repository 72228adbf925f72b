package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
	"github.com/tokenforge-io/presale-ledger/internal/types"
	"github.com/tokenforge-io/presale-ledger/internal/utils/poller"
)

var allPhases = []string{
	types.PhaseEnrolling.String(),
	types.PhaseAwaitingRelease.String(),
	types.PhaseUnlocked.String(),
}

// StartStatusPoller starts the gauge refresh service.
func (s *Service) StartStatusPoller(ctx context.Context) {
	statusPoller := poller.NewPoller(
		s.cfg.Poller.StatusPollingInterval,
		s.refreshStatusGauges,
	)
	go statusPoller.Start(ctx)
}

func (s *Service) refreshStatusGauges(ctx context.Context) error {
	metrics.SetSalePhase(s.clock.Phase().String(), allPhases)

	current, _ := s.book.Totals()
	// Gauge in whole tokens; the base-unit value overflows float64.
	whole := current.Quo(sdkmath.NewIntWithDecimal(1, 18))
	metrics.SetPendingEntitlement(float64(whole.Int64()))

	return nil
}

// StartPriceWarmPoller starts the oracle warm-up service: it quotes every
// whitelisted asset on an interval so feed outages show up in the client
// latency metrics before a depositor hits them.
func (s *Service) StartPriceWarmPoller(ctx context.Context) {
	pricePoller := poller.NewPoller(
		s.cfg.Poller.PricePollingInterval,
		s.warmPrices,
	)
	go pricePoller.Start(ctx)
}

func (s *Service) warmPrices(ctx context.Context) error {
	s.opMu.Lock()
	assets := make([]types.Asset, 0, len(s.assets))
	for _, id := range s.assetIDs() {
		assets = append(assets, s.assets[id])
	}
	s.opMu.Unlock()

	p := pool.New().WithContext(ctx)
	for _, asset := range assets {
		p.Go(func(ctx context.Context) error {
			price, err := s.oracle.Price(ctx, asset.Symbol)
			if err != nil {
				log.Ctx(ctx).Warn().
					Err(err).
					Str("asset", asset.ID).
					Msg("Price feed quote failed")
				return nil
			}
			log.Ctx(ctx).Debug().
				Str("asset", asset.ID).
				Stringer("price", price).
				Msg("Price feed quote")
			return nil
		})
	}
	return p.Wait()
}
