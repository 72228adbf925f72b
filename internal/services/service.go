package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/consumer"
	"github.com/tokenforge-io/presale-ledger/internal/clients/custodyclient"
	"github.com/tokenforge-io/presale-ledger/internal/clients/oracleclient"
	"github.com/tokenforge-io/presale-ledger/internal/clients/strategyclient"
	"github.com/tokenforge-io/presale-ledger/internal/config"
	"github.com/tokenforge-io/presale-ledger/internal/db"
	"github.com/tokenforge-io/presale-ledger/internal/ledger"
	"github.com/tokenforge-io/presale-ledger/internal/token"
	"github.com/tokenforge-io/presale-ledger/internal/treasury"
	"github.com/tokenforge-io/presale-ledger/internal/types"
)

// Service is the sale's operation layer. It owns the in-memory deposit
// book, the asset registry and the phase clock, and wires the external
// collaborators (price oracle, custody gateway, yield strategy) around
// the accounting core.
//
// opMu serializes whole operations. The accounting rules assume a strict
// total order of deposits, releases and withdrawals, so every externally
// visible operation holds this lock end to end, including its external
// calls.
type Service struct {
	cfg      *config.Config
	db       db.DbInterface
	book     *ledger.Book
	token    *token.Ledger
	oracle   oracleclient.OracleInterface
	custody  custodyclient.CustodyInterface
	strategy strategyclient.StrategyInterface
	router   *treasury.Router
	qm       consumer.EventConsumer
	clock    types.PhaseClock

	opMu sync.Mutex

	// assets is the deposit whitelist, keyed by asset id. Guarded by opMu;
	// admin operations are as serialized as everything else.
	assets map[string]types.Asset
}

func NewService(
	cfg *config.Config,
	database db.DbInterface,
	oracle oracleclient.OracleInterface,
	custody custodyclient.CustodyInterface,
	strategy strategyclient.StrategyInterface,
	qm consumer.EventConsumer,
) *Service {
	return &Service{
		cfg:      cfg,
		db:       database,
		book:     ledger.NewBook(cfg.Sale.MaxTokensInt()),
		token:    token.NewLedger(database),
		oracle:   oracle,
		custody:  custody,
		strategy: strategy,
		router: treasury.NewRouter(
			custody,
			strategy,
			cfg.Custody.TreasuryAccount,
			cfg.Strategy.Asset,
		),
		qm:     qm,
		clock:  types.NewPhaseClock(cfg.Sale.EnrollmentDeadlineTime(), cfg.Sale.LockExpiryTime()),
		assets: make(map[string]types.Asset),
	}
}

// LoadState rebuilds the in-memory book and asset registry from the
// database. Must run before the service accepts operations.
func (s *Service) LoadState(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	assetDocs, err := s.db.GetAllAssets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}
	for _, doc := range assetDocs {
		s.assets[doc.Id] = types.Asset{
			ID:       doc.Id,
			Symbol:   doc.Symbol,
			Decimals: doc.Decimals,
			Native:   doc.Native,
		}
	}

	depositDocs, err := s.db.GetAllDeposits(ctx)
	if err != nil {
		return fmt.Errorf("failed to load deposits: %w", err)
	}
	for _, doc := range depositDocs {
		rec, err := recordFromDocument(&doc)
		if err != nil {
			return err
		}
		s.book.Restore(doc.Account, doc.Asset, rec)
	}

	state, err := s.db.GetSaleState(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return fmt.Errorf("failed to load sale state: %w", err)
		}
	} else {
		current, ok := sdkmath.NewIntFromString(state.TotalCurrentTokens)
		if !ok {
			return fmt.Errorf("stored sale state counter %q is malformed", state.TotalCurrentTokens)
		}
		s.book.RestoreTotals(current)
	}

	current, maxTokens := s.book.Totals()
	log.Ctx(ctx).Info().
		Int("assets", len(s.assets)).
		Int("deposit_rows", len(depositDocs)).
		Stringer("total_current_tokens", current).
		Stringer("total_max_tokens", maxTokens).
		Msg("Restored sale state from database")

	return nil
}

// asset looks up a whitelisted asset. Callers must hold opMu.
func (s *Service) asset(id string) (types.Asset, error) {
	asset, ok := s.assets[id]
	if !ok {
		return types.Asset{}, types.NewErrorf(types.ErrUnknownAsset, "asset %s is not enabled for deposits", id)
	}
	return asset, nil
}

// assetIDs returns the whitelist ids in a stable order. Callers must hold
// opMu.
func (s *Service) assetIDs() []string {
	ids := make([]string, 0, len(s.assets))
	for id := range s.assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// persistRecord writes one ledger row through to the database.
func (s *Service) persistRecord(ctx context.Context, account, asset string, rec ledger.Record) error {
	doc := documentFromRecord(account, asset, rec)
	if err := s.db.UpsertDeposit(ctx, doc); err != nil {
		return fmt.Errorf("failed to persist deposit row %s/%s: %w", account, asset, err)
	}
	return nil
}

// persistTotals writes the cumulative demand counter through.
func (s *Service) persistTotals(ctx context.Context) error {
	current, _ := s.book.Totals()
	if err := s.db.UpsertSaleState(ctx, current.String()); err != nil {
		return fmt.Errorf("failed to persist sale state: %w", err)
	}
	return nil
}
