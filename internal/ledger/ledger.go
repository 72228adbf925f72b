package ledger

import (
	"sync"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/types"
)

// Key is the composite ledger key.
type Key struct {
	Account string
	Asset   string
}

// Record is one per-(account, asset) ledger row.
//
// Amount is in the asset's native decimal precision. AvgPrice is an
// 18-digit fixed-point weighted average entry price. TokensToMint is the
// pending entitlement in issued-asset units (18 decimals).
type Record struct {
	Amount       sdkmath.Int
	AvgPrice     sdkmath.Int
	TokensToMint sdkmath.Int
}

func zeroRecord() Record {
	return Record{
		Amount:       sdkmath.ZeroInt(),
		AvgPrice:     sdkmath.ZeroInt(),
		TokensToMint: sdkmath.ZeroInt(),
	}
}

// Book is the deposit ledger together with the global cap counters.
//
// Rows are created zero-valued on first access and never deleted; a fully
// settled row persists at zero. totalCurrentTokens is cumulative demand:
// it only ever grows and is never decremented, not even on release or
// withdrawal.
//
// Book methods are individually goroutine-safe, but a stage/commit pair is
// not: callers must serialize whole operations. The service layer holds a
// single operation lock for the duration of every call, which also gives
// the strict total ordering the accounting rules assume.
type Book struct {
	mu      sync.Mutex
	records map[Key]*Record

	totalMaxTokens     sdkmath.Int
	totalCurrentTokens sdkmath.Int
}

func NewBook(totalMaxTokens sdkmath.Int) *Book {
	return &Book{
		records:            make(map[Key]*Record),
		totalMaxTokens:     totalMaxTokens,
		totalCurrentTokens: sdkmath.ZeroInt(),
	}
}

// record returns the row for key, creating it zero-valued on first access.
// Callers must hold b.mu.
func (b *Book) record(key Key) *Record {
	rec, ok := b.records[key]
	if !ok {
		zero := zeroRecord()
		rec = &zero
		b.records[key] = rec
	}
	return rec
}

// Get returns a copy of the row, zero-valued if it was never touched.
func (b *Book) Get(account, asset string) Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	if rec, ok := b.records[Key{Account: account, Asset: asset}]; ok {
		return *rec
	}
	return zeroRecord()
}

// Totals returns (totalCurrentTokens, totalMaxTokens).
func (b *Book) Totals() (current, max sdkmath.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalCurrentTokens, b.totalMaxTokens
}

// Entries returns a copy of every row. Used by the stats poller and the
// dump-ledger command.
func (b *Book) Entries() map[Key]Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[Key]Record, len(b.records))
	for key, rec := range b.records {
		out[key] = *rec
	}
	return out
}

// Restore loads a persisted row, replacing any in-memory value. Used when
// rebuilding the book from the database at startup.
func (b *Book) Restore(account, asset string, rec Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records[Key{Account: account, Asset: asset}] = &rec
}

// RestoreTotals loads the persisted cumulative demand counter.
func (b *Book) RestoreTotals(current sdkmath.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.totalCurrentTokens = current
}

// Valuation converts amount (native precision of the asset) at an 18-digit
// fixed-point price into issued-asset units. price*amount carries
// 18+decimals fractional digits; dividing by 10^decimals normalizes back
// to 18. Division truncates toward zero.
func Valuation(price, amount sdkmath.Int, decimals uint8) sdkmath.Int {
	return price.Mul(amount).Quo(pow10(decimals))
}

func pow10(decimals uint8) sdkmath.Int {
	return sdkmath.NewIntWithDecimal(1, int(decimals))
}

// DepositStage is a fully checked deposit that has not been applied yet.
// The caller pulls funds from the depositor between StageDeposit and
// Commit; if the pull fails the stage is simply dropped.
type DepositStage struct {
	book     *Book
	key      Key
	amount   sdkmath.Int
	price    sdkmath.Int
	decimals uint8

	// Minted is the entitlement this deposit accrues, in issued units.
	Minted sdkmath.Int
}

// StageDeposit values amount at price and checks the global cap. The cap
// check is all-or-nothing: a deposit that does not fit in full is rejected
// even if it would fit partially.
func (b *Book) StageDeposit(account, asset string, amount, price sdkmath.Int, decimals uint8) (*DepositStage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !amount.IsPositive() {
		return nil, types.NewErrorf(types.ErrInsufficientDepositBalance, "deposit amount must be positive, got %s", amount)
	}
	if !price.IsPositive() {
		return nil, types.NewErrorf(types.ErrOraclePriceUnavailable, "non-positive price %s for %s", price, asset)
	}

	minted := Valuation(price, amount, decimals)
	newTotal := b.totalCurrentTokens.Add(minted)
	if newTotal.GT(b.totalMaxTokens) {
		return nil, types.NewErrorf(types.ErrCapExceeded,
			"entitlement %s would raise demand to %s, above cap %s", minted, newTotal, b.totalMaxTokens)
	}

	return &DepositStage{
		book:     b,
		key:      Key{Account: account, Asset: asset},
		amount:   amount,
		price:    price,
		decimals: decimals,
		Minted:   minted,
	}, nil
}

// Commit applies the staged deposit: row amount and pending entitlement
// grow, the average price follows the weighted-average law, and the
// cumulative demand counter advances. Returns a copy of the updated row.
func (s *DepositStage) Commit() Record {
	b := s.book
	b.mu.Lock()
	defer b.mu.Unlock()

	rec := b.record(s.key)

	// newAvg = (oldAmount*oldAvg + price*amount) / (oldAmount + amount)
	newAmount := rec.Amount.Add(s.amount)
	rec.AvgPrice = rec.Amount.Mul(rec.AvgPrice).Add(s.price.Mul(s.amount)).Quo(newAmount)
	rec.Amount = newAmount
	rec.TokensToMint = rec.TokensToMint.Add(s.Minted)

	b.totalCurrentTokens = b.totalCurrentTokens.Add(s.Minted)

	return *rec
}
