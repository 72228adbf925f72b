package ledger

import (
	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/types"
)

// WithdrawalStage is a fully checked early or post-lock withdrawal. The
// caller burns issued balance and routes the payout between StageWithdrawal
// and Commit; dropping the stage leaves the ledger untouched.
type WithdrawalStage struct {
	book   *Book
	key    Key
	amount sdkmath.Int

	// TokensToBurn is the issued balance the caller must burn before
	// committing. Zero after lock expiry.
	TokensToBurn sdkmath.Int
}

// StageWithdrawal validates an exit of amount units of asset. The row's
// pending entitlement must already be resolved (released); an unresolved
// row rejects regardless of the amount requested. When burnRequired is
// set, the burn is the withdrawn amount revalued at the row's stored
// weighted average entry price.
func (b *Book) StageWithdrawal(account, asset string, amount sdkmath.Int, decimals uint8, burnRequired bool) (*WithdrawalStage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !amount.IsPositive() {
		return nil, types.NewErrorf(types.ErrInsufficientDepositBalance, "withdrawal amount must be positive, got %s", amount)
	}

	rec, ok := b.records[Key{Account: account, Asset: asset}]
	if !ok {
		zero := zeroRecord()
		rec = &zero
	}

	if !rec.TokensToMint.IsZero() {
		return nil, types.NewErrorf(types.ErrPendingEntitlement,
			"pending entitlement %s for %s/%s must be released before withdrawal", rec.TokensToMint, account, asset)
	}
	if amount.GT(rec.Amount) {
		return nil, types.NewErrorf(types.ErrInsufficientDepositBalance,
			"withdrawal of %s exceeds deposited balance %s", amount, rec.Amount)
	}

	burn := sdkmath.ZeroInt()
	if burnRequired {
		burn = Valuation(rec.AvgPrice, amount, decimals)
	}

	return &WithdrawalStage{
		book:         b,
		key:          Key{Account: account, Asset: asset},
		amount:       amount,
		TokensToBurn: burn,
	}, nil
}

// Commit decrements the row's deposited amount. The row survives at zero
// when fully withdrawn; avgPrice is left as is and the global demand
// counter never moves. Returns a copy of the updated row.
func (s *WithdrawalStage) Commit() Record {
	b := s.book
	b.mu.Lock()
	defer b.mu.Unlock()

	rec := b.record(s.key)
	rec.Amount = rec.Amount.Sub(s.amount)
	return *rec
}
