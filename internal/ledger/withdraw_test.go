package ledger

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge-io/presale-ledger/internal/types"
)

// releasedBook returns a book with one fully released row: 200 USDT units
// (6 decimals) at avgPrice 2.5.
func releasedBook(t *testing.T) *Book {
	t.Helper()

	book := NewBook(issued(100_000))
	stage, err := book.StageDeposit("alice", "USDT", sdkmath.NewInt(100_000_000), price18(2), 6)
	require.NoError(t, err)
	stage.Commit()
	stage, err = book.StageDeposit("alice", "USDT", sdkmath.NewInt(100_000_000), price18(3), 6)
	require.NoError(t, err)
	stage.Commit()
	book.StageRelease("alice", []string{"USDT"}).Commit()
	return book
}

func TestWithdrawBurnsAtAveragePriceBeforeExpiry(t *testing.T) {
	book := releasedBook(t)

	// 80 units at avgPrice 2.5 burn 200 issued tokens.
	stage, err := book.StageWithdrawal("alice", "USDT", sdkmath.NewInt(80_000_000), 6, true)
	require.NoError(t, err)
	assert.Equal(t, issued(200).String(), stage.TokensToBurn.String())

	rec := stage.Commit()
	assert.Equal(t, "120000000", rec.Amount.String())
	// avgPrice stays put for the remaining position.
	assert.Equal(t, sdkmath.NewIntWithDecimal(25, 17).String(), rec.AvgPrice.String())
}

func TestWithdrawNoBurnAfterExpiry(t *testing.T) {
	book := releasedBook(t)

	stage, err := book.StageWithdrawal("alice", "USDT", sdkmath.NewInt(80_000_000), 6, false)
	require.NoError(t, err)
	assert.True(t, stage.TokensToBurn.IsZero())

	rec := stage.Commit()
	assert.Equal(t, "120000000", rec.Amount.String())
}

func TestWithdrawRejectsUnresolvedEntitlement(t *testing.T) {
	book := NewBook(issued(1000))
	stage, err := book.StageDeposit("alice", "USDT", sdkmath.NewInt(100_000_000), price18(1), 6)
	require.NoError(t, err)
	stage.Commit()

	// Any amount is rejected while tokensToMint != 0, even a tiny one.
	_, err = book.StageWithdrawal("alice", "USDT", sdkmath.NewInt(1), 6, true)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrPendingEntitlement))

	_, err = book.StageWithdrawal("alice", "USDT", sdkmath.NewInt(100_000_000), 6, false)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrPendingEntitlement))
}

func TestWithdrawRejectsOverdraw(t *testing.T) {
	book := releasedBook(t)

	_, err := book.StageWithdrawal("alice", "USDT", sdkmath.NewInt(200_000_001), 6, true)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrInsufficientDepositBalance))

	// Nothing moved.
	assert.Equal(t, "200000000", book.Get("alice", "USDT").Amount.String())
}

func TestWithdrawFromUntouchedRowRejects(t *testing.T) {
	book := NewBook(issued(1000))

	_, err := book.StageWithdrawal("nobody", "USDT", sdkmath.NewInt(1), 6, true)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrInsufficientDepositBalance))
}

func TestWithdrawRowPersistsAtZero(t *testing.T) {
	book := releasedBook(t)

	stage, err := book.StageWithdrawal("alice", "USDT", sdkmath.NewInt(200_000_000), 6, false)
	require.NoError(t, err)
	rec := stage.Commit()
	assert.True(t, rec.Amount.IsZero())

	// The row is never deleted; it survives at zero with its avgPrice.
	entries := book.Entries()
	kept, ok := entries[Key{Account: "alice", Asset: "USDT"}]
	require.True(t, ok)
	assert.True(t, kept.Amount.IsZero())
	assert.Equal(t, sdkmath.NewIntWithDecimal(25, 17).String(), kept.AvgPrice.String())

	// Cumulative demand is untouched by withdrawal.
	current, _ := book.Totals()
	assert.Equal(t, issued(500).String(), current.String())
}

func TestWithdrawDroppedStageLeavesNoTrace(t *testing.T) {
	book := releasedBook(t)

	_, err := book.StageWithdrawal("alice", "USDT", sdkmath.NewInt(80_000_000), 6, true)
	require.NoError(t, err)
	// Payout failed downstream; the stage is dropped without commit.

	assert.Equal(t, "200000000", book.Get("alice", "USDT").Amount.String())
}
