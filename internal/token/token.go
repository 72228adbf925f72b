// Package token is the issued-asset balance book: a plain fungible ledger
// with mint and burn, persisted per account. Transfer semantics between
// holders are out of scope here; the sale only ever mints to and burns
// from a single account at a time.
package token

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/db"
	"github.com/tokenforge-io/presale-ledger/internal/types"
)

type Ledger struct {
	db db.DbInterface
}

func NewLedger(database db.DbInterface) *Ledger {
	return &Ledger{db: database}
}

// BalanceOf returns the account's issued balance, zero for accounts that
// were never minted to.
func (l *Ledger) BalanceOf(ctx context.Context, account string) (sdkmath.Int, error) {
	doc, err := l.db.GetBalance(ctx, account)
	if err != nil {
		if db.IsNotFoundError(err) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.ZeroInt(), err
	}

	balance, ok := sdkmath.NewIntFromString(doc.Balance)
	if !ok {
		return sdkmath.ZeroInt(), fmt.Errorf("stored balance %q for %s is malformed", doc.Balance, account)
	}
	return balance, nil
}

func (l *Ledger) Mint(ctx context.Context, account string, amount sdkmath.Int) error {
	if !amount.IsPositive() {
		return fmt.Errorf("mint amount must be positive, got %s", amount)
	}

	balance, err := l.BalanceOf(ctx, account)
	if err != nil {
		return err
	}

	return l.db.SetBalance(ctx, account, balance.Add(amount).String())
}

func (l *Ledger) Burn(ctx context.Context, account string, amount sdkmath.Int) error {
	if !amount.IsPositive() {
		return fmt.Errorf("burn amount must be positive, got %s", amount)
	}

	balance, err := l.BalanceOf(ctx, account)
	if err != nil {
		return err
	}
	if balance.LT(amount) {
		return types.NewErrorf(types.ErrInsufficientIssuedBalance,
			"burn of %s exceeds issued balance %s of %s", amount, balance, account)
	}

	return l.db.SetBalance(ctx, account, balance.Sub(amount).String())
}
