package services

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenforge-io/presale-ledger/internal/db/model"
	"github.com/tokenforge-io/presale-ledger/internal/ledger"
)

// recordFromDocument parses the decimal-string fields of a persisted row.
func recordFromDocument(doc *model.DepositDocument) (ledger.Record, error) {
	amount, ok := sdkmath.NewIntFromString(doc.Amount)
	if !ok {
		return ledger.Record{}, fmt.Errorf("deposit row %s has malformed amount %q", doc.Id, doc.Amount)
	}
	avgPrice, ok := sdkmath.NewIntFromString(doc.AvgPrice)
	if !ok {
		return ledger.Record{}, fmt.Errorf("deposit row %s has malformed avg_price %q", doc.Id, doc.AvgPrice)
	}
	tokensToMint, ok := sdkmath.NewIntFromString(doc.TokensToMint)
	if !ok {
		return ledger.Record{}, fmt.Errorf("deposit row %s has malformed tokens_to_mint %q", doc.Id, doc.TokensToMint)
	}

	return ledger.Record{
		Amount:       amount,
		AvgPrice:     avgPrice,
		TokensToMint: tokensToMint,
	}, nil
}

func documentFromRecord(account, asset string, rec ledger.Record) *model.DepositDocument {
	return model.NewDepositDocument(
		account,
		asset,
		rec.Amount.String(),
		rec.AvgPrice.String(),
		rec.TokensToMint.String(),
	)
}
