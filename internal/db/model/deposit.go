package model

import "fmt"

const DepositCollection = "deposits"

// DepositDocument is one (account, asset) ledger row. Numeric fields are
// decimal strings; Mongo has no integer wide enough for 18-decimal token
// amounts.
type DepositDocument struct {
	Id           string `bson:"_id"` // "<account>:<asset>"
	Account      string `bson:"account"`
	Asset        string `bson:"asset"`
	Amount       string `bson:"amount"`
	AvgPrice     string `bson:"avg_price"`
	TokensToMint string `bson:"tokens_to_mint"`
}

func DepositId(account, asset string) string {
	return fmt.Sprintf("%s:%s", account, asset)
}

func NewDepositDocument(account, asset, amount, avgPrice, tokensToMint string) *DepositDocument {
	return &DepositDocument{
		Id:           DepositId(account, asset),
		Account:      account,
		Asset:        asset,
		Amount:       amount,
		AvgPrice:     avgPrice,
		TokensToMint: tokensToMint,
	}
}
