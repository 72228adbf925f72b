package model

const BalanceCollection = "issued_balances"

// BalanceDocument is one account's issued-asset balance, in 18-decimal
// base units as a decimal string.
type BalanceDocument struct {
	Account string `bson:"_id"`
	Balance string `bson:"balance"`
}
