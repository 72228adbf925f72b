package model

const SaleStateCollection = "sale_state"

// saleStateId is the singleton document key.
const SaleStateId = "sale_state"

// SaleStateDocument persists the cumulative demand counter. The cap and
// the two sale timestamps live in config, not here.
type SaleStateDocument struct {
	Id                 string `bson:"_id"`
	TotalCurrentTokens string `bson:"total_current_tokens"`
	LastUpdated        int64  `bson:"last_updated"`
}
