package types

// Asset describes one whitelisted deposit asset.
type Asset struct {
	// ID is the asset identifier used as ledger key and in API calls.
	ID string
	// Symbol is the ticker the price oracle is queried with.
	Symbol string
	// Decimals is the asset's native decimal precision.
	Decimals uint8
	// Native marks the chain's native-value asset, which is paid with the
	// request instead of pulled via the custody gateway.
	Native bool
}
