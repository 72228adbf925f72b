package model

const AssetCollection = "assets"

// AssetDocument is one whitelisted deposit asset.
type AssetDocument struct {
	Id       string `bson:"_id"` // asset identifier
	Symbol   string `bson:"symbol"`
	Decimals uint8  `bson:"decimals"`
	Native   bool   `bson:"native"`
	// StrategyApproved records whether the strategy collaborator was
	// granted unlimited spend on this asset.
	StrategyApproved bool `bson:"strategy_approved"`
}
