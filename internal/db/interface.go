package db

import (
	"context"

	"github.com/tokenforge-io/presale-ledger/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error

	// Deposit ledger rows.
	UpsertDeposit(ctx context.Context, doc *model.DepositDocument) error
	GetDeposit(ctx context.Context, account, asset string) (*model.DepositDocument, error)
	GetAllDeposits(ctx context.Context) ([]model.DepositDocument, error)

	// Global demand counter.
	UpsertSaleState(ctx context.Context, totalCurrentTokens string) error
	GetSaleState(ctx context.Context) (*model.SaleStateDocument, error)

	// Asset whitelist.
	SaveAsset(ctx context.Context, doc *model.AssetDocument) error
	GetAsset(ctx context.Context, id string) (*model.AssetDocument, error)
	GetAllAssets(ctx context.Context) ([]model.AssetDocument, error)
	MarkAssetStrategyApproved(ctx context.Context, id string) error

	// Issued-asset balances.
	GetBalance(ctx context.Context, account string) (*model.BalanceDocument, error)
	SetBalance(ctx context.Context, account, balance string) error
}
