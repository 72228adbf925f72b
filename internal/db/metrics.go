package db

import (
	"context"
	"time"

	"github.com/tokenforge-io/presale-ledger/internal/db/model"
	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.RecordDbLatency(method, time.Since(start), err != nil)
	return err
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) UpsertDeposit(ctx context.Context, doc *model.DepositDocument) error {
	return d.run("UpsertDeposit", func() error {
		return d.db.UpsertDeposit(ctx, doc)
	})
}

func (d *DbWithMetrics) GetDeposit(ctx context.Context, account, asset string) (result *model.DepositDocument, err error) {
	//nolint:errcheck
	d.run("GetDeposit", func() error {
		result, err = d.db.GetDeposit(ctx, account, asset)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAllDeposits(ctx context.Context) (result []model.DepositDocument, err error) {
	//nolint:errcheck
	d.run("GetAllDeposits", func() error {
		result, err = d.db.GetAllDeposits(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertSaleState(ctx context.Context, totalCurrentTokens string) error {
	return d.run("UpsertSaleState", func() error {
		return d.db.UpsertSaleState(ctx, totalCurrentTokens)
	})
}

func (d *DbWithMetrics) GetSaleState(ctx context.Context) (result *model.SaleStateDocument, err error) {
	//nolint:errcheck
	d.run("GetSaleState", func() error {
		result, err = d.db.GetSaleState(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveAsset(ctx context.Context, doc *model.AssetDocument) error {
	return d.run("SaveAsset", func() error {
		return d.db.SaveAsset(ctx, doc)
	})
}

func (d *DbWithMetrics) GetAsset(ctx context.Context, id string) (result *model.AssetDocument, err error) {
	//nolint:errcheck
	d.run("GetAsset", func() error {
		result, err = d.db.GetAsset(ctx, id)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAllAssets(ctx context.Context) (result []model.AssetDocument, err error) {
	//nolint:errcheck
	d.run("GetAllAssets", func() error {
		result, err = d.db.GetAllAssets(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) MarkAssetStrategyApproved(ctx context.Context, id string) error {
	return d.run("MarkAssetStrategyApproved", func() error {
		return d.db.MarkAssetStrategyApproved(ctx, id)
	})
}

func (d *DbWithMetrics) GetBalance(ctx context.Context, account string) (result *model.BalanceDocument, err error) {
	//nolint:errcheck
	d.run("GetBalance", func() error {
		result, err = d.db.GetBalance(ctx, account)
		return err
	})
	return
}

func (d *DbWithMetrics) SetBalance(ctx context.Context, account, balance string) error {
	return d.run("SetBalance", func() error {
		return d.db.SetBalance(ctx, account, balance)
	})
}
