package services

import (
	"errors"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge-io/presale-ledger/internal/config"
	"github.com/tokenforge-io/presale-ledger/internal/db"
	"github.com/tokenforge-io/presale-ledger/internal/db/model"
	"github.com/tokenforge-io/presale-ledger/internal/ledger"
	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
	"github.com/tokenforge-io/presale-ledger/internal/types"
	"github.com/tokenforge-io/presale-ledger/tests/mocks"
)

const (
	testOwner    = "owner-account"
	testTreasury = "treasury-account"
	testGateway  = "gateway-address"
	testStrategy = "strategy-address"
)

var (
	testDeadline = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	testExpiry   = time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
)

type testHarness struct {
	svc      *Service
	db       *mocks.DbInterface
	oracle   *mocks.OracleInterface
	custody  *mocks.CustodyInterface
	strategy *mocks.StrategyInterface
	events   *mocks.EventConsumer
	now      *time.Time
}

// setNow moves the harness clock.
func (h *testHarness) setNow(t time.Time) {
	*h.now = t
}

func newTestHarness(t *testing.T, maxTokens string) *testHarness {
	metrics.Init(9999)

	cfg := &config.Config{
		Sale: config.SaleConfig{
			MaxTokens:          maxTokens,
			EnrollmentDeadline: testDeadline.Unix(),
			LockExpiry:         testExpiry.Unix(),
			OwnerAccount:       testOwner,
		},
		Custody: config.CustodyConfig{
			GatewayAddress:  testGateway,
			TreasuryAccount: testTreasury,
		},
		Strategy: config.StrategyConfig{
			Address: testStrategy,
			Asset:   "usdc",
		},
	}

	h := &testHarness{
		db:       mocks.NewDbInterface(t),
		oracle:   mocks.NewOracleInterface(t),
		custody:  mocks.NewCustodyInterface(t),
		strategy: mocks.NewStrategyInterface(t),
		events:   mocks.NewEventConsumer(t),
	}
	h.svc = NewService(cfg, h.db, h.oracle, h.custody, h.strategy, h.events)

	now := testDeadline.Add(-24 * time.Hour)
	h.now = &now
	h.svc.clock.Now = func() time.Time { return *h.now }

	h.svc.assets["usdc"] = types.Asset{ID: "usdc", Symbol: "USDC", Decimals: 6}
	h.svc.assets["native"] = types.Asset{ID: "native", Symbol: "ETH", Decimals: 18, Native: true}

	return h
}

// tokens converts whole issued tokens to 18-decimal base units as a string.
func tokens(whole int64) string {
	return sdkmath.NewInt(whole).Mul(sdkmath.NewIntWithDecimal(1, 18)).String()
}

func price18(whole int64) sdkmath.Int {
	return sdkmath.NewInt(whole).Mul(sdkmath.NewIntWithDecimal(1, 18))
}

func TestDeposit(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	t.Run("pulls funds and records the row", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		// 100 USDC at price 2.0
		amount := sdkmath.NewInt(100_000_000)
		h.oracle.On("Price", internalCtx, "USDC").Return(price18(2), nil).Once()
		h.custody.On("TransferIn", internalCtx, "usdc", "alice", amount).Return(nil).Once()
		h.db.On("UpsertDeposit", internalCtx, mock.Anything).Return(nil).Once()
		h.db.On("UpsertSaleState", internalCtx, tokens(200)).Return(nil).Once()
		h.events.On("PushDepositReceived", internalCtx, mock.Anything).Once()

		result, err := h.svc.Deposit(ctx, "alice", "usdc", amount, sdkmath.ZeroInt())
		require.NoError(t, err)
		require.Equal(t, tokens(200), result.Minted.String())
		require.Equal(t, price18(2).String(), result.Record.AvgPrice.String())
		require.Equal(t, amount.String(), result.Record.Amount.String())
	})

	t.Run("native deposit must match its payment", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		amount := sdkmath.NewIntWithDecimal(1, 18)
		_, err := h.svc.Deposit(ctx, "alice", "native", amount, sdkmath.ZeroInt())
		require.True(t, types.IsKind(err, types.ErrPaymentMismatch))

		// With the payment attached no custody pull happens.
		h.oracle.On("Price", internalCtx, "ETH").Return(price18(3000), nil).Once()
		h.db.On("UpsertDeposit", internalCtx, mock.Anything).Return(nil).Once()
		h.db.On("UpsertSaleState", internalCtx, tokens(3000)).Return(nil).Once()
		h.events.On("PushDepositReceived", internalCtx, mock.Anything).Once()

		result, err := h.svc.Deposit(ctx, "alice", "native", amount, amount)
		require.NoError(t, err)
		require.Equal(t, tokens(3000), result.Minted.String())
	})

	t.Run("non-native deposit must not carry a payment", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		_, err := h.svc.Deposit(ctx, "alice", "usdc", sdkmath.NewInt(100), sdkmath.NewInt(1))
		require.True(t, types.IsKind(err, types.ErrPaymentMismatch))
	})

	t.Run("rejects after the enrollment deadline", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testDeadline)

		_, err := h.svc.Deposit(ctx, "alice", "usdc", sdkmath.NewInt(100), sdkmath.ZeroInt())
		require.True(t, types.IsKind(err, types.ErrPhaseClosed))
	})

	t.Run("rejects unknown assets", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		_, err := h.svc.Deposit(ctx, "alice", "doge", sdkmath.NewInt(100), sdkmath.ZeroInt())
		require.True(t, types.IsKind(err, types.ErrUnknownAsset))
	})

	t.Run("failed pull leaves no trace", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		amount := sdkmath.NewInt(100_000_000)
		h.oracle.On("Price", internalCtx, "USDC").Return(price18(2), nil).Once()
		h.custody.On("TransferIn", internalCtx, "usdc", "alice", amount).
			Return(errors.New("gateway down")).Once()

		_, err := h.svc.Deposit(ctx, "alice", "usdc", amount, sdkmath.ZeroInt())
		require.True(t, types.IsKind(err, types.ErrExternalCallFailed))

		rec := h.svc.book.Get("alice", "usdc")
		require.True(t, rec.Amount.IsZero())
		current, _ := h.svc.book.Totals()
		require.True(t, current.IsZero())
	})

	t.Run("rejects a deposit that would exceed the cap", func(t *testing.T) {
		h := newTestHarness(t, tokens(100))

		// 100 USDC at 2.0 values to 200 tokens, above the 100 token cap.
		h.oracle.On("Price", internalCtx, "USDC").Return(price18(2), nil).Once()

		_, err := h.svc.Deposit(ctx, "alice", "usdc", sdkmath.NewInt(100_000_000), sdkmath.ZeroInt())
		require.True(t, types.IsKind(err, types.ErrCapExceeded))
	})
}

func TestRelease(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	seedDeposit := func(h *testHarness, account, asset string, amount, avgPrice, pending sdkmath.Int) {
		h.svc.book.Restore(account, asset, ledger.Record{
			Amount:       amount,
			AvgPrice:     avgPrice,
			TokensToMint: pending,
		})
		current, _ := h.svc.book.Totals()
		h.svc.book.RestoreTotals(current.Add(pending))
	}

	t.Run("rejects before the enrollment deadline", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		_, err := h.svc.Release(ctx, "alice", "", nil)
		require.True(t, types.IsKind(err, types.ErrPhaseNotReached))
	})

	t.Run("mints the pending aggregate and zeroes the rows", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testDeadline)

		minted := sdkmath.NewIntWithDecimal(200, 18)
		seedDeposit(h, "alice", "usdc", sdkmath.NewInt(100_000_000), price18(2), minted)

		h.db.On("GetBalance", internalCtx, "alice").
			Return(nil, &db.NotFoundError{Key: "alice", Message: "not found"}).Once()
		h.db.On("SetBalance", internalCtx, "alice", minted.String()).Return(nil).Once()
		h.db.On("UpsertDeposit", internalCtx, mock.Anything).Return(nil).Once()
		h.events.On("PushEntitlementReleased", internalCtx, mock.Anything).Once()

		result, err := h.svc.Release(ctx, "alice", "", nil)
		require.NoError(t, err)
		require.Equal(t, "alice", result.Account)
		require.Equal(t, []string{"usdc"}, result.Assets)
		require.Equal(t, minted.String(), result.Minted.String())

		rec := h.svc.book.Get("alice", "usdc")
		require.True(t, rec.TokensToMint.IsZero())
	})

	t.Run("anyone may release for another account", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testDeadline)

		minted := sdkmath.NewIntWithDecimal(50, 18)
		seedDeposit(h, "bob", "usdc", sdkmath.NewInt(25_000_000), price18(2), minted)

		h.db.On("GetBalance", internalCtx, "bob").
			Return(nil, &db.NotFoundError{Key: "bob", Message: "not found"}).Once()
		h.db.On("SetBalance", internalCtx, "bob", minted.String()).Return(nil).Once()
		h.db.On("UpsertDeposit", internalCtx, mock.Anything).Return(nil).Once()
		h.events.On("PushEntitlementReleased", internalCtx, mock.Anything).Once()

		result, err := h.svc.Release(ctx, "alice", "bob", nil)
		require.NoError(t, err)
		require.Equal(t, "bob", result.Account)
	})

	t.Run("a requested asset list limits the release", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testDeadline)

		usdcPending := sdkmath.NewIntWithDecimal(200, 18)
		nativePending := sdkmath.NewIntWithDecimal(3000, 18)
		seedDeposit(h, "alice", "usdc", sdkmath.NewInt(100_000_000), price18(2), usdcPending)
		seedDeposit(h, "alice", "native", sdkmath.NewIntWithDecimal(1, 18), price18(3000), nativePending)

		h.db.On("GetBalance", internalCtx, "alice").
			Return(nil, &db.NotFoundError{Key: "alice", Message: "not found"}).Once()
		h.db.On("SetBalance", internalCtx, "alice", usdcPending.String()).Return(nil).Once()
		h.db.On("UpsertDeposit", internalCtx, mock.Anything).Return(nil).Once()
		h.events.On("PushEntitlementReleased", internalCtx, mock.Anything).Once()

		result, err := h.svc.Release(ctx, "alice", "", []string{"usdc"})
		require.NoError(t, err)
		require.Equal(t, []string{"usdc"}, result.Assets)
		require.Equal(t, usdcPending.String(), result.Minted.String())

		// The other row keeps its pending entitlement.
		rec := h.svc.book.Get("alice", "native")
		require.Equal(t, nativePending.String(), rec.TokensToMint.String())
	})

	t.Run("rejects unknown assets in the request", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testDeadline)

		_, err := h.svc.Release(ctx, "alice", "", []string{"doge"})
		require.True(t, types.IsKind(err, types.ErrUnknownAsset))
	})

	t.Run("releasing nothing pending is a no-op", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testDeadline)

		result, err := h.svc.Release(ctx, "alice", "", nil)
		require.NoError(t, err)
		require.Empty(t, result.Assets)
		require.True(t, result.Minted.IsZero())
	})
}

func TestWithdraw(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	// seedReleased plants a row with its entitlement already resolved.
	seedReleased := func(h *testHarness, account, asset string, amount, avgPrice sdkmath.Int) {
		h.svc.book.Restore(account, asset, ledger.Record{
			Amount:       amount,
			AvgPrice:     avgPrice,
			TokensToMint: sdkmath.ZeroInt(),
		})
	}

	t.Run("unresolved entitlement blocks withdrawal", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.svc.book.Restore("alice", "usdc", ledger.Record{
			Amount:       sdkmath.NewInt(100_000_000),
			AvgPrice:     price18(2),
			TokensToMint: sdkmath.NewIntWithDecimal(200, 18),
		})

		_, err := h.svc.Withdraw(ctx, "alice", "usdc", sdkmath.NewInt(100))
		require.True(t, types.IsKind(err, types.ErrPendingEntitlement))
	})

	t.Run("early exit burns at the stored average price", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testDeadline) // before lock expiry: burn required

		seedReleased(h, "alice", "usdc", sdkmath.NewInt(100_000_000), price18(2))

		// Withdraw 80 USDC at avg 2.0: burn 160 tokens.
		amount := sdkmath.NewInt(80_000_000)
		burn := sdkmath.NewIntWithDecimal(160, 18)

		h.db.On("GetBalance", internalCtx, "alice").
			Return(&model.BalanceDocument{Account: "alice", Balance: sdkmath.NewIntWithDecimal(200, 18).String()}, nil).Once()
		h.db.On("SetBalance", internalCtx, "alice", sdkmath.NewIntWithDecimal(40, 18).String()).Return(nil).Once()
		h.custody.On("BalanceOf", internalCtx, "usdc", testTreasury).
			Return(sdkmath.NewInt(100_000_000), nil).Once()
		h.custody.On("TransferOut", internalCtx, "usdc", "alice", amount).Return(nil).Once()
		h.db.On("UpsertDeposit", internalCtx, mock.Anything).Return(nil).Once()
		h.events.On("PushWithdrawalProcessed", internalCtx, mock.Anything).Once()

		result, err := h.svc.Withdraw(ctx, "alice", "usdc", amount)
		require.NoError(t, err)
		require.Equal(t, burn.String(), result.TokensBurnt.String())
		require.Equal(t, sdkmath.NewInt(20_000_000).String(), result.Record.Amount.String())
	})

	t.Run("post-expiry exit burns nothing", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testExpiry)

		seedReleased(h, "alice", "usdc", sdkmath.NewInt(100_000_000), price18(2))

		amount := sdkmath.NewInt(100_000_000)
		h.custody.On("BalanceOf", internalCtx, "usdc", testTreasury).
			Return(sdkmath.NewInt(100_000_000), nil).Once()
		h.custody.On("TransferOut", internalCtx, "usdc", "alice", amount).Return(nil).Once()
		h.db.On("UpsertDeposit", internalCtx, mock.Anything).Return(nil).Once()
		h.events.On("PushWithdrawalProcessed", internalCtx, mock.Anything).Once()

		result, err := h.svc.Withdraw(ctx, "alice", "usdc", amount)
		require.NoError(t, err)
		require.True(t, result.TokensBurnt.IsZero())
		require.True(t, result.Record.Amount.IsZero())
	})

	t.Run("shortfall unwinds the strategy", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testExpiry)

		seedReleased(h, "alice", "usdc", sdkmath.NewInt(100_000_000), price18(2))

		amount := sdkmath.NewInt(100_000_000)
		held := sdkmath.NewInt(30_000_000)
		h.custody.On("BalanceOf", internalCtx, "usdc", testTreasury).Return(held, nil).Once()
		h.strategy.On("Unwind", internalCtx, "usdc", amount.Sub(held)).Return(nil).Once()
		h.custody.On("TransferOut", internalCtx, "usdc", "alice", amount).Return(nil).Once()
		h.db.On("UpsertDeposit", internalCtx, mock.Anything).Return(nil).Once()
		h.events.On("PushWithdrawalProcessed", internalCtx, mock.Anything).Once()

		_, err := h.svc.Withdraw(ctx, "alice", "usdc", amount)
		require.NoError(t, err)
	})

	t.Run("failed payout keeps the deposited balance", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))
		h.setNow(testExpiry)

		seedReleased(h, "alice", "native", sdkmath.NewIntWithDecimal(1, 18), price18(3000))

		// Native asset shortfall has no strategy to unwind.
		h.custody.On("BalanceOf", internalCtx, "native", testTreasury).
			Return(sdkmath.ZeroInt(), nil).Once()

		_, err := h.svc.Withdraw(ctx, "alice", "native", sdkmath.NewIntWithDecimal(1, 18))
		require.True(t, types.IsKind(err, types.ErrPayoutUnsupported))

		rec := h.svc.book.Get("alice", "native")
		require.Equal(t, sdkmath.NewIntWithDecimal(1, 18).String(), rec.Amount.String())
	})
}

func TestAdmin(t *testing.T) {
	ctx := t.Context()
	internalCtx := mock.Anything

	t.Run("only the owner may administer", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		_, err := h.svc.EnableAsset(ctx, "alice", "dai", "DAI", false)
		require.True(t, types.IsKind(err, types.ErrPermissionDenied))

		err = h.svc.ApproveStrategySpend(ctx, "alice", "usdc")
		require.True(t, types.IsKind(err, types.ErrPermissionDenied))

		_, err = h.svc.RawCall(ctx, "alice", testStrategy, []byte{0x01}, sdkmath.ZeroInt())
		require.True(t, types.IsKind(err, types.ErrPermissionDenied))
	})

	t.Run("enable asset reads decimals from custody", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		h.custody.On("Decimals", internalCtx, "dai").Return(uint8(18), nil).Once()
		h.db.On("SaveAsset", internalCtx, mock.Anything).Return(nil).Once()

		asset, err := h.svc.EnableAsset(ctx, testOwner, "dai", "DAI", false)
		require.NoError(t, err)
		require.Equal(t, uint8(18), asset.Decimals)
		require.Contains(t, h.svc.assets, "dai")
	})

	t.Run("approve skips when an allowance exists", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		h.custody.On("Allowance", internalCtx, "usdc", testTreasury, testStrategy).
			Return(sdkmath.NewInt(1), nil).Once()
		h.db.On("MarkAssetStrategyApproved", internalCtx, "usdc").Return(nil).Once()

		require.NoError(t, h.svc.ApproveStrategySpend(ctx, testOwner, "usdc"))
	})

	t.Run("approve grants when no allowance exists", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		h.custody.On("Allowance", internalCtx, "usdc", testTreasury, testStrategy).
			Return(sdkmath.ZeroInt(), nil).Once()
		h.custody.On("Approve", internalCtx, "usdc", testStrategy).Return(nil).Once()
		h.db.On("MarkAssetStrategyApproved", internalCtx, "usdc").Return(nil).Once()

		require.NoError(t, h.svc.ApproveStrategySpend(ctx, testOwner, "usdc"))
	})

	t.Run("raw calls are restricted to the configured targets", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		_, err := h.svc.RawCall(ctx, testOwner, "0xdeadbeef", []byte{0x01}, sdkmath.ZeroInt())
		require.True(t, types.IsKind(err, types.ErrPermissionDenied))

		h.strategy.On("RawCall", internalCtx, []byte{0x01}, sdkmath.ZeroInt()).
			Return([]byte{0x02}, nil).Once()
		out, err := h.svc.RawCall(ctx, testOwner, testStrategy, []byte{0x01}, sdkmath.ZeroInt())
		require.NoError(t, err)
		require.Equal(t, []byte{0x02}, out)

		h.custody.On("RawCall", internalCtx, testGateway, []byte{0x03}, sdkmath.ZeroInt()).
			Return([]byte{0x04}, nil).Once()
		out, err = h.svc.RawCall(ctx, testOwner, testGateway, []byte{0x03}, sdkmath.ZeroInt())
		require.NoError(t, err)
		require.Equal(t, []byte{0x04}, out)
	})

	t.Run("deploy routes through the treasury", func(t *testing.T) {
		h := newTestHarness(t, tokens(1_000_000))

		amount := sdkmath.NewInt(50_000_000)
		h.strategy.On("Deposit", internalCtx, "usdc", amount).Return(nil).Once()
		h.events.On("PushStrategyFundsDeployed", internalCtx, mock.Anything).Once()

		require.NoError(t, h.svc.DeployToStrategy(ctx, testOwner, amount))
	})
}
