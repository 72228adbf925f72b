package consumer

import (
	"context"

	"github.com/tokenforge-io/presale-ledger/internal/queue"
)

//go:generate mockery --name=EventConsumer --output=../tests/mocks --outpkg=mocks --filename=mock_event_consumer.go
type EventConsumer interface {
	PushDepositReceived(ctx context.Context, ev *queue.DepositReceivedEvent)
	PushEntitlementReleased(ctx context.Context, ev *queue.EntitlementReleasedEvent)
	PushWithdrawalProcessed(ctx context.Context, ev *queue.WithdrawalProcessedEvent)
	PushStrategyFundsDeployed(ctx context.Context, ev *queue.StrategyFundsDeployedEvent)
	Shutdown()
}
