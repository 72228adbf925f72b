package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/tokenforge-io/presale-ledger/internal/config"
	"github.com/tokenforge-io/presale-ledger/internal/observability/metrics"
)

const (
	DepositReceivedEventType       = "deposit_received"
	EntitlementReleasedEventType   = "entitlement_released"
	WithdrawalProcessedEventType   = "withdrawal_processed"
	StrategyFundsDeployedEventType = "strategy_funds_deployed"

	publishTimeout = 5 * time.Second
)

// DepositReceivedEvent is emitted after a deposit has been committed to
// the ledger and persisted.
type DepositReceivedEvent struct {
	EventType    string `json:"event_type"`
	Account      string `json:"account"`
	Asset        string `json:"asset"`
	Amount       string `json:"amount"`
	Price        string `json:"price"`
	TokensToMint string `json:"tokens_to_mint"`
}

// EntitlementReleasedEvent is emitted once per released account.
type EntitlementReleasedEvent struct {
	EventType string `json:"event_type"`
	Account   string `json:"account"`
	Minted    string `json:"minted"`
}

// WithdrawalProcessedEvent is emitted after a withdrawal payout.
type WithdrawalProcessedEvent struct {
	EventType   string `json:"event_type"`
	Account     string `json:"account"`
	Asset       string `json:"asset"`
	Amount      string `json:"amount"`
	TokensBurnt string `json:"tokens_burnt"`
}

// StrategyFundsDeployedEvent is emitted when the owner pushes idle
// treasury funds into the yield strategy.
type StrategyFundsDeployedEvent struct {
	EventType string `json:"event_type"`
	Asset     string `json:"asset"`
	Amount    string `json:"amount"`
}

type QueueManager struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *zap.Logger
}

func NewQueueManager(cfg *config.QueueConfig, logger *zap.Logger) (*QueueManager, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.Url)
	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open queue channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &QueueManager{
		conn:     conn,
		channel:  channel,
		exchange: cfg.Exchange,
		logger:   logger.With(zap.String("module", "queue")),
	}, nil
}

// PushDepositReceived publishes the event; failures are logged and counted
// but never returned. The ledger mutation has already been committed, so a
// broker outage must not surface as an operation failure.
func (qm *QueueManager) PushDepositReceived(ctx context.Context, ev *DepositReceivedEvent) {
	ev.EventType = DepositReceivedEventType
	qm.publish(ctx, DepositReceivedEventType, ev)
}

func (qm *QueueManager) PushEntitlementReleased(ctx context.Context, ev *EntitlementReleasedEvent) {
	ev.EventType = EntitlementReleasedEventType
	qm.publish(ctx, EntitlementReleasedEventType, ev)
}

func (qm *QueueManager) PushWithdrawalProcessed(ctx context.Context, ev *WithdrawalProcessedEvent) {
	ev.EventType = WithdrawalProcessedEventType
	qm.publish(ctx, WithdrawalProcessedEventType, ev)
}

func (qm *QueueManager) PushStrategyFundsDeployed(ctx context.Context, ev *StrategyFundsDeployedEvent) {
	ev.EventType = StrategyFundsDeployedEventType
	qm.publish(ctx, StrategyFundsDeployedEventType, ev)
}

func (qm *QueueManager) publish(ctx context.Context, routingKey string, event any) {
	body, err := json.Marshal(event)
	if err != nil {
		qm.logger.Error("failed to marshal event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
		metrics.RecordQueuePublishError()
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = qm.channel.PublishWithContext(
		publishCtx,
		qm.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		qm.logger.Error("failed to publish event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
		metrics.RecordQueuePublishError()
		return
	}

	qm.logger.Debug("published event", zap.String("routing_key", routingKey))
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	qm.logger.Info("shutting down queue manager")
	if err := qm.channel.Close(); err != nil {
		qm.logger.Error("failed to close queue channel", zap.Error(err))
	}
	if err := qm.conn.Close(); err != nil {
		qm.logger.Error("failed to close queue connection", zap.Error(err))
	}
}
