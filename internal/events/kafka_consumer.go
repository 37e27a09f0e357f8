package events

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/driventix/service-hotel/internal/platform/kafka"
)

// TicketMarker applies a confirmed payment to a ticket.
type TicketMarker interface {
	MarkPaid(ctx context.Context, ticketID int64) error
}

// PaymentEventConsumer listens to payment events and flips the corresponding
// ticket to PAID, which is what ultimately unlocks hotel booking for a user.
type PaymentEventConsumer struct {
	consumer *kafka.Consumer
	tickets  TicketMarker
	logger   *zap.Logger
}

// NewPaymentEventConsumer creates a new PaymentEventConsumer.
func NewPaymentEventConsumer(
	brokers []string,
	groupID string,
	tickets TicketMarker,
	logger *zap.Logger,
) *PaymentEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicPaymentEvents, logger)
	return &PaymentEventConsumer{
		consumer: consumer,
		tickets:  tickets,
		logger:   logger,
	}
}

// Start begins consuming payment events. Blocks until the context is cancelled.
func (c *PaymentEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *PaymentEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *PaymentEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from payment topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case PaymentConfirmed:
		return c.handlePaymentConfirmed(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled payment event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *PaymentEventConsumer) handlePaymentConfirmed(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt PaymentConfirmedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse PaymentConfirmedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing payment confirmed event",
		zap.Int64("payment_id", evt.PaymentID),
		zap.Int64("ticket_id", evt.TicketID),
	)

	if err := c.tickets.MarkPaid(ctx, evt.TicketID); err != nil {
		c.logger.Error("failed to mark ticket paid",
			zap.Int64("ticket_id", evt.TicketID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
