package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// Publisher sends console action events to the activity queue.
type Publisher struct {
	pool      *ChannelPool
	queueName string
	logger    *zap.Logger
}

func NewPublisher(pool *ChannelPool, queueName string, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("rabbitmq.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rabbitmq.publisher")
	}
	return &Publisher{
		pool:      pool,
		queueName: queueName,
		logger:    l,
	}
}

// RecordAction publishes one persistent event message.
func (p *Publisher) RecordAction(ctx context.Context, event models.ActionEvent) error {
	msg, err := NewEventPublishing(event)
	if err != nil {
		return err
	}

	ch, err := p.pool.GetChannel()
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer p.pool.ReturnChannel(ch)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish action event: %w", err)
	}

	p.logger.Debug("published action event",
		zap.String("event_id", event.EventID),
		zap.String("action", event.Action),
	)
	return nil
}

// NewEventPublishing encodes an event as a persistent JSON message.
func NewEventPublishing(event models.ActionEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal action event: %w", err)
	}
	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Type:         event.Action,
		Body:         body,
	}, nil
}
