package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/models"
)

const publishTimeout = 5 * time.Second

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type EventPublisher interface {
	PublishDetectionCompleted(ctx context.Context, event models.DetectionCompletedEvent) error
}

type rabbitMQPublisher struct {
	channel    Channel
	exchange   string
	routingKey string
	logger     zerolog.Logger
}

func NewRabbitMQPublisher(channel Channel, exchange, routingKey string, logger zerolog.Logger) EventPublisher {
	return &rabbitMQPublisher{
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}
}

func (p *rabbitMQPublisher) PublishDetectionCompleted(ctx context.Context, event models.DetectionCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		publishCtx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.CompletedAt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", p.routingKey, err)
	}

	p.logger.Debug().
		Str("event_id", event.EventID).
		Str("routing_key", p.routingKey).
		Msg("Detection event published")
	return nil
}
