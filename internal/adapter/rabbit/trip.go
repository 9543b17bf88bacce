package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/metrics"
)

const (
	TripExchange = "trip_topic"

	publishAttempts = 3
	publishBackoff  = 200 * time.Millisecond
)

// Publisher is the part of the broker client the producer needs.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error
}

// TripProducer publishes trip change events to the trip exchange.
// The routing key is the event type, e.g. trip.created.
type TripProducer struct {
	client   Publisher
	exchange string

	l logger.Logger
}

func NewTripProducer(client Publisher, log logger.Logger) *TripProducer {
	return &TripProducer{
		client:   client,
		exchange: TripExchange,
		l:        log,
	}
}

func (p *TripProducer) PublishTripEvent(ctx context.Context, event models.TripEvent) error {
	ctx = wrap.WithAction(ctx, "rabbitmq_publish_trip_event")
	key := string(event.Type)

	body, err := json.Marshal(event)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to marshal message: %w", err))
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		CorrelationId: wrap.FromContext(ctx).RequestID,
		Timestamp:     event.OccurredAt,
		Body:          body,
	}

	err = retry(ctx, publishAttempts, publishBackoff, func() error {
		return p.client.Publish(ctx, p.exchange, key, msg)
	})
	metrics.RecordRabbitMQPublish("trip-api", key, err)
	if err != nil {
		return wrap.Error(ctx, err)
	}

	p.l.Debug(ctx, "trip event published", "routing_key", key)
	return nil
}

func retry(ctx context.Context, n int, sleep time.Duration, fn func() error) error {
	var err error
	for i := range n {
		if err = fn(); err == nil {
			return nil
		}
		if i == n-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
	}
	return err
}
