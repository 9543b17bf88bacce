package rabbit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
)

type recordingPublisher struct {
	failures int
	calls    int
	exchange string
	key      string
	msg      amqp.Publishing
}

func (p *recordingPublisher) Publish(_ context.Context, exchange, key string, msg amqp.Publishing) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("channel closed")
	}
	p.exchange, p.key, p.msg = exchange, key, msg
	return nil
}

func TestTripProducer_Publish(t *testing.T) {
	pub := &recordingPublisher{}
	producer := NewTripProducer(pub, logger.Discard())

	trip := models.Trip{Destination: "Lima"}.WithID(5)
	ctx := wrap.WithRequestID(context.Background(), "req-1")
	err := producer.PublishTripEvent(ctx, models.TripEvent{
		Type:       models.TripCreated,
		TripID:     5,
		Trip:       &trip,
		OccurredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, TripExchange, pub.exchange)
	assert.Equal(t, "trip.created", pub.key)
	assert.Equal(t, "req-1", pub.msg.CorrelationId)
	assert.Equal(t, "application/json", pub.msg.ContentType)

	var decoded models.TripEvent
	require.NoError(t, json.Unmarshal(pub.msg.Body, &decoded))
	assert.Equal(t, int64(5), decoded.TripID)
	assert.Equal(t, "Lima", decoded.Trip.Destination)
}

func TestTripProducer_RetriesThenFails(t *testing.T) {
	pub := &recordingPublisher{failures: 10}
	producer := NewTripProducer(pub, logger.Discard())

	err := producer.PublishTripEvent(context.Background(), models.TripEvent{Type: models.TripDeleted, TripID: 1})
	assert.Error(t, err)
	assert.Equal(t, publishAttempts, pub.calls)
}

func TestTripProducer_RecoversAfterTransientFailure(t *testing.T) {
	pub := &recordingPublisher{failures: 1}
	producer := NewTripProducer(pub, logger.Discard())

	err := producer.PublishTripEvent(context.Background(), models.TripEvent{Type: models.TripUpdated, TripID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, pub.calls)
	assert.Equal(t, "trip.updated", pub.key)
}
