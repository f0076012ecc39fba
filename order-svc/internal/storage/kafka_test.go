package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overcooked-delivery/order-svc/internal/domain"
)

type recordingWriter struct {
	messages []kafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishOrderCreated(t *testing.T) {
	writer := &recordingWriter{}
	publisher := NewKafkaPublisher(writer)

	event := domain.OrderCreatedEvent{
		Type:         domain.EventOrderCreated,
		OrderID:      42,
		RestaurantID: 3,
		TotalPrice:   "64.50",
		Meals:        []domain.EventLine{{ItemID: 1, Quantity: 5}},
	}
	require.NoError(t, publisher.PublishOrderCreated(context.Background(), event))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "3", string(writer.messages[0].Key))

	var decoded domain.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, "64.50", decoded.TotalPrice)
	assert.Equal(t, 5, decoded.Meals[0].Quantity)
}
