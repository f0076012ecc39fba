package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"overcooked-delivery/stats-svc/internal/domain"
)

// MessageReader is the subset of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads order events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Info().Msg("starting order stats consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("order stats consumer stopped")
				return
			}
			log.Error().Err(err).Msg("error reading message")
			continue
		}

		var event domain.OrderCreatedEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Warn().Err(err).Int64("offset", message.Offset).Msg("skipping malformed order event")
			continue
		}

		if err := c.ProcessOrder(ctx, event); err != nil {
			log.Error().Err(err).Int("order_id", event.OrderID).Msg("failed to process order event")
		}
	}
}

// ProcessOrder folds one order_created event into the aggregates. Events of
// other types and redelivered orders are ignored.
func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderCreatedEvent) error {
	if event.Type != domain.EventOrderCreated {
		return nil
	}

	total, err := decimal.NewFromString(event.TotalPrice)
	if err != nil {
		return fmt.Errorf("order %d: invalid total %q: %w", event.OrderID, event.TotalPrice, err)
	}

	first, err := c.Store.MarkProcessed(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("mark order %d processed: %w", event.OrderID, err)
	}
	if !first {
		log.Debug().Int("order_id", event.OrderID).Msg("duplicate order event")
		return nil
	}

	if err := c.Store.RecordOrder(ctx, event, total.Shift(2).Round(0).IntPart()); err != nil {
		if unmarkErr := c.Store.UnmarkProcessed(ctx, event.OrderID); unmarkErr != nil {
			log.Error().Err(unmarkErr).Int("order_id", event.OrderID).Msg("failed to release processed marker")
		}
		return fmt.Errorf("record order %d: %w", event.OrderID, err)
	}

	log.Debug().
		Int("order_id", event.OrderID).
		Int("restaurant_id", event.RestaurantID).
		Msg("order event processed")
	return nil
}
