package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/denyszaritskyi/comand-work/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer feeds the Redis dish counters from the order event stream.
type Consumer struct {
	Reader *kafka.Reader
	Cache  DishCounter
}

func NewConsumer(reader *kafka.Reader, cache DishCounter) *Consumer {
	return &Consumer{Reader: reader, Cache: cache}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[aggregator] consuming order events")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[aggregator] read message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[aggregator] unmarshal message: %v", err)
			continue
		}

		if event.Type == domain.EventOrderPlaced {
			c.ProcessOrder(ctx, event)
		}
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	date := event.Timestamp.Format("2006-01-02")
	for _, item := range event.Items {
		if err := c.Cache.IncrDishCount(ctx, date, item.DishID, item.Quantity); err != nil {
			log.Printf("[aggregator] update dish counter %d: %v", item.DishID, err)
		}
	}
}
