package ordproducer

import (
	"context"
	"fmt"

	"github.com/yakkt/campervan-configurator/internal/model"
	"github.com/yakkt/campervan-configurator/platform/kafka"
)

type Converter interface {
	OrderCreatedToPayload(m model.OrderCreated) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewOrderProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendOrderCreated(ctx context.Context, event model.OrderCreated) error {
	payload, err := s.conv.OrderCreatedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter order_created_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, event.OrderID[:], payload); err != nil {
		return fmt.Errorf("producer to order.created topic error: %w", err)
	}

	return nil
}
