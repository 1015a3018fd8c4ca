package mq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"swim-shop-api/internal/dal"
)

// Channel is the subset of *amqp.Channel used for publishing.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Publisher struct {
	Exchange string
	channel  func() Channel
}

// NewPublisher publishes to the payment exchange over the shared reconnecting channel.
func NewPublisher() *Publisher {
	return &Publisher{
		Exchange: dal.PaymentExchange,
		channel: func() Channel {
			if ch := dal.GetChannel(); ch != nil {
				return ch
			}
			return nil
		},
	}
}

// NewPublisherWith is used by tests and by callers holding their own channel.
func NewPublisherWith(exchange string, ch Channel) *Publisher {
	return &Publisher{Exchange: exchange, channel: func() Channel { return ch }}
}

func (p *Publisher) Publish(routingKey string, msg any) error {
	ch := p.channel()
	if ch == nil {
		return fmt.Errorf("rabbitmq channel not available")
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", routingKey, err)
	}
	return ch.Publish(p.Exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
}
