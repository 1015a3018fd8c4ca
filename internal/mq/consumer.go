package mq

import (
	"log"
	"time"

	"github.com/streadway/amqp"

	"swim-shop-api/internal/dal"
)

// StartConsumer consumes queue until the process exits, re-subscribing after
// the shared channel is replaced by a reconnect.
func StartConsumer(queue string, handler func(amqp.Delivery)) {
	for {
		ch := dal.GetChannel()
		if ch == nil {
			log.Printf("[MQ] channel not ready for %s, retrying", queue)
			time.Sleep(5 * time.Second)
			continue
		}
		msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
		if err != nil {
			log.Printf("❌ [MQ] consume %s failed: %v", queue, err)
			time.Sleep(5 * time.Second)
			continue
		}
		log.Printf("[MQ] consumer started: %s", queue)
		for d := range msgs {
			handler(d)
		}
		log.Printf("[MQ] delivery channel closed: %s", queue)
	}
}
