package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"swim-shop-api/internal/dal"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/event"
)

const maxRetry = 3

// PaymentConfirmer finishes an order once its payment is complete.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, msg *dto.PaymentCompletedMessage) error
}

type PaymentCompletedConsumer struct {
	Confirmer PaymentConfirmer
	Retry     event.Publisher
	Log       *logrus.Logger
	Timeout   time.Duration
}

func (c *PaymentCompletedConsumer) Start() {
	StartConsumer(dal.PaymentCompletedQueue, c.Handle)
}

func (c *PaymentCompletedConsumer) Handle(d amqp.Delivery) {
	var msg dto.PaymentCompletedMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.Log.Errorf("❌ [PAYMENT-COMPLETED] unmarshal failed: %v", err)
		_ = d.Nack(false, false)
		return
	}
	c.Log.Infof("📨 [PAYMENT-COMPLETED] m_payment_id=%s amount=%s retry=%d", msg.MPaymentID, msg.Amount, msg.RetryCount)

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := c.Confirmer.Confirm(ctx, &msg); err != nil {
		c.Log.Errorf("❌ [PAYMENT-COMPLETED] confirm %s failed: %v", msg.MPaymentID, err)
		if msg.RetryCount < maxRetry {
			msg.RetryCount++
			if perr := c.Retry.Publish(dal.PaymentCompletedKey, msg); perr != nil {
				c.Log.Errorf("[PAYMENT-COMPLETED] requeue %s failed: %v", msg.MPaymentID, perr)
			} else {
				c.Log.Warnf("🔁 [PAYMENT-COMPLETED] retrying %s (attempt %d)", msg.MPaymentID, msg.RetryCount)
			}
		} else {
			c.Log.Errorf("🚨 [PAYMENT-COMPLETED] max retry reached for %s", msg.MPaymentID)
		}
		_ = d.Nack(false, false)
		return
	}

	_ = d.Ack(false)
	c.Log.Infof("✅ [PAYMENT-COMPLETED] confirmed %s", msg.MPaymentID)
}
