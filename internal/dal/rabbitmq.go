package dal

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"swim-shop-api/internal/config"
)

const (
	PaymentExchange       = "payment_events"
	PaymentCompletedKey   = "payment.completed"
	PaymentCompletedQueue = "payment_completed"
)

var (
	mqConn    *amqp.Connection
	mqChannel *amqp.Channel

	mu sync.Mutex

	// closed state is tracked through NotifyClose rather than IsClosed
	connClosedCh chan *amqp.Error
	chClosedCh   chan *amqp.Error

	reconnecting bool
)

// InitRabbitMQ opens the first connection and declares the payment topology.
func InitRabbitMQ() error {
	return connect()
}

func connect() error {
	mu.Lock()
	defer mu.Unlock()

	if isConnAlive() && isChanAlive() {
		return nil
	}

	log.Printf("[RabbitMQ] connecting")
	conn, err := amqp.Dial(config.C.RabbitMQ.URL)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}
	mqConn = conn
	connClosedCh = conn.NotifyClose(make(chan *amqp.Error, 1))

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		mqConn = nil
		connClosedCh = nil
		return fmt.Errorf("open channel failed: %w", err)
	}
	mqChannel = ch
	chClosedCh = ch.NotifyClose(make(chan *amqp.Error, 1))

	if pc := config.C.RabbitMQ.PrefetchCount; pc > 0 {
		if err := ch.Qos(pc, 0, false); err != nil {
			log.Printf("[RabbitMQ] set QoS failed: %v", err)
		}
	}

	if err := declareTopology(ch); err != nil {
		return err
	}

	log.Printf("[RabbitMQ] ready")
	go watchClose()

	return nil
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(PaymentExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("exchange declare failed: %w", err)
	}
	if _, err := ch.QueueDeclare(PaymentCompletedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare %s failed: %w", PaymentCompletedQueue, err)
	}
	if err := ch.QueueBind(PaymentCompletedQueue, PaymentCompletedKey, PaymentExchange, false, nil); err != nil {
		return fmt.Errorf("queue bind %s failed: %w", PaymentCompletedQueue, err)
	}
	return nil
}

func watchClose() {
	select {
	case err, ok := <-connClosedCh:
		if ok {
			log.Printf("[RabbitMQ] connection closed: %v", err)
		}
	case err, ok := <-chClosedCh:
		if ok {
			log.Printf("[RabbitMQ] channel closed: %v", err)
		}
	}
	reconnect()
}

// reconnect blocks until a connection is re-established.
func reconnect() {
	mu.Lock()
	if reconnecting {
		mu.Unlock()
		return
	}
	reconnecting = true
	mu.Unlock()

	defer func() {
		mu.Lock()
		reconnecting = false
		mu.Unlock()
	}()

	for {
		log.Println("[RabbitMQ] reconnecting...")
		if err := connect(); err == nil {
			log.Println("[RabbitMQ] reconnected")
			return
		}
		time.Sleep(5 * time.Second)
	}
}

func isConnAlive() bool {
	if mqConn == nil || connClosedCh == nil {
		return false
	}
	select {
	case <-connClosedCh:
		return false
	default:
		return true
	}
}

func isChanAlive() bool {
	if mqChannel == nil || chClosedCh == nil {
		return false
	}
	select {
	case <-chClosedCh:
		return false
	default:
		return true
	}
}

func GetChannel() *amqp.Channel {
	if !isChanAlive() {
		reconnect()
	}
	return mqChannel
}
