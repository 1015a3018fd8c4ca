package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"swim-shop-api/internal/config"
	catalogmodel "swim-shop-api/internal/model/catalog"
)

const testPassphrase = "jt7NOE43FZPn"

func testPayFast() config.PayFastCfg {
	return config.PayFastCfg{
		MerchantID:  "10000100",
		MerchantKey: "46f0cd694581a",
		Passphrase:  testPassphrase,
		Sandbox:     true,
		BaseURL:     "https://shop.example",
		LockTTLSec:  30,
	}
}

func testCheckout() config.CheckoutCfg {
	return config.CheckoutCfg{
		Shipping:      config.ShippingCfg{Standard: "50.00", Express: "150.00"},
		DiscountCodes: map[string]string{"summer10": "100.00", "free": "1000.00"},
		MinAmount:     "5.00",
		Currency:      "ZAR",
	}
}

func fixedIDs(ids ...uint64) func() uint64 {
	i := 0
	return func() uint64 {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

type published struct {
	key string
	msg any
}

type fakePublisher struct {
	mu   sync.Mutex
	err  error
	sent []published
}

func (p *fakePublisher) Publish(routingKey string, msg any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{routingKey, msg})
	return nil
}

type alert struct{ level, title, text string }

type fakeNotifier struct {
	mu     sync.Mutex
	alerts []alert
}

func (n *fakeNotifier) Notify(level, title, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, alert{level, title, text})
}

type fakeLocker struct {
	held     map[string]string
	err      error
	acquired []string
	released []string
}

func newFakeLocker() *fakeLocker { return &fakeLocker{held: map[string]string{}} }

func (l *fakeLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if l.err != nil {
		return "", false, l.err
	}
	if _, ok := l.held[key]; ok {
		return "", false, nil
	}
	l.held[key] = "tok"
	l.acquired = append(l.acquired, key)
	return "tok", true, nil
}

func (l *fakeLocker) Release(ctx context.Context, key, token string) error {
	delete(l.held, key)
	l.released = append(l.released, key)
	return nil
}

type fakeCache struct {
	list        []catalogmodel.Product
	ok          bool
	getErr      error
	sets        int
	invalidated int
}

func (c *fakeCache) Get(ctx context.Context) ([]catalogmodel.Product, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.list, c.ok, nil
}

func (c *fakeCache) Set(ctx context.Context, list []catalogmodel.Product) error {
	c.list, c.ok = list, true
	c.sets++
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context) error {
	c.list, c.ok = nil, false
	c.invalidated++
	return nil
}

var errDown = errors.New("connection refused")
