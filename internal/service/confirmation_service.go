package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"swim-shop-api/internal/dao"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/event"
)

// ConfirmationService finishes orders whose payment completed.
type ConfirmationService struct {
	paymentDao *dao.PaymentDao
	cache      ProductCache
	notifier   event.Notifier
	log        *logrus.Logger
	now        func() time.Time
}

func NewConfirmationService(db *gorm.DB, cache ProductCache, notifier event.Notifier, log *logrus.Logger) *ConfirmationService {
	return &ConfirmationService{
		paymentDao: dao.NewPaymentDao(db),
		cache:      cache,
		notifier:   notifier,
		log:        log,
		now:        time.Now,
	}
}

// Confirm stamps confirmed_at once and deducts the order's stock.
// Redelivered messages are acknowledged quietly.
func (s *ConfirmationService) Confirm(ctx context.Context, msg *dto.PaymentCompletedMessage) error {
	id, err := strconv.ParseUint(msg.MPaymentID, 10, 64)
	if err != nil {
		s.log.Warnf("[Confirm] bad m_payment_id %q dropped", msg.MPaymentID)
		return nil
	}
	first, err := s.paymentDao.MarkConfirmed(id, s.now())
	if err != nil {
		return fmt.Errorf("mark confirmed %s: %w", msg.MPaymentID, err)
	}
	if !first {
		s.log.Infof("[Confirm] %s already confirmed", msg.MPaymentID)
		return nil
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warnf("[Confirm] catalog cache invalidate failed: %v", err)
		}
	}
	if s.notifier != nil {
		s.notifier.Notify("ok", "New paid order",
			fmt.Sprintf("Order %s\nAmount %s %s\nBuyer %s <%s>", msg.MPaymentID, msg.Amount, msg.Currency, msg.BuyerName, msg.BuyerEmail))
	}
	return nil
}
