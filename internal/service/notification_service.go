package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"swim-shop-api/internal/config"
	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dal"
	"swim-shop-api/internal/dao"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/event"
	"swim-shop-api/internal/logger"
	paymentmodel "swim-shop-api/internal/model/payment"
	"swim-shop-api/internal/payfast"
	rediskey "swim-shop-api/internal/types/redis-key"
	"swim-shop-api/internal/utils"
)

// Outcome of one verified notification, also stored in the audit row.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeFinal     Outcome = "already_final"
	OutcomeUnknown   Outcome = "unknown_reference"
	OutcomeRejected  Outcome = "rejected"
	OutcomeRetryable Outcome = "retryable"
)

// ITNMeta carries request details for the audit trail.
type ITNMeta struct {
	TraceID string
	IP      string
	Body    string
}

var gatewayTransitions = map[string]paymentmodel.AttemptStatus{
	payfast.StatusComplete:  paymentmodel.AttemptCompleted,
	payfast.StatusFailed:    paymentmodel.AttemptFailed,
	payfast.StatusCancelled: paymentmodel.AttemptCancelled,
}

type NotificationService struct {
	paymentDao *dao.PaymentDao
	passphrase string
	validator  *payfast.Validator
	locker     Locker
	lockTTL    time.Duration
	project    string
	publisher  event.Publisher
	notifier   event.Notifier
	audit      *logger.ITNLogWriter
	log        *logrus.Logger
	now        func() time.Time
}

func NewNotificationService(db *gorm.DB, pf config.PayFastCfg, project string, locker Locker,
	publisher event.Publisher, notifier event.Notifier, audit *logger.ITNLogWriter, log *logrus.Logger) *NotificationService {
	s := &NotificationService{
		paymentDao: dao.NewPaymentDao(db),
		passphrase: pf.Passphrase,
		locker:     locker,
		lockTTL:    time.Duration(pf.LockTTLSec) * time.Second,
		project:    project,
		publisher:  publisher,
		notifier:   notifier,
		audit:      audit,
		log:        log,
		now:        time.Now,
	}
	if pf.ValidateITN {
		s.validator = payfast.NewValidator(pf.Sandbox)
	}
	return s
}

// Handle verifies an ITN and applies it to the matching payment attempt.
// A nil error means the gateway should be answered with 200.
func (s *NotificationService) Handle(ctx context.Context, fields map[string]string, meta ITNMeta) (Outcome, error) {
	n, err := payfast.ParseNotification(fields)
	if err != nil {
		var mf *payfast.MissingFieldError
		if errors.As(err, &mf) {
			s.log.Warnf("[ITN] trace_id=%s ip=%s missing field %s", meta.TraceID, meta.IP, mf.Field)
			return OutcomeRejected, constant.NewError(constant.CodeMissingParams).WithData(map[string]string{"field": mf.Field})
		}
		return OutcomeRejected, err
	}

	if err := payfast.VerifySignature(fields, s.passphrase); err != nil {
		s.log.Warnf("[ITN] trace_id=%s ip=%s m_payment_id=%s signature rejected: %v", meta.TraceID, meta.IP, n.MPaymentID, err)
		return OutcomeRejected, constant.NewError(constant.CodeSignatureError)
	}

	start := s.now()
	outcome, err := s.apply(ctx, n)
	s.writeAudit(n, meta, outcome, err, start)
	return outcome, err
}

func (s *NotificationService) apply(ctx context.Context, n *payfast.Notification) (Outcome, error) {
	if s.validator != nil {
		if err := s.validator.Validate(ctx, n.Raw); err != nil {
			if errors.Is(err, payfast.ErrNotValid) {
				s.log.Warnf("[ITN] m_payment_id=%s rejected by validate endpoint", n.MPaymentID)
				return OutcomeRejected, constant.NewError(constant.CodeGatewayRejected)
			}
			s.log.Errorf("[ITN] m_payment_id=%s validate endpoint unreachable: %v", n.MPaymentID, err)
			return OutcomeRetryable, constant.NewError(constant.CodeGatewayError)
		}
	}

	if s.locker != nil {
		key := rediskey.ITNLock(s.project, n.MPaymentID)
		token, ok, err := s.locker.Acquire(ctx, key, s.lockTTL)
		switch {
		case err != nil:
			s.log.Warnf("[ITN] lock %s unavailable, continuing unlocked: %v", key, err)
		case !ok:
			s.log.Infof("[ITN] m_payment_id=%s already being processed", n.MPaymentID)
			return OutcomeRetryable, constant.NewError(constant.CodeDuplicateRequest)
		default:
			defer func() {
				if err := s.locker.Release(context.Background(), key, token); err != nil {
					s.log.Warnf("[ITN] release lock %s failed: %v", key, err)
				}
			}()
		}
	}

	id, err := strconv.ParseUint(strings.TrimSpace(n.MPaymentID), 10, 64)
	var attempt *paymentmodel.PaymentAttempt
	if err == nil {
		attempt, err = s.paymentDao.GetByID(id)
		if err != nil {
			s.log.Errorf("[ITN] load attempt %s failed: %v", n.MPaymentID, err)
			return OutcomeRetryable, constant.NewError(constant.CodeDatabaseError)
		}
	}
	if attempt == nil {
		s.log.Warnf("[ITN] unknown m_payment_id=%s pf_payment_id=%s status=%s", n.MPaymentID, n.PfPaymentID, n.PaymentStatus)
		s.notify("warn", "Unknown payment reference",
			"m_payment_id "+n.MPaymentID+" pf_payment_id "+n.PfPaymentID+" status "+n.PaymentStatus)
		return OutcomeUnknown, nil
	}

	if n.AmountGross != "" {
		gross, err := utils.ParseAmount(n.AmountGross)
		if err != nil || !gross.Equal(attempt.Amount) {
			s.log.Errorf("[ITN] m_payment_id=%s amount mismatch: got %s want %s", n.MPaymentID, n.AmountGross, utils.FormatAmount(attempt.Amount))
			s.notify("error", "Payment amount mismatch",
				"m_payment_id "+n.MPaymentID+" received "+n.AmountGross+" expected "+utils.FormatAmount(attempt.Amount))
			return OutcomeRejected, constant.NewError(constant.CodePaymentAmountError)
		}
	}

	to, ok := gatewayTransitions[n.PaymentStatus]
	if !ok {
		s.log.Infof("[ITN] m_payment_id=%s status %s recorded, no transition", n.MPaymentID, n.PaymentStatus)
		return OutcomeIgnored, nil
	}

	if attempt.Status.Terminal() {
		s.log.Infof("[ITN] m_payment_id=%s already %s, %s ignored", n.MPaymentID, attempt.Status, n.PaymentStatus)
		return OutcomeFinal, nil
	}

	now := s.now()
	upd := dao.GatewayUpdate{
		GatewayStatus: n.PaymentStatus,
		PfPaymentID:   n.PfPaymentID,
		NotifiedAt:    now,
	}
	if fee, err := decimal.NewFromString(strings.TrimSpace(n.AmountFee)); err == nil {
		upd.AmountFee = &fee
	}
	moved, err := s.paymentDao.Transition(id, paymentmodel.AttemptInitiated, to, upd)
	if err != nil {
		s.log.Errorf("[ITN] transition %s -> %s failed: %v", n.MPaymentID, to, err)
		return OutcomeRetryable, constant.NewError(constant.CodeDatabaseError)
	}
	if !moved {
		s.log.Infof("[ITN] m_payment_id=%s moved by a concurrent delivery, %s ignored", n.MPaymentID, n.PaymentStatus)
		return OutcomeFinal, nil
	}
	s.log.Infof("[ITN] m_payment_id=%s %s -> %s", n.MPaymentID, paymentmodel.AttemptInitiated, to)

	if to == paymentmodel.AttemptCompleted {
		msg := dto.PaymentCompletedMessage{
			MPaymentID:  n.MPaymentID,
			PfPaymentID: n.PfPaymentID,
			Amount:      utils.FormatAmount(attempt.Amount),
			Currency:    attempt.Currency,
			BuyerEmail:  attempt.BuyerEmail,
			BuyerName:   attempt.BuyerName,
			ItemName:    attempt.ItemName,
			CompletedAt: now,
		}
		if err := s.publisher.Publish(dal.PaymentCompletedKey, msg); err != nil {
			s.log.Errorf("[ITN] publish payment.completed %s failed: %v", n.MPaymentID, err)
			s.notify("error", "Order confirmation not queued", "m_payment_id "+n.MPaymentID+": "+err.Error())
		}
	}
	return OutcomeApplied, nil
}

func (s *NotificationService) notify(level, title, text string) {
	if s.notifier != nil {
		s.notifier.Notify(level, title, text)
	}
}

func (s *NotificationService) writeAudit(n *payfast.Notification, meta ITNMeta, outcome Outcome, err error, start time.Time) {
	if s.audit == nil {
		return
	}
	id, _ := strconv.ParseUint(n.MPaymentID, 10, 64)
	entry := paymentmodel.ITNLog{
		MPaymentID:    id,
		PfPaymentID:   n.PfPaymentID,
		PaymentStatus: n.PaymentStatus,
		TraceID:       meta.TraceID,
		IP:            meta.IP,
		RequestBody:   meta.Body,
		Result:        string(outcome),
		LatencyMs:     s.now().Sub(start).Milliseconds(),
		CreatedAt:     start,
	}
	if err != nil {
		entry.ErrorMsg = err.Error()
		if len(entry.ErrorMsg) > 255 {
			entry.ErrorMsg = entry.ErrorMsg[:255]
		}
	}
	s.audit.Write(entry)
}
