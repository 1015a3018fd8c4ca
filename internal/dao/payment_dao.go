package dao

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogmodel "swim-shop-api/internal/model/catalog"
	paymentmodel "swim-shop-api/internal/model/payment"
)

type PaymentDao struct {
	DB *gorm.DB
}

func NewPaymentDao(db *gorm.DB) *PaymentDao {
	return &PaymentDao{DB: db}
}

func (r *PaymentDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("PaymentDao: DB connection is nil")
	}
	return nil
}

func (r *PaymentDao) Insert(a *paymentmodel.PaymentAttempt) error {
	if err := r.checkDB(); err != nil {
		return err
	}
	if err := r.DB.Create(a).Error; err != nil {
		return fmt.Errorf("insert payment attempt failed: %w", err)
	}
	return nil
}

// GetByID returns nil, nil when no attempt carries id.
func (r *PaymentDao) GetByID(id uint64) (*paymentmodel.PaymentAttempt, error) {
	if err := r.checkDB(); err != nil {
		return nil, err
	}
	var m paymentmodel.PaymentAttempt
	err := r.DB.Where("m_payment_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query payment attempt failed: %w", err)
	}
	return &m, nil
}

// GatewayUpdate is what a verified notification writes onto an attempt.
type GatewayUpdate struct {
	GatewayStatus string
	PfPaymentID   string
	AmountFee     *decimal.Decimal
	NotifiedAt    time.Time
}

func (u GatewayUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{
		"gateway_status": u.GatewayStatus,
		"notified_at":    u.NotifiedAt,
	}
	if u.PfPaymentID != "" {
		cols["pf_payment_id"] = u.PfPaymentID
	}
	if u.AmountFee != nil {
		cols["amount_fee"] = *u.AmountFee
	}
	return cols
}

// Transition moves id from `from` to `to` only if it is still in `from`.
// It reports false when another delivery got there first.
func (r *PaymentDao) Transition(id uint64, from, to paymentmodel.AttemptStatus, u GatewayUpdate) (bool, error) {
	if err := r.checkDB(); err != nil {
		return false, err
	}
	cols := u.columns()
	cols["status"] = to
	res := r.DB.Model(&paymentmodel.PaymentAttempt{}).
		Where("m_payment_id = ? AND status = ?", id, from).
		Updates(cols)
	if res.Error != nil {
		return false, fmt.Errorf("transition payment attempt failed: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// MarkConfirmed stamps confirmed_at once and takes the attempt's lines out of
// stock in the same transaction; later calls report false.
func (r *PaymentDao) MarkConfirmed(id uint64, at time.Time) (bool, error) {
	if err := r.checkDB(); err != nil {
		return false, err
	}
	first := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&paymentmodel.PaymentAttempt{}).
			Where("m_payment_id = ? AND status = ? AND confirmed_at IS NULL", id, paymentmodel.AttemptCompleted).
			Update("confirmed_at", at)
		if res.Error != nil {
			return fmt.Errorf("confirm payment attempt failed: %w", res.Error)
		}
		if res.RowsAffected != 1 {
			return nil
		}
		var a paymentmodel.PaymentAttempt
		if err := tx.Select("items").Where("m_payment_id = ?", id).First(&a).Error; err != nil {
			return fmt.Errorf("load payment items failed: %w", err)
		}
		if err := deductStock(tx, a.Items); err != nil {
			return err
		}
		first = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return first, nil
}

type stockLine struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// deductStock floors at zero, so an oversold product ends up sold out.
func deductStock(tx *gorm.DB, items string) error {
	if strings.TrimSpace(items) == "" {
		return nil
	}
	var lines []stockLine
	if err := json.Unmarshal([]byte(items), &lines); err != nil {
		return fmt.Errorf("decode payment items failed: %w", err)
	}
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		err := tx.Model(&catalogmodel.Product{}).
			Where("id = ?", l.ProductID).
			Update("stock", gorm.Expr("CASE WHEN stock > ? THEN stock - ? ELSE 0 END", l.Quantity, l.Quantity)).Error
		if err != nil {
			return fmt.Errorf("deduct stock for product %d failed: %w", l.ProductID, err)
		}
	}
	return nil
}
