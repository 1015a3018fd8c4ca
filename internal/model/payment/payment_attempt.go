package paymentmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

type AttemptStatus string

const (
	AttemptInitiated AttemptStatus = "INITIATED"
	AttemptCompleted AttemptStatus = "COMPLETED"
	AttemptFailed    AttemptStatus = "FAILED"
	AttemptCancelled AttemptStatus = "CANCELLED"
)

// Terminal states never transition again.
func (s AttemptStatus) Terminal() bool {
	return s == AttemptCompleted || s == AttemptFailed || s == AttemptCancelled
}

// PaymentAttempt is one checkout sent to the gateway, keyed by m_payment_id.
type PaymentAttempt struct {
	MPaymentID     uint64           `gorm:"column:m_payment_id;primaryKey;autoIncrement:false"`
	Amount         decimal.Decimal  `gorm:"column:amount;type:decimal(12,2)"`
	Currency       string           `gorm:"column:currency;size:8"`
	ItemName       string           `gorm:"column:item_name;size:100"`
	Items          string           `gorm:"column:items;type:text"`
	Subtotal       decimal.Decimal  `gorm:"column:subtotal;type:decimal(12,2)"`
	Shipping       decimal.Decimal  `gorm:"column:shipping;type:decimal(12,2)"`
	Discount       decimal.Decimal  `gorm:"column:discount;type:decimal(12,2)"`
	ShippingMethod string           `gorm:"column:shipping_method;size:16"`
	DiscountCode   string           `gorm:"column:discount_code;size:32"`
	BuyerEmail     string           `gorm:"column:buyer_email;size:255"`
	BuyerName      string           `gorm:"column:buyer_name;size:255"`
	Status         AttemptStatus    `gorm:"column:status;size:16;index"`
	GatewayStatus  string           `gorm:"column:gateway_status;size:16"`
	PfPaymentID    string           `gorm:"column:pf_payment_id;size:32"`
	AmountFee      *decimal.Decimal `gorm:"column:amount_fee;type:decimal(12,2)"`
	NotifiedAt     *time.Time       `gorm:"column:notified_at"`
	ConfirmedAt    *time.Time       `gorm:"column:confirmed_at"`
	CreatedAt      time.Time        `gorm:"column:created_at"`
	UpdatedAt      time.Time        `gorm:"column:updated_at"`
}

func (PaymentAttempt) TableName() string { return "payment_attempts" }
