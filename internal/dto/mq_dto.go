package dto

import "time"

// PaymentCompletedMessage is published after a verified COMPLETE notification.
type PaymentCompletedMessage struct {
	MPaymentID  string    `json:"m_payment_id"`
	PfPaymentID string    `json:"pf_payment_id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	BuyerEmail  string    `json:"buyer_email"`
	BuyerName   string    `json:"buyer_name"`
	ItemName    string    `json:"item_name"`
	CompletedAt time.Time `json:"completed_at"`
	RetryCount  int       `json:"retry_count"`
}
