package paymentmodel

import "time"

// ITNLog is one verified notification delivery, stored in monthly shard tables.
type ITNLog struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	MPaymentID    uint64    `gorm:"column:m_payment_id;index"`
	PfPaymentID   string    `gorm:"column:pf_payment_id;size:32"`
	PaymentStatus string    `gorm:"column:payment_status;size:16"`
	TraceID       string    `gorm:"column:trace_id;size:64"`
	IP            string    `gorm:"column:ip;size:64"`
	RequestBody   string    `gorm:"column:request_body;type:text"`
	Result        string    `gorm:"column:result;size:32"`
	ErrorMsg      string    `gorm:"column:error_msg;size:255"`
	LatencyMs     int64     `gorm:"column:latency_ms"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}
