// Package payfast implements the PayFast hosted-checkout contract: request
// fields, signature scheme and ITN (instant transaction notification) parsing.
package payfast

import (
	"fmt"
	"strings"
)

const (
	SandboxHost = "https://sandbox.payfast.co.za"
	LiveHost    = "https://www.payfast.co.za"

	processPath  = "/eng/process"
	validatePath = "/eng/query/validate"
)

// Payment statuses reported in ITN payment_status.
const (
	StatusComplete  = "COMPLETE"
	StatusFailed    = "FAILED"
	StatusCancelled = "CANCELLED"
	StatusPending   = "PENDING"
)

func host(sandbox bool) string {
	if sandbox {
		return SandboxHost
	}
	return LiveHost
}

// ProcessURL is the form action the browser posts the signed request to.
func ProcessURL(sandbox bool) string { return host(sandbox) + processPath }

// ValidateURL is the server-to-server ITN confirmation endpoint.
func ValidateURL(sandbox bool) string { return host(sandbox) + validatePath }

type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaymentRequest is one outbound transaction. Amount is pre-formatted to two decimals.
type PaymentRequest struct {
	MerchantID      string
	MerchantKey     string
	ReturnURL       string
	CancelURL       string
	NotifyURL       string
	NameFirst       string
	NameLast        string
	EmailAddress    string
	MPaymentID      string
	Amount          string
	ItemName        string
	ItemDescription string
}

// OrderedFields lists non-empty fields in the gateway's form order.
func (r PaymentRequest) OrderedFields() []Field {
	all := []Field{
		{"merchant_id", r.MerchantID},
		{"merchant_key", r.MerchantKey},
		{"return_url", r.ReturnURL},
		{"cancel_url", r.CancelURL},
		{"notify_url", r.NotifyURL},
		{"name_first", r.NameFirst},
		{"name_last", r.NameLast},
		{"email_address", r.EmailAddress},
		{"m_payment_id", r.MPaymentID},
		{"amount", r.Amount},
		{"item_name", r.ItemName},
		{"item_description", r.ItemDescription},
	}
	out := make([]Field, 0, len(all))
	for _, f := range all {
		if strings.TrimSpace(f.Value) == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (r PaymentRequest) Fields() map[string]string {
	m := make(map[string]string, 12)
	for _, f := range r.OrderedFields() {
		m[f.Name] = f.Value
	}
	return m
}

// Sign returns the request signature for the given passphrase.
func (r PaymentRequest) Sign(passphrase string) string {
	return GenerateSignature(r.Fields(), passphrase)
}

// Notification is the typed view of an ITN form.
type Notification struct {
	MPaymentID    string
	PfPaymentID   string
	PaymentStatus string
	AmountGross   string
	AmountFee     string
	AmountNet     string
	ItemName      string
	EmailAddress  string
	Signature     string
	Raw           map[string]string
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("payfast: required field %q missing", e.Field)
}

// ParseNotification checks required fields and maps the form into a Notification.
func ParseNotification(fields map[string]string) (*Notification, error) {
	for _, k := range []string{FieldSignature, "payment_status", "m_payment_id"} {
		if strings.TrimSpace(fields[k]) == "" {
			return nil, &MissingFieldError{Field: k}
		}
	}
	return &Notification{
		MPaymentID:    fields["m_payment_id"],
		PfPaymentID:   fields["pf_payment_id"],
		PaymentStatus: fields["payment_status"],
		AmountGross:   fields["amount_gross"],
		AmountFee:     fields["amount_fee"],
		AmountNet:     fields["amount_net"],
		ItemName:      fields["item_name"],
		EmailAddress:  fields["email_address"],
		Signature:     fields[FieldSignature],
		Raw:           fields,
	}, nil
}
