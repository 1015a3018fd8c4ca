package payfast

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRequest_OrderedFieldsSkipsEmpty(t *testing.T) {
	r := PaymentRequest{
		MerchantID:   "10000100",
		MerchantKey:  "46f0cd694581a",
		NotifyURL:    "https://shop/api/payment-notification",
		EmailAddress: "a@b.co",
		MPaymentID:   "42",
		Amount:       "250.00",
		ItemName:     "Order 42",
	}
	names := make([]string, 0)
	for _, f := range r.OrderedFields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"merchant_id", "merchant_key", "notify_url", "email_address", "m_payment_id", "amount", "item_name"}, names)
	assert.Len(t, r.Fields(), 7)
	assert.Equal(t, GenerateSignature(r.Fields(), "pp"), r.Sign("pp"))
}

func TestProcessURL(t *testing.T) {
	assert.Equal(t, "https://sandbox.payfast.co.za/eng/process", ProcessURL(true))
	assert.Equal(t, "https://www.payfast.co.za/eng/process", ProcessURL(false))
	assert.Equal(t, "https://www.payfast.co.za/eng/query/validate", ValidateURL(false))
}

func TestParseNotification(t *testing.T) {
	n, err := ParseNotification(map[string]string{
		"m_payment_id":   "7",
		"pf_payment_id":  "1089250",
		"payment_status": "COMPLETE",
		"amount_gross":   "200.00",
		"signature":      "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "7", n.MPaymentID)
	assert.Equal(t, "1089250", n.PfPaymentID)
	assert.Equal(t, StatusComplete, n.PaymentStatus)
	assert.Equal(t, "200.00", n.AmountGross)
}

func TestParseNotification_MissingFields(t *testing.T) {
	for _, missing := range []string{"signature", "payment_status", "m_payment_id"} {
		f := map[string]string{"m_payment_id": "7", "payment_status": "COMPLETE", "signature": "abc"}
		delete(f, missing)
		_, err := ParseNotification(f)
		var mf *MissingFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, missing, mf.Field)
	}
}

func TestValidator(t *testing.T) {
	var sent url.Values
	calls := 0
	v := &Validator{
		URL:     "https://example/validate",
		Retries: 3,
		Post: func(ctx context.Context, target string, form url.Values) (string, error) {
			calls++
			sent = form
			if calls < 2 {
				return "", errors.New("connection reset")
			}
			return "VALID\n", nil
		},
	}
	err := v.Validate(context.Background(), map[string]string{"m_payment_id": "7", "signature": "abc"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "7", sent.Get("m_payment_id"))
	assert.False(t, sent.Has("signature"))
}

func TestValidator_Invalid(t *testing.T) {
	v := &Validator{
		Retries: 1,
		Post: func(ctx context.Context, target string, form url.Values) (string, error) {
			return "INVALID", nil
		},
	}
	assert.ErrorIs(t, v.Validate(context.Background(), map[string]string{}), ErrNotValid)
}
