package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dao"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/logger"
	paymentmodel "swim-shop-api/internal/model/payment"
	"swim-shop-api/internal/payfast"
	"swim-shop-api/internal/testutil"
)

func newCheckout(t *testing.T) (*CheckoutService, *dao.PaymentDao) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db)
	svc := NewCheckoutService(db, testPayFast(), testCheckout(), fixedIDs(1234567890123), logger.Discard())
	return svc, dao.NewPaymentDao(db)
}

func checkoutReq(items ...dto.CartItemReq) dto.CheckoutReq {
	return dto.CheckoutReq{
		Items:          items,
		ShippingMethod: "standard",
		FirstName:      "Thandi",
		LastName:       "Mokoena",
		Email:          "Thandi@Example.com",
		AgreeToTerms:   true,
	}
}

func TestCheckout_SignedRequest(t *testing.T) {
	svc, payments := newCheckout(t)
	req := checkoutReq(dto.CartItemReq{ProductID: 1, Size: "M", Quantity: 2})
	req.DiscountCode = " Summer10 "

	resp, err := svc.Checkout(req)
	require.NoError(t, err)

	assert.Equal(t, "https://sandbox.payfast.co.za/eng/process", resp.Action)
	assert.Equal(t, "1234567890123", resp.MPaymentID)
	assert.Equal(t, "900.00", resp.Subtotal)
	assert.Equal(t, "50.00", resp.Shipping)
	assert.Equal(t, "100.00", resp.Discount)
	assert.Equal(t, "850.00", resp.Amount)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "450.00", resp.Lines[0].UnitPrice)

	fields := map[string]string{}
	for _, f := range resp.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "10000100", fields["merchant_id"])
	assert.Equal(t, "Order 1234567890123", fields["item_name"])
	assert.Equal(t, "thandi@example.com", fields["email_address"])
	assert.Equal(t, "https://shop.example/api/payment-notification", fields["notify_url"])
	assert.Equal(t, "2x Coral Bikini Set (M)", fields["item_description"])
	assert.Equal(t, payfast.GenerateSignature(fields, testPassphrase), resp.Signature)

	a, err := payments.GetByID(1234567890123)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, paymentmodel.AttemptInitiated, a.Status)
	assert.Equal(t, "850.00", a.Amount.StringFixed(2))
	assert.Equal(t, "SUMMER10", a.DiscountCode)
	assert.Equal(t, "Thandi Mokoena", a.BuyerName)
}

func TestCheckout_ExpressNoDiscount(t *testing.T) {
	svc, _ := newCheckout(t)
	req := checkoutReq(dto.CartItemReq{ProductID: 2, Size: "L", Quantity: 1})
	req.ShippingMethod = "Express"

	resp, err := svc.Checkout(req)
	require.NoError(t, err)
	assert.Equal(t, "749.99", resp.Amount)
	assert.Equal(t, "0.00", resp.Discount)
}

func TestCheckout_Rejections(t *testing.T) {
	cases := []struct {
		name string
		req  func() dto.CheckoutReq
		code int
	}{
		{"terms", func() dto.CheckoutReq {
			r := checkoutReq(dto.CartItemReq{ProductID: 1, Size: "M", Quantity: 1})
			r.AgreeToTerms = false
			return r
		}, constant.CodeTermsNotAccepted},
		{"empty cart", func() dto.CheckoutReq { return checkoutReq() }, constant.CodeCartEmpty},
		{"zero quantity", func() dto.CheckoutReq {
			return checkoutReq(dto.CartItemReq{ProductID: 1, Size: "M", Quantity: 0})
		}, constant.CodeQuantityInvalid},
		{"unknown product", func() dto.CheckoutReq {
			return checkoutReq(dto.CartItemReq{ProductID: 99, Size: "M", Quantity: 1})
		}, constant.CodeProductNotFound},
		{"bad size", func() dto.CheckoutReq {
			return checkoutReq(dto.CartItemReq{ProductID: 1, Size: "XL", Quantity: 1})
		}, constant.CodeProductSizeInvalid},
		{"sold out", func() dto.CheckoutReq {
			return checkoutReq(dto.CartItemReq{ProductID: 3, Size: "OS", Quantity: 1})
		}, constant.CodeProductOutOfStock},
		{"stock across lines", func() dto.CheckoutReq {
			return checkoutReq(
				dto.CartItemReq{ProductID: 2, Size: "M", Quantity: 1},
				dto.CartItemReq{ProductID: 2, Size: "L", Quantity: 2},
			)
		}, constant.CodeProductOutOfStock},
		{"shipping", func() dto.CheckoutReq {
			r := checkoutReq(dto.CartItemReq{ProductID: 1, Size: "M", Quantity: 1})
			r.ShippingMethod = "overnight"
			return r
		}, constant.CodeShippingInvalid},
		{"discount", func() dto.CheckoutReq {
			r := checkoutReq(dto.CartItemReq{ProductID: 1, Size: "M", Quantity: 1})
			r.DiscountCode = "BOGUS"
			return r
		}, constant.CodeDiscountCodeInvalid},
		{"below minimum", func() dto.CheckoutReq {
			r := checkoutReq(dto.CartItemReq{ProductID: 1, Size: "M", Quantity: 1})
			r.DiscountCode = "FREE"
			return r
		}, constant.CodeOrderAmountInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, payments := newCheckout(t)
			_, err := svc.Checkout(tc.req())
			require.Error(t, err)
			assert.Equal(t, tc.code, constant.CodeOf(err))

			a, err := payments.GetByID(1234567890123)
			require.NoError(t, err)
			assert.Nil(t, a, "no attempt on rejection")
		})
	}
}

func TestGetPaymentStatus(t *testing.T) {
	svc, _ := newCheckout(t)
	resp, err := svc.Checkout(checkoutReq(dto.CartItemReq{ProductID: 1, Size: "S", Quantity: 1}))
	require.NoError(t, err)

	st, err := svc.GetPaymentStatus(resp.MPaymentID)
	require.NoError(t, err)
	assert.Equal(t, "INITIATED", st.Status)
	assert.Equal(t, "500.00", st.Amount)
	assert.False(t, st.Confirmed)

	_, err = svc.GetPaymentStatus("42")
	assert.Equal(t, constant.CodePaymentNotFound, constant.CodeOf(err))
	_, err = svc.GetPaymentStatus("abc")
	assert.Equal(t, constant.CodePaymentNotFound, constant.CodeOf(err))
}

func TestDescribe_Truncates(t *testing.T) {
	lines := make([]dto.CheckoutLine, 0)
	for i := 0; i < 30; i++ {
		lines = append(lines, dto.CheckoutLine{Name: "Coral Bikini Set", Quantity: 1, Size: "M"})
	}
	out := describe(lines)
	assert.Len(t, out, 255)
	assert.True(t, len(out) > 3 && out[252:] == "...")

	lines = lines[:0]
	for i := 0; i < 20; i++ {
		lines = append(lines, dto.CheckoutLine{Name: strings.Repeat("é", 12), Quantity: 1})
	}
	out = describe(lines)
	assert.True(t, utf8.ValidString(out), "%q", out[len(out)-8:])
	assert.Len(t, out, 254)
	assert.True(t, strings.HasSuffix(out, "é..."))
}
