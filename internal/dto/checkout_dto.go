package dto

import "swim-shop-api/internal/payfast"

type CartItemReq struct {
	ProductID uint64 `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type CheckoutReq struct {
	Items          []CartItemReq `json:"items"`
	ShippingMethod string        `json:"shipping_method"`
	DiscountCode   string        `json:"discount_code"`
	FirstName      string        `json:"first_name" binding:"required,max=100"`
	LastName       string        `json:"last_name" binding:"max=100"`
	Email          string        `json:"email" binding:"required,email"`
	AgreeToTerms   bool          `json:"agree_to_terms"`
}

type CheckoutLine struct {
	ProductID uint64 `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type CheckoutResp struct {
	Action     string          `json:"action"`
	MPaymentID string          `json:"m_payment_id"`
	Subtotal   string          `json:"subtotal"`
	Shipping   string          `json:"shipping"`
	Discount   string          `json:"discount"`
	Amount     string          `json:"amount"`
	Lines      []CheckoutLine  `json:"lines"`
	Fields     []payfast.Field `json:"fields"`
	Signature  string          `json:"signature"`
}

type PaymentStatusResp struct {
	MPaymentID  string `json:"m_payment_id"`
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	PfPaymentID string `json:"pf_payment_id,omitempty"`
	Confirmed   bool   `json:"confirmed"`
}

type SignatureResp struct {
	Signature string `json:"signature"`
}
