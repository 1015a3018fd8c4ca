package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"swim-shop-api/internal/config"
	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dao"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/idgen"
	paymentmodel "swim-shop-api/internal/model/payment"
	"swim-shop-api/internal/payfast"
	"swim-shop-api/internal/utils"
)

const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

type CheckoutService struct {
	productDao *dao.ProductDao
	paymentDao *dao.PaymentDao
	payfast    config.PayFastCfg
	currency   string
	minAmount  decimal.Decimal
	shipping   map[string]decimal.Decimal
	discounts  map[string]decimal.Decimal
	newID      idgen.Generator
	log        *logrus.Logger
}

// NewCheckoutService parses the configured amounts once; config.Validate has
// already checked them, so a bad value here is a programming error.
func NewCheckoutService(db *gorm.DB, pf config.PayFastCfg, co config.CheckoutCfg, newID idgen.Generator, log *logrus.Logger) *CheckoutService {
	discounts := make(map[string]decimal.Decimal, len(co.DiscountCodes))
	for code, amount := range co.DiscountCodes {
		discounts[strings.ToUpper(strings.TrimSpace(code))] = utils.MustAmount(amount)
	}
	return &CheckoutService{
		productDao: dao.NewProductDao(db),
		paymentDao: dao.NewPaymentDao(db),
		payfast:    pf,
		currency:   co.Currency,
		minAmount:  utils.MustAmount(co.MinAmount),
		shipping: map[string]decimal.Decimal{
			ShippingStandard: utils.MustAmount(co.Shipping.Standard),
			ShippingExpress:  utils.MustAmount(co.Shipping.Express),
		},
		discounts: discounts,
		newID:     newID,
		log:       log,
	}
}

type pricedCart struct {
	lines    []dto.CheckoutLine
	subtotal decimal.Decimal
	shipping decimal.Decimal
	discount decimal.Decimal
	total    decimal.Decimal
	method   string
	code     string
}

// price validates the cart against the catalog. Client prices are never read.
func (s *CheckoutService) price(req dto.CheckoutReq) (*pricedCart, error) {
	if len(req.Items) == 0 {
		return nil, constant.NewError(constant.CodeCartEmpty)
	}

	ids := make([]uint64, 0, len(req.Items))
	wanted := make(map[uint64]int)
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, constant.NewError(constant.CodeQuantityInvalid).WithData(map[string]any{"product_id": it.ProductID})
		}
		if _, seen := wanted[it.ProductID]; !seen {
			ids = append(ids, it.ProductID)
		}
		wanted[it.ProductID] += it.Quantity
	}

	products, err := s.productDao.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	for _, id := range ids {
		p, ok := products[id]
		if !ok {
			return nil, constant.NewError(constant.CodeProductNotFound).WithData(map[string]any{"product_id": id})
		}
		if p.Stock < wanted[id] {
			return nil, constant.NewError(constant.CodeProductOutOfStock).WithData(map[string]any{
				"product_id": id,
				"available":  p.Stock,
			})
		}
	}

	cart := &pricedCart{subtotal: decimal.Zero, discount: decimal.Zero}
	for _, it := range req.Items {
		p := products[it.ProductID]
		size := strings.TrimSpace(it.Size)
		if !p.HasSize(size) {
			return nil, constant.NewError(constant.CodeProductSizeInvalid).WithData(map[string]any{
				"product_id": p.ID,
				"size":       size,
				"sizes":      p.Sizes,
			})
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		cart.subtotal = cart.subtotal.Add(lineTotal)
		cart.lines = append(cart.lines, dto.CheckoutLine{
			ProductID: p.ID,
			Name:      p.Name,
			Size:      size,
			Quantity:  it.Quantity,
			UnitPrice: utils.FormatAmount(p.Price),
			LineTotal: utils.FormatAmount(lineTotal),
		})
	}

	cart.method = strings.ToLower(strings.TrimSpace(req.ShippingMethod))
	if cart.method == "" {
		cart.method = ShippingStandard
	}
	fee, ok := s.shipping[cart.method]
	if !ok {
		return nil, constant.NewError(constant.CodeShippingInvalid)
	}
	cart.shipping = fee

	cart.code = strings.ToUpper(strings.TrimSpace(req.DiscountCode))
	if cart.code != "" {
		d, ok := s.discounts[cart.code]
		if !ok {
			return nil, constant.NewError(constant.CodeDiscountCodeInvalid)
		}
		cart.discount = d
	}

	cart.total = cart.subtotal.Add(cart.shipping).Sub(cart.discount)
	if cart.total.LessThan(s.minAmount) {
		return nil, constant.NewError(constant.CodeOrderAmountInvalid).WithData(map[string]any{
			"amount":  utils.FormatAmount(cart.total),
			"minimum": utils.FormatAmount(s.minAmount),
		})
	}
	return cart, nil
}

// Checkout prices the cart, records an INITIATED attempt and returns the signed
// form the browser posts to the gateway.
func (s *CheckoutService) Checkout(req dto.CheckoutReq) (*dto.CheckoutResp, error) {
	if !req.AgreeToTerms {
		return nil, constant.NewError(constant.CodeTermsNotAccepted)
	}
	cart, err := s.price(req)
	if err != nil {
		return nil, err
	}

	id := s.newID()
	mPaymentID := strconv.FormatUint(id, 10)
	itemName := "Order " + mPaymentID
	buyerName := strings.TrimSpace(req.FirstName + " " + req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	attempt := &paymentmodel.PaymentAttempt{
		MPaymentID:     id,
		Amount:         cart.total,
		Currency:       s.currency,
		ItemName:       itemName,
		Items:          utils.MapToJSON(cart.lines),
		Subtotal:       cart.subtotal,
		Shipping:       cart.shipping,
		Discount:       cart.discount,
		ShippingMethod: cart.method,
		DiscountCode:   cart.code,
		BuyerEmail:     email,
		BuyerName:      buyerName,
		Status:         paymentmodel.AttemptInitiated,
	}
	if err := s.paymentDao.Insert(attempt); err != nil {
		s.log.Errorf("[Checkout] insert attempt %s failed: %v", mPaymentID, err)
		return nil, constant.NewError(constant.CodeDatabaseError)
	}

	pfReq := payfast.PaymentRequest{
		MerchantID:      s.payfast.MerchantID,
		MerchantKey:     s.payfast.MerchantKey,
		ReturnURL:       s.payfast.BaseURL + "/payment-success?m_payment_id=" + mPaymentID,
		CancelURL:       s.payfast.BaseURL + "/payment-cancelled?m_payment_id=" + mPaymentID,
		NotifyURL:       s.payfast.BaseURL + "/api/payment-notification",
		NameFirst:       strings.TrimSpace(req.FirstName),
		NameLast:        strings.TrimSpace(req.LastName),
		EmailAddress:    email,
		MPaymentID:      mPaymentID,
		Amount:          utils.FormatAmount(cart.total),
		ItemName:        itemName,
		ItemDescription: describe(cart.lines),
	}

	s.log.Infof("[Checkout] attempt created m_payment_id=%s amount=%s lines=%d", mPaymentID, pfReq.Amount, len(cart.lines))

	return &dto.CheckoutResp{
		Action:     payfast.ProcessURL(s.payfast.Sandbox),
		MPaymentID: mPaymentID,
		Subtotal:   utils.FormatAmount(cart.subtotal),
		Shipping:   utils.FormatAmount(cart.shipping),
		Discount:   utils.FormatAmount(cart.discount),
		Amount:     pfReq.Amount,
		Lines:      cart.lines,
		Fields:     pfReq.OrderedFields(),
		Signature:  pfReq.Sign(s.payfast.Passphrase),
	}, nil
}

// describe lists line items for item_description, capped at the gateway's 255 chars.
func describe(lines []dto.CheckoutLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		p := fmt.Sprintf("%dx %s", l.Quantity, l.Name)
		if l.Size != "" {
			p += " (" + l.Size + ")"
		}
		parts = append(parts, p)
	}
	sort.Strings(parts)
	out := strings.Join(parts, ", ")
	if len(out) <= 255 {
		return out
	}
	n := 252
	for n > 0 && !utf8.RuneStart(out[n]) {
		n--
	}
	return out[:n] + "..."
}

// GetPaymentStatus backs the return page; it never exposes buyer details.
func (s *CheckoutService) GetPaymentStatus(mPaymentID string) (*dto.PaymentStatusResp, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(mPaymentID), 10, 64)
	if err != nil {
		return nil, constant.NewError(constant.CodePaymentNotFound)
	}
	a, err := s.paymentDao.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	if a == nil {
		return nil, constant.NewError(constant.CodePaymentNotFound)
	}
	return &dto.PaymentStatusResp{
		MPaymentID:  mPaymentID,
		Status:      string(a.Status),
		Amount:      utils.FormatAmount(a.Amount),
		Currency:    a.Currency,
		PfPaymentID: a.PfPaymentID,
		Confirmed:   a.ConfirmedAt != nil,
	}, nil
}
