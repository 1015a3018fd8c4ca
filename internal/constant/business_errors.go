package constant

// Business codes (2xxx)

// Catalog
const (
	CodeProductNotFound    = 2000
	CodeProductOutOfStock  = 2001
	CodeProductSizeInvalid = 2002
)

// Cart / checkout
const (
	CodeCartEmpty            = 2100
	CodeShippingInvalid      = 2101
	CodeDiscountCodeInvalid  = 2102
	CodeOrderAmountInvalid   = 2103
	CodeQuantityInvalid      = 2104
	CodeTermsNotAccepted     = 2105
	CodePaymentNotFound      = 2106
	CodePaymentAmountError   = 2107
)

// Reviews
const (
	CodeReviewRatingInvalid = 2200
	CodeReviewInvalid       = 2201
)

// Newsletter
const (
	CodeEmailInvalid = 2300
)

// Gateway (3xxx)
const (
	CodeGatewayError    = 3000
	CodeGatewayRejected = 3001
)
