package constant

type ErrorInfo struct {
	Msg string `json:"msg"`
}

var ErrorMessages = map[int]ErrorInfo{
	CodeSuccess:            {"Success"},
	CodeSystemError:        {"System error"},
	CodeDatabaseError:      {"Database error"},
	CodeInternalError:      {"Internal Server Error"},
	CodeServiceUnavailable: {"Service unavailable"},
	CodeTimeout:            {"Request timeout"},
	CodeDuplicateRequest:   {"Request already in progress"},

	CodeInvalidParams:     {"Invalid parameters"},
	CodeMissingParams:     {"Missing required parameters"},
	CodeParamsFormatError: {"Malformed parameters"},
	CodeParamsTypeError:   {"Parameter type error"},

	CodeUnauthorized:     {"Unauthorized"},
	CodeSignatureError:   {"Invalid signature"},
	CodeAccessDenied:     {"Access denied"},
	CodeIPNotWhitelisted: {"Source not allowed"},

	CodeProductNotFound:    {"Product not found"},
	CodeProductOutOfStock:  {"Not enough stock"},
	CodeProductSizeInvalid: {"Size not available"},

	CodeCartEmpty:            {"Your cart is empty. Please add items before proceeding to checkout."},
	CodeShippingInvalid:      {"Invalid shipping method"},
	CodeDiscountCodeInvalid:  {"Invalid discount code."},
	CodeOrderAmountInvalid:   {"Order amount is below the minimum"},
	CodeQuantityInvalid:      {"Quantity must be at least 1"},
	CodeTermsNotAccepted:     {"Please agree to the terms and conditions before proceeding."},
	CodePaymentNotFound:      {"Payment not found"},
	CodePaymentAmountError:   {"Payment amount mismatch"},

	CodeReviewRatingInvalid: {"Rating must be between 1 and 5"},
	CodeReviewInvalid:       {"Product ID and review are required"},

	CodeEmailInvalid: {"Invalid email address"},

	CodeGatewayError:    {"Payment gateway unavailable"},
	CodeGatewayRejected: {"Payment gateway rejected the notification"},
}
