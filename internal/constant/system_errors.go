package constant

// System level codes (1xxx)
const (
	CodeSuccess            = 0
	CodeSystemError        = 1000
	CodeDatabaseError      = 1001
	CodeInternalError      = 1003
	CodeServiceUnavailable = 1004
	CodeTimeout            = 1005
	CodeDuplicateRequest   = 1006
)

// Parameter errors
const (
	CodeInvalidParams     = 1100
	CodeMissingParams     = 1101
	CodeParamsFormatError = 1102
	CodeParamsTypeError   = 1103
)

// Auth errors
const (
	CodeUnauthorized     = 1200
	CodeSignatureError   = 1203
	CodeAccessDenied     = 1204
	CodeIPNotWhitelisted = 1205
)
