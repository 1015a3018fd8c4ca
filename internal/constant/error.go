package constant

import (
	"errors"
	"fmt"
)

// Error is a business error carrying a response code.
type Error interface {
	error
	Code() int
	Message() string
	WithData(data interface{}) Error
	Data() interface{}
}

type CustomError struct {
	code    int
	message string
	data    interface{}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.code, e.message)
}

func (e *CustomError) Code() int {
	return e.code
}

func (e *CustomError) Message() string {
	return e.message
}

func (e *CustomError) Data() interface{} {
	return e.data
}

// WithData returns a copy so shared sentinel errors stay untouched.
func (e *CustomError) WithData(data interface{}) Error {
	cp := *e
	cp.data = data
	return &cp
}

func NewError(code int) Error {
	if info, exists := ErrorMessages[code]; exists {
		return &CustomError{code: code, message: info.Msg}
	}
	return &CustomError{code: code, message: "Unknown error"}
}

// NewErrorMsg overrides the default message for code.
func NewErrorMsg(code int, msg string) Error {
	return &CustomError{code: code, message: msg}
}

func GetErrorInfo(code int) (ErrorInfo, bool) {
	info, exists := ErrorMessages[code]
	return info, exists
}

// CodeOf extracts the code from err, falling back to CodeSystemError.
func CodeOf(err error) int {
	var ce Error
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return CodeSystemError
}
