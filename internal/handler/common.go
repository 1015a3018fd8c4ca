package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/middleware"
	"swim-shop-api/internal/utils"
)

// httpStatus maps a response code to the HTTP status it is sent with.
func httpStatus(code int) int {
	switch {
	case code == constant.CodeSuccess:
		return http.StatusOK
	case code == constant.CodeDuplicateRequest:
		return http.StatusConflict
	case code == constant.CodeGatewayError, code == constant.CodeServiceUnavailable:
		return http.StatusBadGateway
	case code == constant.CodeTimeout:
		return http.StatusGatewayTimeout
	case code == constant.CodeAccessDenied, code == constant.CodeIPNotWhitelisted:
		return http.StatusForbidden
	case code == constant.CodeUnauthorized:
		return http.StatusUnauthorized
	case code == constant.CodeProductNotFound, code == constant.CodePaymentNotFound:
		return http.StatusNotFound
	case code >= 1000 && code < 1100:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// writeError renders err in the response envelope. Errors without a code are
// logged and hidden behind a generic 500.
func writeError(c *gin.Context, log *logrus.Logger, err error) {
	traceID := middleware.TraceID(c)
	var ce constant.Error
	if !errors.As(err, &ce) {
		log.WithField("trace_id", traceID).Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.ErrorWithTrace(constant.CodeSystemError, traceID))
		return
	}
	resp := utils.CustomErrorWithTrace(ce.Code(), ce.Message(), traceID)
	resp.Data = ce.Data()
	c.JSON(httpStatus(ce.Code()), resp)
}

func writeCode(c *gin.Context, code int) {
	c.JSON(httpStatus(code), utils.ErrorWithTrace(code, middleware.TraceID(c)))
}
