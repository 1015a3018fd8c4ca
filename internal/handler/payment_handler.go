package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/middleware"
	"swim-shop-api/internal/service"
	"swim-shop-api/internal/utils"
)

const notificationAck = "Payment notification received and verified"

type PaymentHandler struct {
	signer   *service.SignatureService
	notifier *service.NotificationService
	log      *logrus.Logger
}

func NewPaymentHandler(signer *service.SignatureService, notifier *service.NotificationService, log *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{signer: signer, notifier: notifier, log: log}
}

// GenerateSignature POST /api/generate-payfast-signature
func (h *PaymentHandler) GenerateSignature(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeCode(c, constant.CodeParamsFormatError)
		return
	}
	sig, err := h.signer.Sign(raw)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(dto.SignatureResp{Signature: sig}))
}

// PaymentNotification POST /api/payment-notification
func (h *PaymentHandler) PaymentNotification(c *gin.Context) {
	audit := middleware.Audit(c)
	if err := c.Request.ParseForm(); err != nil {
		h.log.Warnf("[ITN] trace_id=%s malformed form: %v", audit.TraceID, err)
		writeCode(c, constant.CodeParamsFormatError)
		return
	}
	fields := make(map[string]string, len(c.Request.PostForm))
	for k, v := range c.Request.PostForm {
		if len(v) != 1 {
			h.log.Warnf("[ITN] trace_id=%s repeated field %s", audit.TraceID, k)
			writeCode(c, constant.CodeParamsFormatError)
			return
		}
		fields[k] = v[0]
	}

	outcome, err := h.notifier.Handle(c.Request.Context(), fields, service.ITNMeta{
		TraceID: audit.TraceID,
		IP:      c.ClientIP(),
		Body:    audit.RequestBody,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	h.log.Infof("[ITN] trace_id=%s m_payment_id=%s outcome=%s", audit.TraceID, fields["m_payment_id"], outcome)
	c.JSON(http.StatusOK, utils.SuccessMsg(notificationAck))
}
