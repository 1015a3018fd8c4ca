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

type CheckoutHandler struct {
	svc *service.CheckoutService
	log *logrus.Logger
}

func NewCheckoutHandler(svc *service.CheckoutService, log *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, log: log}
}

// Checkout POST /api/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithField("trace_id", middleware.TraceID(c)).Infof("[Checkout] bind failed: %v", err)
		writeCode(c, constant.CodeInvalidParams)
		return
	}
	resp, err := h.svc.Checkout(req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// PaymentStatus GET /api/payments/:m_payment_id
func (h *CheckoutHandler) PaymentStatus(c *gin.Context) {
	resp, err := h.svc.GetPaymentStatus(c.Param("m_payment_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}
