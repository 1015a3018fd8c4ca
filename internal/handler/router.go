package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"swim-shop-api/internal/middleware"
	"swim-shop-api/internal/service"
)

// Deps are the services the HTTP surface is built from.
type Deps struct {
	Checkout       *service.CheckoutService
	Notification   *service.NotificationService
	Signature      *service.SignatureService
	Catalog        *service.CatalogService
	Reviews        *service.ReviewService
	Newsletter     *service.NewsletterService
	SourceGuard    *service.SourceGuard
	InfoLog        *logrus.Logger
	ErrorLog       *logrus.Logger
	TrustedProxies []string
}

func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(middleware.TraceAuditMiddleware(), middleware.Recover(d.ErrorLog), middleware.RequestLogger(d.InfoLog, d.ErrorLog))

	ch := NewCheckoutHandler(d.Checkout, d.ErrorLog)
	ph := NewPaymentHandler(d.Signature, d.Notification, d.InfoLog)
	cat := NewCatalogHandler(d.Catalog, d.Reviews, d.Newsletter, d.ErrorLog)

	api := r.Group("/api")
	{
		api.POST("/checkout", ch.Checkout)
		api.GET("/payments/:m_payment_id", ch.PaymentStatus)

		api.POST("/generate-payfast-signature", ph.GenerateSignature)
		api.POST("/payment-notification", middleware.ITNSourceGuard(d.SourceGuard, d.InfoLog), ph.PaymentNotification)

		api.GET("/products", cat.ListProducts)
		api.GET("/products/:id", cat.GetProduct)
		api.GET("/reviews", cat.ListReviews)
		api.POST("/reviews", cat.CreateReview)
		api.POST("/newsletter", cat.Subscribe)
	}
	return r, nil
}
