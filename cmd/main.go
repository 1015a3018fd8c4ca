package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"swim-shop-api/internal/config"
	"swim-shop-api/internal/dal"
	"swim-shop-api/internal/handler"
	"swim-shop-api/internal/idgen"
	"swim-shop-api/internal/logger"
	"swim-shop-api/internal/mq"
	"swim-shop-api/internal/notify"
	"swim-shop-api/internal/service"
	"swim-shop-api/internal/shard"
	rediskey "swim-shop-api/internal/types/redis-key"
)

func main() {
	// load config env
	config.Init()
	cfg := config.C

	// init infra
	dal.InitDB()
	dal.InitRedis()
	if err := dal.InitRabbitMQ(); err != nil {
		log.Fatalf("rabbitmq init failed: %v", err)
	}
	shard.InitShardEngines()

	// idgen
	idgen.Init(cfg.Project.NodeID)

	infoLog := logger.NewLogger("info")
	errorLog := logger.NewLogger("error")
	itnLog := logger.NewLogger("itn")

	telegram := notify.NewTelegramNotifier(cfg.Telegram.ChatID)
	publisher := mq.NewPublisher()

	cache := dal.NewProductCache(dal.RedisClient, rediskey.CatalogProducts(cfg.Project.Name),
		time.Duration(cfg.Catalog.CacheTTLSec)*time.Second)
	catalog := service.NewCatalogService(dal.DB, cache, errorLog)

	// start consumers
	consumer := &mq.PaymentCompletedConsumer{
		Confirmer: service.NewConfirmationService(dal.DB, cache, telegram, infoLog),
		Retry:     publisher,
		Log:       infoLog,
	}
	go consumer.Start()

	// http server
	if cfg.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := handler.NewRouter(handler.Deps{
		Checkout: service.NewCheckoutService(dal.DB, cfg.PayFast, cfg.Checkout, idgen.New, infoLog),
		Notification: service.NewNotificationService(dal.DB, cfg.PayFast, cfg.Project.Name,
			dal.NewRedisLocker(dal.RedisClient), publisher, telegram,
			logger.NewITNLogWriter(dal.DB, shard.ITNLogShard), itnLog),
		Signature:      service.NewSignatureService(cfg.PayFast.Passphrase),
		Catalog:        catalog,
		Reviews:        service.NewReviewService(dal.DB, catalog, idgen.New, infoLog),
		Newsletter:     service.NewNewsletterService(dal.DB, infoLog),
		SourceGuard:    service.NewSourceGuard(cfg.PayFast.AllowedSources),
		InfoLog:        infoLog,
		ErrorLog:       errorLog,
		TrustedProxies: cfg.Server.TrustedProxies,
	})
	if err != nil {
		log.Fatalf("router init failed: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("listening %s (sandbox=%v)", srv.Addr, cfg.PayFast.Sandbox)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
