package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port           string   `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	TrustedProxies []string `mapstructure:"trustedProxies"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
	LogSQL       bool   `mapstructure:"logSql"`
}
type RabbitCfg struct {
	URL           string `mapstructure:"url"`
	PrefetchCount int    `mapstructure:"prefetchCount"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PayFastCfg merchant credentials and endpoints for the hosted gateway.
type PayFastCfg struct {
	MerchantID     string   `mapstructure:"merchantId"`
	MerchantKey    string   `mapstructure:"merchantKey"`
	Passphrase     string   `mapstructure:"passphrase"`
	Sandbox        bool     `mapstructure:"sandbox"`
	BaseURL        string   `mapstructure:"baseUrl"`
	ValidateITN    bool     `mapstructure:"validateItn"`
	AllowedSources []string `mapstructure:"allowedSources"`
	LockTTLSec     int      `mapstructure:"lockTtlSec"`
}

type ShippingCfg struct {
	Standard string `mapstructure:"standard"`
	Express  string `mapstructure:"express"`
}

type CheckoutCfg struct {
	Shipping      ShippingCfg       `mapstructure:"shipping"`
	DiscountCodes map[string]string `mapstructure:"discountCodes"`
	MinAmount     string            `mapstructure:"minAmount"`
	Currency      string            `mapstructure:"currency"`
}

type CatalogCfg struct {
	CacheTTLSec int `mapstructure:"cacheTtlSec"`
}

type TelegramCfg struct {
	ChatID string `mapstructure:"chatId"`
}

type ProjectCfg struct {
	Name   string `mapstructure:"name"`
	NodeID int64  `mapstructure:"nodeId"`
}

type Root struct {
	Project  ProjectCfg  `mapstructure:"project"`
	Server   ServerCfg   `mapstructure:"server"`
	Mysql    MysqlCfg    `mapstructure:"mysql"`
	RabbitMQ RabbitCfg   `mapstructure:"rabbitmq"`
	Redis    RedisCfg    `mapstructure:"redis"`
	PayFast  PayFastCfg  `mapstructure:"payfast"`
	Checkout CheckoutCfg `mapstructure:"checkout"`
	Catalog  CatalogCfg  `mapstructure:"catalog"`
	Telegram TelegramCfg `mapstructure:"telegram"`
}

var C Root

var (
	ErrMissingMerchant   = errors.New("payfast merchant id/key not configured")
	ErrMissingPassphrase = errors.New("payfast passphrase is required in live mode")
)

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	cfg, err := Load("config/config." + *env + ".yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if cfg.PayFast.Passphrase == "" {
		log.Printf("[config] WARNING payfast passphrase is empty, signatures are weaker")
	}
	C = *cfg
}

// Load reads a yaml file and lets environment variables override any key,
// e.g. PAYFAST_PASSPHRASE for payfast.passphrase.
func Load(path string) (*Root, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"payfast.passphrase":  "PAYFAST_PASSPHRASE",
		"payfast.merchantId":  "PAYFAST_MERCHANT_ID",
		"payfast.merchantKey": "PAYFAST_MERCHANT_KEY",
		"payfast.sandbox":     "PAYFAST_SANDBOX",
		"payfast.baseUrl":     "BASE_URL",
	} {
		_ = v.BindEnv(key, env)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var out Root
	if err := v.Unmarshal(&out); err != nil {
		return nil, err
	}
	out.applyDefaults()
	return &out, nil
}

func (r *Root) applyDefaults() {
	if strings.TrimSpace(r.Project.Name) == "" {
		r.Project.Name = "swim-shop"
	}
	if strings.TrimSpace(r.Server.Port) == "" {
		r.Server.Port = "8080"
	}
	if r.Mysql.Charset == "" {
		r.Mysql.Charset = "utf8mb4"
	}
	if r.PayFast.LockTTLSec <= 0 {
		r.PayFast.LockTTLSec = 30
	}
	r.PayFast.BaseURL = strings.TrimRight(r.PayFast.BaseURL, "/")
	if r.Checkout.Shipping.Standard == "" {
		r.Checkout.Shipping.Standard = "50.00"
	}
	if r.Checkout.Shipping.Express == "" {
		r.Checkout.Shipping.Express = "150.00"
	}
	if r.Checkout.MinAmount == "" {
		r.Checkout.MinAmount = "5.00"
	}
	if r.Checkout.Currency == "" {
		r.Checkout.Currency = "ZAR"
	}
	if r.Catalog.CacheTTLSec <= 0 {
		r.Catalog.CacheTTLSec = 300
	}
}

// Validate rejects configurations the payment flow cannot run with.
// An empty passphrase is tolerated in sandbox only.
func (r *Root) Validate() error {
	if strings.TrimSpace(r.PayFast.MerchantID) == "" || strings.TrimSpace(r.PayFast.MerchantKey) == "" {
		return ErrMissingMerchant
	}
	if !r.PayFast.Sandbox && r.PayFast.Passphrase == "" {
		return ErrMissingPassphrase
	}
	amounts := map[string]string{
		"checkout.shipping.standard": r.Checkout.Shipping.Standard,
		"checkout.shipping.express":  r.Checkout.Shipping.Express,
		"checkout.minAmount":         r.Checkout.MinAmount,
	}
	for code, amount := range r.Checkout.DiscountCodes {
		amounts["checkout.discountCodes."+code] = amount
	}
	for key, amount := range amounts {
		d, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil || d.IsNegative() {
			return fmt.Errorf("%s: invalid amount %q", key, amount)
		}
	}
	return nil
}
