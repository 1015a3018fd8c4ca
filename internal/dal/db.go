package dal

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"swim-shop-api/internal/config"
	catalogmodel "swim-shop-api/internal/model/catalog"
	paymentmodel "swim-shop-api/internal/model/payment"
)

var DB *gorm.DB

func InitDB() {
	c := config.C.Mysql
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset)

	level := logger.Warn
	if c.LogSQL {
		level = logger.Info
	}
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		log.Fatalf("connect db failed: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)

	if err := Migrate(db); err != nil {
		log.Fatalf("migrate db failed: %v", err)
	}
	DB = db
}

// Migrate creates the non-sharded tables. ITN log shards are created on first write.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogmodel.Product{},
		&catalogmodel.Review{},
		&catalogmodel.Subscriber{},
		&paymentmodel.PaymentAttempt{},
	)
}
