package logger

import (
	"fmt"
	"log"
	"sync"

	"gorm.io/gorm"

	paymentmodel "swim-shop-api/internal/model/payment"
	"swim-shop-api/internal/shard"
)

// ITNLogWriter persists verified notification deliveries into monthly shard tables.
type ITNLogWriter struct {
	DB     *gorm.DB
	Engine *shard.ShardEngine

	ready sync.Map // table name -> struct{}
}

func NewITNLogWriter(db *gorm.DB, engine *shard.ShardEngine) *ITNLogWriter {
	return &ITNLogWriter{DB: db, Engine: engine}
}

// Write stores entry in the background; failures are only logged.
func (w *ITNLogWriter) Write(entry paymentmodel.ITNLog) {
	if w == nil || w.DB == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ITNLog] goroutine panic: trace_id=%s, err=%v", entry.TraceID, r)
			}
		}()
		if err := w.WriteSync(entry); err != nil {
			log.Printf("[ITNLog] write failed: trace_id=%s, err=%v", entry.TraceID, err)
		}
	}()
}

// WriteSync creates the shard table on first use and inserts entry.
func (w *ITNLogWriter) WriteSync(entry paymentmodel.ITNLog) error {
	table := w.Engine.GetTable(entry.MPaymentID, entry.CreatedAt)
	if _, ok := w.ready.Load(table); !ok {
		if err := w.DB.Table(table).AutoMigrate(&paymentmodel.ITNLog{}); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
		w.ready.Store(table, struct{}{})
	}
	return w.DB.Table(table).Create(&entry).Error
}
