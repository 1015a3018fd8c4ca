package shard

import (
	"fmt"
	"log"
	"time"
)

// ShardEngine routes rows to <base>_<YYYYMM>_p<N> tables.
type ShardEngine struct {
	BaseTable  string
	ShardCount uint32
	Strategy   ShardStrategy
}

func NewShardEngine(base string, count uint32) *ShardEngine {
	return &ShardEngine{
		BaseTable:  base,
		ShardCount: count,
		Strategy:   NewCRC32Strategy(count),
	}
}

// GetTable picks the table for id at time t. A zero or pre-2000 time falls back to now.
func (e *ShardEngine) GetTable(id uint64, t time.Time) string {
	if t.IsZero() || t.Year() < 2000 {
		log.Printf("[ShardEngine] invalid time %v, using now", t)
		t = time.Now()
	}
	month := t.Format("200601")
	shard := e.Strategy.GetShard(id)
	return fmt.Sprintf("%s_%s_p%d", e.BaseTable, month, shard)
}

// AllTables lists every shard for the month containing t.
func (e *ShardEngine) AllTables(t time.Time) []string {
	month := t.Format("200601")
	out := make([]string, 0, e.ShardCount)
	for i := uint32(0); i < e.ShardCount; i++ {
		out = append(out, fmt.Sprintf("%s_%s_p%d", e.BaseTable, month, i))
	}
	return out
}
