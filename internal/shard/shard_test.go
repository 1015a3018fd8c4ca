package shard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCRC32ShardStrategy(t *testing.T) {
	strategy := NewCRC32Strategy(4)
	for _, id := range []uint64{0, 1, 123456789, 1<<63 + 5} {
		shard := strategy.GetShard(id)
		assert.GreaterOrEqual(t, shard, 0)
		assert.Less(t, shard, 4)
		assert.Equal(t, shard, strategy.GetShard(id), "stable for %d", id)
	}
}

func TestShardEngine_GetTable(t *testing.T) {
	engine := NewShardEngine("pf_itn_log", 4)
	ts := time.Date(2025, 9, 12, 12, 0, 0, 0, time.Local)
	table := engine.GetTable(987654321, ts)

	assert.True(t, strings.HasPrefix(table, "pf_itn_log_202509_p"), table)
	assert.Contains(t, engine.AllTables(ts), table)
}

func TestShardEngine_GetTable_ZeroTime(t *testing.T) {
	engine := NewShardEngine("pf_itn_log", 2)
	table := engine.GetTable(1, time.Time{})
	assert.True(t, strings.HasPrefix(table, "pf_itn_log_"+time.Now().Format("200601")), table)
}

func TestShardEngine_AllTables(t *testing.T) {
	engine := NewShardEngine("pf_itn_log", 3)
	ts := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"pf_itn_log_202601_p0", "pf_itn_log_202601_p1", "pf_itn_log_202601_p2"}, engine.AllTables(ts))
}
