package shard

var ITNLogShard *ShardEngine

func InitShardEngines() {
	ITNLogShard = NewShardEngine("pf_itn_log", 4)
}
