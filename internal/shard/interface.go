package shard

type ShardStrategy interface {
	GetShard(id uint64) int
}
