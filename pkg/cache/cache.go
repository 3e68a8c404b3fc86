package cache

import (
	"context"
	"time"
)

// Store 短时缓存，value 为序列化后的载荷。
// 过期条目在下一次 Get 时惰性删除，没有后台清理协程。
// Delete 用于主动清掉无法反序列化的坏条目。
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	Delete(ctx context.Context, key string)
	TTL() time.Duration
}
