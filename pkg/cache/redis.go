package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore 多实例部署时替代 MemoryStore，过期由 Redis 负责
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil 和连接错误都视为未命中，聚合会照常执行
		return nil, false
	}
	return data, true
}

func (s *RedisStore) Set(ctx context.Context, key string, val []byte) {
	s.client.Set(ctx, key, val, s.ttl)
}

func (s *RedisStore) Delete(ctx context.Context, key string) {
	s.client.Del(ctx, key)
}

func (s *RedisStore) TTL() time.Duration {
	return s.ttl
}
