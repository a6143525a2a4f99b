package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"startup-reality-engine/domain"
)

// RedisCache keeps evaluation results in Redis so several engine instances
// can share one fingerprint cache. Results are stored as JSON without
// expiration, mirroring the insert-once semantics of the memory backend.
// Read or decode errors degrade to a cache miss.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (domain.EvaluationResult, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return domain.EvaluationResult{}, false
	}

	var result domain.EvaluationResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return domain.EvaluationResult{}, false
	}
	return result, true
}

func (r *RedisCache) Set(key string, result domain.EvaluationResult) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, key, encoded, 0).Err()
}
