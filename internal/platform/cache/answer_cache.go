package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"code_tutor/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

const answerKeyPrefix = "answer:problem:"

// RedisAnswerCache stores answers as JSON under answer:problem:<problem number>.
type RedisAnswerCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisAnswerCache(rdb *redis.Client, ttl time.Duration) *RedisAnswerCache {
	return &RedisAnswerCache{rdb: rdb, ttl: ttl}
}

func AnswerKey(problemNumber string) string {
	return answerKeyPrefix + problemNumber
}

// Get returns nil, nil on a cache miss.
func (c *RedisAnswerCache) Get(ctx context.Context, problemNumber string) (*model.Answer, error) {
	raw, err := c.rdb.Get(ctx, AnswerKey(problemNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("RedisAnswerCache.Get: %w", err)
	}

	answer := &model.Answer{}
	if err := json.Unmarshal(raw, answer); err != nil {
		return nil, fmt.Errorf("RedisAnswerCache.Get: decode %s: %w", problemNumber, err)
	}
	return answer, nil
}

func (c *RedisAnswerCache) Set(ctx context.Context, answer *model.Answer) error {
	raw, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("RedisAnswerCache.Set: encode: %w", err)
	}
	if err := c.rdb.Set(ctx, AnswerKey(answer.ProblemNumber), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("RedisAnswerCache.Set: %w", err)
	}
	return nil
}

func (c *RedisAnswerCache) Delete(ctx context.Context, problemNumbers ...string) error {
	if len(problemNumbers) == 0 {
		return nil
	}
	keys := make([]string, 0, len(problemNumbers))
	for _, pn := range problemNumbers {
		keys = append(keys, AnswerKey(pn))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("RedisAnswerCache.Delete: %w", err)
	}
	return nil
}
