package utils

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient is a thin wrapper around go-redis used to cache reaction
// aggregates per target. All methods are nil-receiver safe so the cache can be
// disabled (e.g. in tests or when REDIS_HOST is unset) without branching at
// every call site.
type RedisClient struct {
	inner *redis.Client
}

const reactionCountsTTL = 5 * time.Minute

var ctx = context.Background()

// GetRedisClient returns a client for the instance configured by env, or nil
// when no REDIS_HOST is configured.
func GetRedisClient() *RedisClient {
	if os.Getenv("REDIS_HOST") == "" {
		return nil
	}
	return &RedisClient{
		inner: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
			Password: os.Getenv("REDIS_PASSWD"),
			DB:       0, // use default DB
		})}
}

func TweetReactionsKey(tweetId string) string {
	return fmt.Sprintf("reactions_tweet_%s", tweetId)
}

func CommentReactionsKey(commentId string) string {
	return fmt.Sprintf("reactions_comment_%s", commentId)
}

// GetReactionCounts returns the cached slug->count mapping for key, and
// whether the cache had an entry. Empty aggregates are cached with a
// sentinel field so "no reactions" doesn't read as a miss.
func (r *RedisClient) GetReactionCounts(key string) (map[string]int, bool) {
	if r == nil || r.inner == nil {
		return nil, false
	}
	fields, err := r.inner.HGetAll(ctx, key).Result()
	if err != nil || len(fields) == 0 {
		return nil, false
	}
	counts := map[string]int{}
	for slug, v := range fields {
		if slug == "_empty" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false
		}
		counts[slug] = n
	}
	return counts, true
}

// SetReactionCounts stores the slug->count mapping for key with a short TTL.
func (r *RedisClient) SetReactionCounts(key string, counts map[string]int) error {
	if r == nil || r.inner == nil {
		return nil
	}
	fields := []interface{}{"_empty", "1"}
	for slug, n := range counts {
		fields = append(fields, slug, strconv.Itoa(n))
	}
	pipe := r.inner.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields...)
	pipe.Expire(ctx, key, reactionCountsTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// InvalidateReactionCounts drops the cached aggregate for key. Called inside
// every successful tap so readers never see a stale count for long.
func (r *RedisClient) InvalidateReactionCounts(key string) error {
	if r == nil || r.inner == nil {
		return nil
	}
	return r.inner.Del(ctx, key).Err()
}
