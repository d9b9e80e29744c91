package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// RdxGet fetches a cached value; returns "" on miss or error.
func RdxGet(ctx context.Context, key string) string {
	val, err := Conn.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("Redis GET error:", err)
		}
		return ""
	}
	return val
}

// RdxSet stores a value with a TTL.
func RdxSet(ctx context.Context, key, value string, ttl time.Duration) {
	if err := Conn.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Println("Redis SET error:", err)
	}
}

// RdxDel removes cached keys, used for invalidation after catalog edits.
func RdxDel(ctx context.Context, keys ...string) {
	if err := Conn.Del(ctx, keys...).Err(); err != nil {
		log.Println("Redis DEL error:", err)
	}
}
