package cache

import (
	"os"
	"time"

	"github.com/gomodule/redigo/redis"
)

func redisURL() string {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return url
	}
	return "localhost:6379"
}

// CreateRedisPool returns the shared pool backing the lobby directory.
func CreateRedisPool() *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", redisURL()) },
	}
}

// CreateRedisConnection dials a single connection, for request-scoped use.
func CreateRedisConnection() (redis.Conn, error) {
	return redis.Dial("tcp", redisURL())
}
