package cache

import (
	"os"
	"time"

	"github.com/gomodule/redigo/redis"
)

// CreateRedisPool backs the socket server; every game action borrows a
// connection for its turn flags and returns it.
func CreateRedisPool() *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		MaxActive:   32,
		IdleTimeout: 60 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", os.Getenv("REDIS_URL"))
		},
	}
}

// CreateRedisConnection is for one-off callers outside the pool, like
// the HTTP reset handler.
func CreateRedisConnection() (redis.Conn, error) {
	return redis.Dial("tcp", os.Getenv("REDIS_URL"))
}
