package cache

import (
	"github.com/gomodule/redigo/redis"
)

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

func HSET(key string, field string, value interface{}, conn *redis.Conn) error {
	_, err := (*conn).Do("HSET", key, field, value)
	return err
}

func HGET(key string, field string, conn *redis.Conn) (string, error) {
	return redis.String((*conn).Do("HGET", key, field))
}

func HINCRBY(key string, field string, n int, conn *redis.Conn) (int, error) {
	return redis.Int((*conn).Do("HINCRBY", key, field, n))
}
