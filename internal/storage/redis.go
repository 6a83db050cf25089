package storage

import (
	"github.com/redis/go-redis/v9"
)

func RedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0, // use default DB
	})
}
