package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the named blobs in Redis, for running several instances
// against shared state. The blob contract is identical to the file store.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisStore{client: client, prefix: "urbanthreads:"}, nil
}

func (s *RedisStore) Get(key string) ([]byte, error) {
	data, err := s.client.Get(context.Background(), s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *RedisStore) Set(key string, value []byte) error {
	return s.client.Set(context.Background(), s.prefix+key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), s.prefix+key).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
