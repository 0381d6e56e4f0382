package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	domainrepo "MarketPing/internal/domain/repository"
)

// RedisSubscriberStore keeps the subscriber set in a redis SET, so adds
// and removes are idempotent and survive restarts.
type RedisSubscriberStore struct {
	client *redis.Client
	key    string
}

func NewRedisSubscriberStore(client *redis.Client, key string) domainrepo.SubscriberStore {
	return &RedisSubscriberStore{client: client, key: key}
}

func (s *RedisSubscriberStore) Add(ctx context.Context, address string) error {
	if err := s.client.SAdd(ctx, s.key, address).Err(); err != nil {
		return fmt.Errorf("add subscriber: %w", err)
	}
	return nil
}

func (s *RedisSubscriberStore) Remove(ctx context.Context, address string) error {
	if err := s.client.SRem(ctx, s.key, address).Err(); err != nil {
		return fmt.Errorf("remove subscriber: %w", err)
	}
	return nil
}

func (s *RedisSubscriberStore) ListAll(ctx context.Context) ([]string, error) {
	addresses, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return addresses, nil
}

func (s *RedisSubscriberStore) Count(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}
