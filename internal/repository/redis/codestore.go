package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joabe-nascimento/talents-flow/internal/config"
	"github.com/joabe-nascimento/talents-flow/internal/domain/twofactor"
)

// NewClient connects to Redis and verifies the connection.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// codeStore keeps pending two-factor codes in Redis so they expire
// server side and survive process restarts.
type codeStore struct {
	client *redis.Client
}

func NewCodeStore(client *redis.Client) twofactor.CodeStore {
	return &codeStore{client: client}
}

func (s *codeStore) Put(ctx context.Context, userID, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, codeKey(userID), code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}
	return nil
}

func (s *codeStore) Get(ctx context.Context, userID string) (string, error) {
	code, err := s.client.Get(ctx, codeKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", twofactor.ErrCodeNotFound
		}
		return "", fmt.Errorf("failed to read verification code: %w", err)
	}
	return code, nil
}

func (s *codeStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, codeKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}
	return nil
}

func codeKey(userID string) string {
	return "twofactor:code:" + userID
}
