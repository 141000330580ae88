// Package sessions implements the session token gateway on Redis.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/skystore/skystore/internal/infrastructure/logging"
	"github.com/skystore/skystore/internal/shared/id"
	"github.com/skystore/skystore/internal/usecase"
)

// ErrNotFound is returned when a session token is unknown or expired.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// RedisConfig holds Redis connection settings and the session lifetime.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis stores session tokens as expiring Redis keys mapping to the
// owning user's ID.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, cfg RedisConfig, logger *logging.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &Redis{client: client, ttl: cfg.TTL, logger: logger}, nil
}

// Create issues a fresh session token for userID.
func (r *Redis) Create(ctx context.Context, userID uuid.UUID) (*usecase.Session, error) {
	sessionID := id.NewSessionID().String()
	if err := r.client.Set(ctx, keyPrefix+sessionID, userID.String(), r.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	r.logger.Debug("session created", zap.String("user_id", userID.String()))
	return &usecase.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(r.ttl),
	}, nil
}

// GetUserID resolves a session token to its user, or ErrNotFound.
func (r *Redis) GetUserID(ctx context.Context, sessionID string) (uuid.UUID, error) {
	value, err := r.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("load session: %w", err)
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt session value: %w", err)
	}
	return userID, nil
}

// Delete removes a session token. Absent tokens are not an error.
func (r *Redis) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
