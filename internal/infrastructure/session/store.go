// Package session caches the logged-in person record in Redis so it
// survives app restarts. A record is written as one JSON document in a
// single SET, so a concurrent reader never observes a partial write.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/config"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
)

const sessionTTL = 30 * 24 * time.Hour

// Record is the cached view of the current session. Only login, logout
// and a successful profile edit write it.
type Record struct {
	AccountUUID uuid.UUID   `json:"account_uuid"`
	PersonUUID  uuid.UUID   `json:"person_uuid"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Type        person.Type `json:"type"`
	LoggedInAt  time.Time   `json:"logged_in_at"`
}

type Store struct {
	logger *zap.Logger
	client *redis.Client
}

func New(ctx context.Context, logger *zap.Logger, cfg config.Redis) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("redis connected successfully")

	return &Store{logger: logger, client: client}, nil
}

// NewWithClient wires an existing client; tests use it with miniredis.
func NewWithClient(logger *zap.Logger, client *redis.Client) *Store {
	return &Store{logger: logger, client: client}
}

func sessionKey(accountUUID uuid.UUID) string {
	return "session:" + accountUUID.String()
}

// Get returns the cached record, or nil when no session is cached.
func (s *Store) Get(ctx context.Context, accountUUID uuid.UUID) (*Record, error) {
	raw, err := s.client.Get(ctx, sessionKey(accountUUID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	rec := new(Record)
	if err = json.Unmarshal(raw, rec); err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}

	return rec, nil
}

func (s *Store) Set(ctx context.Context, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(rec.AccountUUID), raw, sessionTTL).Err()
}

func (s *Store) Clear(ctx context.Context, accountUUID uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(accountUUID)).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
