// Package redisstore mirrors the in-memory advisory session repository on
// Redis so sessions survive restarts when multiple instances share load.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agroshop-bot-be/internal/repository/contract"
	"agroshop-bot-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

type AdvisorySessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAdvisorySessionRepository(client *redis.Client, ttl time.Duration) contract.AdvisorySessionRepository {
	return &AdvisorySessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func key(chatId int64) string {
	return fmt.Sprintf("advisory:session:%d", chatId)
}

func (r *AdvisorySessionRepository) Get(ctx context.Context, chatId int64) (*store.AdvisorySession, error) {
	raw, err := r.client.Get(ctx, key(chatId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session store.AdvisorySession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *AdvisorySessionRepository) Save(ctx context.Context, session *store.AdvisorySession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key(session.ChatID), raw, r.ttl).Err()
}

func (r *AdvisorySessionRepository) Delete(ctx context.Context, chatId int64) error {
	return r.client.Del(ctx, key(chatId)).Err()
}
