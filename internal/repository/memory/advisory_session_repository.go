package memory

import (
	"context"
	"strconv"
	"time"

	"agroshop-bot-be/internal/repository/contract"
	"agroshop-bot-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type AdvisorySessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewAdvisorySessionRepository(ttl time.Duration) contract.AdvisorySessionRepository {
	// Purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &AdvisorySessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

func key(chatId int64) string {
	return strconv.FormatInt(chatId, 10)
}

// Get hands out a copy so callers never alias the cached session.
func (r *AdvisorySessionRepository) Get(ctx context.Context, chatId int64) (*store.AdvisorySession, error) {
	if x, found := r.cache.Get(key(chatId)); found {
		return x.(*store.AdvisorySession).Clone(), nil
	}
	return nil, nil
}

func (r *AdvisorySessionRepository) Save(ctx context.Context, session *store.AdvisorySession) error {
	r.cache.Set(key(session.ChatID), session.Clone(), cache.DefaultExpiration)
	return nil
}

func (r *AdvisorySessionRepository) Delete(ctx context.Context, chatId int64) error {
	r.cache.Delete(key(chatId))
	return nil
}
