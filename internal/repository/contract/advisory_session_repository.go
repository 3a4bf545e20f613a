package contract

import (
	"context"

	"agroshop-bot-be/pkg/store"
)

// AdvisorySessionRepository holds the volatile consultation buffers. Entries
// expire on their own; a missing session is returned as (nil, nil).
type AdvisorySessionRepository interface {
	Get(ctx context.Context, chatId int64) (*store.AdvisorySession, error)
	Save(ctx context.Context, session *store.AdvisorySession) error
	Delete(ctx context.Context, chatId int64) error
}
