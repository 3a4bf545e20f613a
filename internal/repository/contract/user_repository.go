package contract

import (
	"context"

	"agroshop-bot-be/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	GetByChatId(ctx context.Context, chatId int64) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
