package contract

import (
	"context"

	"agroshop-bot-be/internal/entity"
)

type CartRepository interface {
	GetLine(ctx context.Context, chatId int64, productId uint) (*entity.CartItem, error)
	ListLines(ctx context.Context, chatId int64) ([]entity.CartItem, error)
	Create(ctx context.Context, line *entity.CartItem) error
	Update(ctx context.Context, line *entity.CartItem) error
	DeleteLine(ctx context.Context, chatId int64, productId uint) error
	Clear(ctx context.Context, chatId int64) (int64, error)
}
