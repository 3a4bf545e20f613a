package contract

import (
	"context"

	"agroshop-bot-be/internal/entity"
)

type ProductViewRepository interface {
	Create(ctx context.Context, view *entity.ProductView) error
	Count(ctx context.Context) (int64, error)
	CountByProduct(ctx context.Context, productId uint) (int64, error)
}

type ConsultationLogRepository interface {
	Create(ctx context.Context, log *entity.ConsultationLog) error
	ListByChatId(ctx context.Context, chatId int64, limit int) ([]entity.ConsultationLog, error)
	Count(ctx context.Context) (int64, error)
}
