package contract

import (
	"context"

	"agroshop-bot-be/internal/entity"
)

type ProductRepository interface {
	GetById(ctx context.Context, id uint) (*entity.Product, error)
	ListByCategory(ctx context.Context, categoryId uint, limit, offset int) ([]entity.Product, error)
	CountByCategory(ctx context.Context, categoryId uint) (int64, error)
	Search(ctx context.Context, term string, limit int) ([]entity.Product, error)
	Upsert(ctx context.Context, product *entity.Product) error
}
