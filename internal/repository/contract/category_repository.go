package contract

import (
	"context"

	"agroshop-bot-be/internal/entity"
)

type CategoryRepository interface {
	GetById(ctx context.Context, id uint) (*entity.Category, error)
	ListRoots(ctx context.Context) ([]entity.Category, error)
	ListChildren(ctx context.Context, parentId uint) ([]entity.Category, error)
	Upsert(ctx context.Context, category *entity.Category) error
}
