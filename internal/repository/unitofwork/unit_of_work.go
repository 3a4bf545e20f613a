package unitofwork

import (
	"context"

	"agroshop-bot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CategoryRepository() contract.CategoryRepository
	ProductRepository() contract.ProductRepository
	CartRepository() contract.CartRepository
	ProductViewRepository() contract.ProductViewRepository
	ConsultationLogRepository() contract.ConsultationLogRepository
}
