package implementation

import (
	"context"
	"errors"

	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/mapper"
	"agroshop-bot-be/internal/model"
	"agroshop-bot-be/internal/repository/contract"
	"agroshop-bot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CartRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CartItemMapper
}

func NewCartRepository(db *gorm.DB) contract.CartRepository {
	return &CartRepositoryImpl{
		db:     db,
		mapper: mapper.NewCartItemMapper(),
	}
}

func (r *CartRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CartRepositoryImpl) GetLine(ctx context.Context, chatId int64, productId uint) (*entity.CartItem, error) {
	var m model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_chat_id = ? AND product_id = ?", chatId, productId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CartRepositoryImpl) ListLines(ctx context.Context, chatId int64) ([]entity.CartItem, error) {
	var models []model.CartItem
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.Filter("user_chat_id", chatId),
		specification.OrderBy{Field: "added_at"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CartRepositoryImpl) Create(ctx context.Context, line *entity.CartItem) error {
	m := r.mapper.ToModel(line)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*line = *r.mapper.ToEntity(m)
	return nil
}

func (r *CartRepositoryImpl) Update(ctx context.Context, line *entity.CartItem) error {
	m := r.mapper.ToModel(line)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*line = *r.mapper.ToEntity(m)
	return nil
}

func (r *CartRepositoryImpl) DeleteLine(ctx context.Context, chatId int64, productId uint) error {
	return r.db.WithContext(ctx).
		Where("user_chat_id = ? AND product_id = ?", chatId, productId).
		Delete(&model.CartItem{}).Error
}

func (r *CartRepositoryImpl) Clear(ctx context.Context, chatId int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_chat_id = ?", chatId).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
