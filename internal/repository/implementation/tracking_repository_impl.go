package implementation

import (
	"context"

	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/mapper"
	"agroshop-bot-be/internal/model"
	"agroshop-bot-be/internal/repository/contract"
	"agroshop-bot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProductViewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductViewMapper
}

func NewProductViewRepository(db *gorm.DB) contract.ProductViewRepository {
	return &ProductViewRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductViewMapper(),
	}
}

func (r *ProductViewRepositoryImpl) Create(ctx context.Context, view *entity.ProductView) error {
	m := r.mapper.ToModel(view)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*view = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductViewRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ProductView{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductViewRepositoryImpl) CountByProduct(ctx context.Context, productId uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductView{}).
		Where("product_id = ?", productId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

type ConsultationLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConsultationLogMapper
}

func NewConsultationLogRepository(db *gorm.DB) contract.ConsultationLogRepository {
	return &ConsultationLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewConsultationLogMapper(),
	}
}

func (r *ConsultationLogRepositoryImpl) Create(ctx context.Context, log *entity.ConsultationLog) error {
	m, err := r.mapper.ToModel(log)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConsultationLogRepositoryImpl) ListByChatId(ctx context.Context, chatId int64, limit int) ([]entity.ConsultationLog, error) {
	var models []model.ConsultationLog
	query := specification.OrderBy{Field: "created_at", Desc: true}.Apply(
		r.db.WithContext(ctx).Where("user_chat_id = ?", chatId),
	)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entity.ConsultationLog, 0, len(models))
	for i := range models {
		out = append(out, *r.mapper.ToEntity(&models[i]))
	}
	return out, nil
}

func (r *ConsultationLogRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ConsultationLog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
