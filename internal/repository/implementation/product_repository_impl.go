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
	"gorm.io/gorm/clause"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) GetById(ctx context.Context, id uint) (*entity.Product, error) {
	var m model.Product
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) ListByCategory(ctx context.Context, categoryId uint, limit, offset int) ([]entity.Product, error) {
	var models []model.Product
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByCategory{CategoryId: categoryId},
		specification.AvailableOnly{},
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) CountByCategory(ctx context.Context, categoryId uint) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}),
		specification.ByCategory{CategoryId: categoryId},
		specification.AvailableOnly{},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepositoryImpl) Search(ctx context.Context, term string, limit int) ([]entity.Product, error) {
	var models []model.Product
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.NameContains{Term: term},
		specification.AvailableOnly{},
		specification.OrderBy{Field: "name"},
		specification.Pagination{Limit: limit},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) Upsert(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "price", "available", "image_url", "category_id"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}
