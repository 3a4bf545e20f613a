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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CategoryRepositoryImpl) GetById(ctx context.Context, id uint) (*entity.Category, error) {
	var m model.Category
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CategoryRepositoryImpl) ListRoots(ctx context.Context) ([]entity.Category, error) {
	var models []model.Category
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.Roots{},
		specification.OrderBy{Field: "name"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CategoryRepositoryImpl) ListChildren(ctx context.Context, parentId uint) ([]entity.Category, error) {
	var models []model.Category
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByParent{ParentId: parentId},
		specification.OrderBy{Field: "name"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CategoryRepositoryImpl) Upsert(ctx context.Context, category *entity.Category) error {
	m := r.mapper.ToModel(category)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "parent_id"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*category = *r.mapper.ToEntity(m)
	return nil
}
