package mapper

import (
	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:       c.Id,
		Name:     c.Name,
		ParentId: c.ParentId,
	}
}

func (m *CategoryMapper) ToEntities(cs []model.Category) []entity.Category {
	out := make([]entity.Category, 0, len(cs))
	for i := range cs {
		out = append(out, *m.ToEntity(&cs[i]))
	}
	return out
}

func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:       c.Id,
		Name:     c.Name,
		ParentId: c.ParentId,
	}
}

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Available:   p.Available,
		ImageURL:    p.ImageURL,
		CategoryId:  p.CategoryId,
	}
}

func (m *ProductMapper) ToEntities(ps []model.Product) []entity.Product {
	out := make([]entity.Product, 0, len(ps))
	for i := range ps {
		out = append(out, *m.ToEntity(&ps[i]))
	}
	return out
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Available:   p.Available,
		ImageURL:    p.ImageURL,
		CategoryId:  p.CategoryId,
	}
}
