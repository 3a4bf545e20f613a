package mapper

import (
	"agroshop-bot-be/internal/entity"
	"agroshop-bot-be/internal/model"
)

type CartItemMapper struct{}

func NewCartItemMapper() *CartItemMapper {
	return &CartItemMapper{}
}

func (m *CartItemMapper) ToEntity(c *model.CartItem) *entity.CartItem {
	if c == nil {
		return nil
	}
	return &entity.CartItem{
		Id:           c.Id,
		UserChatId:   c.UserChatId,
		ProductId:    c.ProductId,
		ProductName:  c.ProductName,
		ProductPrice: c.ProductPrice,
		ProductImage: c.ProductImage,
		Quantity:     c.Quantity,
		Unit:         c.Unit,
		AddedAt:      c.AddedAt,
	}
}

func (m *CartItemMapper) ToEntities(cs []model.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, 0, len(cs))
	for i := range cs {
		out = append(out, *m.ToEntity(&cs[i]))
	}
	return out
}

func (m *CartItemMapper) ToModel(c *entity.CartItem) *model.CartItem {
	if c == nil {
		return nil
	}
	return &model.CartItem{
		Id:           c.Id,
		UserChatId:   c.UserChatId,
		ProductId:    c.ProductId,
		ProductName:  c.ProductName,
		ProductPrice: c.ProductPrice,
		ProductImage: c.ProductImage,
		Quantity:     c.Quantity,
		Unit:         c.Unit,
		AddedAt:      c.AddedAt,
	}
}
