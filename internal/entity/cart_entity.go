package entity

import "time"

// CartItem is one accumulated line per (user, product). Name, price and
// image are denormalized at add time so the line stays meaningful even if
// the catalog later changes that product.
type CartItem struct {
	Id           uint
	UserChatId   int64
	ProductId    uint
	ProductName  string
	ProductPrice float64
	ProductImage *string
	Quantity     float64
	Unit         string
	AddedAt      time.Time
}

// LineTotal is price × quantity for this line.
func (c *CartItem) LineTotal() float64 {
	return c.ProductPrice * c.Quantity
}
