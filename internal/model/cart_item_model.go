package model

import "time"

type CartItem struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	UserChatId   int64     `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductId    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductName  string    `gorm:"type:varchar(255);not null"`
	ProductPrice float64   `gorm:"not null"`
	ProductImage *string   `gorm:"type:varchar(1024)"`
	Quantity     float64   `gorm:"not null;default:1"`
	Unit         string    `gorm:"type:varchar(32);not null;default:'pc'"`
	AddedAt      time.Time `gorm:"autoCreateTime"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
