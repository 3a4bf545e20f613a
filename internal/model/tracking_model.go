package model

import (
	"time"

	"gorm.io/datatypes"
)

type ProductView struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	UserChatId int64     `gorm:"not null;index"`
	ProductId  uint      `gorm:"not null;index"`
	Category   *string   `gorm:"type:varchar(255)"`
	Source     string    `gorm:"type:varchar(64);not null"`
	ViewedAt   time.Time `gorm:"autoCreateTime"`
}

func (ProductView) TableName() string {
	return "product_views"
}

type ConsultationLog struct {
	Id         uint           `gorm:"primaryKey;autoIncrement"`
	UserChatId int64          `gorm:"not null;index"`
	ProductId  uint           `gorm:"not null;index"`
	Question   string         `gorm:"type:text;not null"`
	Answer     string         `gorm:"type:text;not null"`
	Context    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (ConsultationLog) TableName() string {
	return "consultation_logs"
}
