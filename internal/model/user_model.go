package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId       int64      `gorm:"not null;uniqueIndex"`
	Username     *string    `gorm:"type:varchar(255)"`
	FirstName    *string    `gorm:"type:varchar(255)"`
	LastName     *string    `gorm:"type:varchar(255)"`
	Phone        *string    `gorm:"type:varchar(32)"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	LastActiveAt *time.Time
}

func (User) TableName() string {
	return "users"
}
