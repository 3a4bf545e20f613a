package entity

import "time"

// ProductView is an analytics row written by the event consumer whenever a
// user opens a product card.
type ProductView struct {
	Id         uint
	UserChatId int64
	ProductId  uint
	Category   *string
	Source     string
	ViewedAt   time.Time
}

// ConsultationLog persists one completed advisory exchange. The volatile
// session buffer is separate; this is the durable audit trail.
type ConsultationLog struct {
	Id         uint
	UserChatId int64
	ProductId  uint
	Question   string
	Answer     string
	Context    map[string]interface{}
	CreatedAt  time.Time
}
