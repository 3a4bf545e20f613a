package dto

import "time"

// StatisticsResponse is the admin dashboard aggregate.
type StatisticsResponse struct {
	Users         int64 `json:"users"`
	ProductViews  int64 `json:"product_views"`
	Consultations int64 `json:"consultations"`
}

// ConsultationLogResponse is one persisted advisory exchange.
type ConsultationLogResponse struct {
	ChatId    int64     `json:"chat_id"`
	ProductId uint      `json:"product_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
