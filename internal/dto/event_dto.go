package dto

// ProductViewedMessage is the pub/sub payload emitted when a product card
// is opened.
type ProductViewedMessage struct {
	ChatID    int64   `json:"chat_id"`
	ProductId uint    `json:"product_id"`
	Category  *string `json:"category,omitempty"`
	Source    string  `json:"source"`
}
