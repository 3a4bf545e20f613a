package dto

// CartLineResponse is one accumulated cart line.
type CartLineResponse struct {
	ProductId    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	LineTotal    float64 `json:"line_total"`
}

// CartSummaryResponse is the full cart with its grand total.
type CartSummaryResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total float64            `json:"total"`
	Count int                `json:"count"`
}
