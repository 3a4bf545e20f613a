package dto

// CategoryNodeResponse is one entry in a category listing.
type CategoryNodeResponse struct {
	Id       uint   `json:"id"`
	Name     string `json:"name"`
	HasItems bool   `json:"has_items"`
}

// CategoryViewResponse is what opening a category yields: either child
// categories or one page of products, never both.
type CategoryViewResponse struct {
	Category   CategoryNodeResponse   `json:"category"`
	Breadcrumb []string               `json:"breadcrumb"`
	Children   []CategoryNodeResponse `json:"children,omitempty"`
	Products   *ProductPageResponse   `json:"products,omitempty"`
}

// ProductCardResponse is one product rendered for the chat surface.
type ProductCardResponse struct {
	Id          uint     `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	CategoryId  uint     `json:"category_id"`
}

// ProductPageResponse is one window of a category's products.
type ProductPageResponse struct {
	CategoryId uint                  `json:"category_id"`
	Items      []ProductCardResponse `json:"items"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
	HasPrev    bool                  `json:"has_prev"`
	HasNext    bool                  `json:"has_next"`
	PrevOffset int                   `json:"prev_offset"`
	NextOffset int                   `json:"next_offset"`
}
