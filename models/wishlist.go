package models

type WishlistEntry struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductPrice float64 `json:"productPrice"`
	ImageURL     string  `json:"productMainImageUrl,omitempty"`
	ProductSku   string  `json:"productSku,omitempty"`
	InStock      bool    `json:"inStock,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

type WishlistPage struct {
	Items      []WishlistEntry `json:"items"`
	TotalCount int             `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
}

type WishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
