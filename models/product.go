package models

type Product struct {
	ID               string           `json:"id"`
	SKU              string           `json:"sku"`
	Name             string           `json:"name"`
	Brand            string           `json:"brand"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"shortDescription"`
	Category         string           `json:"category"`
	CostPrice        float64          `json:"costPrice"`
	DiscountedPrice  float64          `json:"discountedPrice"`
	TotalQuantity    int              `json:"totalQuantity"`
	IsListed         bool             `json:"isListed"`
	InStock          bool             `json:"inStock"`
	MainImageURL     string           `json:"mainImageUrl"`
	ImageURLs        []string         `json:"imageUrls"`
	HasVariants      bool             `json:"hasVariants"`
	Variants         []ProductVariant `json:"variants"`
	URLSlug          string           `json:"urlSlug"`
	IsFeatured       bool             `json:"isFeatured"`
	IsNew            bool             `json:"isNew"`
	IsBestseller     bool             `json:"isBestseller"`
	IsOnSale         bool             `json:"isOnSale"`
	DateAdded        string           `json:"dateAdded"`
	LastModified     string           `json:"lastModified"`
}

type ProductVariant struct {
	ID                string            `json:"id"`
	ProductID         string            `json:"productId"`
	SKU               string            `json:"sku"`
	VariantName       string            `json:"variantName"`
	Price             float64           `json:"price"`
	CostPrice         float64           `json:"costPrice"`
	CompareAtPrice    float64           `json:"compareAtPrice"`
	QuantityAvailable int               `json:"quantityAvailable"`
	ImageURL          string            `json:"imageUrl"`
	IsActive          bool              `json:"isActive"`
	InStock           bool              `json:"inStock"`
	OptionValues      map[string]string `json:"optionValues"`
}

type VariantOption struct {
	OptionName   string   `json:"optionName"`
	OptionValues []string `json:"optionValues"`
}
