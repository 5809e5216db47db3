package models

import "github.com/shopspring/decimal"

// CartProduct is the slice of the catalog product a cart line needs to price
// and display itself.
type CartProduct struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CostPrice       float64 `json:"costPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	MainImageURL    string  `json:"mainImageUrl"`
}

type CartLineItem struct {
	Product   CartProduct `json:"product"`
	VariantID string      `json:"variantId,omitempty"`
	Quantity  int         `json:"quantity"`
	Size      string      `json:"size"`
	Color     string      `json:"color"`
}

// Key is the cart line identity: two adds with the same key merge into one
// line. Every mutation is keyed by the full tuple.
type CartLineKey struct {
	ProductID string
	Size      string
	Color     string
}

func (li CartLineItem) Key() CartLineKey {
	return CartLineKey{ProductID: li.Product.ID, Size: li.Size, Color: li.Color}
}

// CartView is the read snapshot handed to callers. Totals are derived on
// every read, never stored.
type CartView struct {
	Items      []CartLineItem `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice float64        `json:"totalPrice"`
}

type AddCartItemRequest struct {
	Product   CartProduct `json:"product" binding:"required"`
	Quantity  int         `json:"quantity" binding:"required,min=1"`
	Size      string      `json:"size"`
	Color     string      `json:"color"`
	VariantID string      `json:"variantId"`
}

type UpdateCartItemRequest struct {
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Size     string `json:"size"`
	Color    string `json:"color"`
}

type RemoveCartItemRequest struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// EffectiveUnitPrice prefers a positive discounted price over the cost
// price.
func (p CartProduct) EffectiveUnitPrice() decimal.Decimal {
	if p.DiscountedPrice > 0 {
		return decimal.NewFromFloat(p.DiscountedPrice)
	}
	return decimal.NewFromFloat(p.CostPrice)
}
