package upstream

import (
	"context"
	"fmt"
	"net/url"

	"storefront/models"
)

func (c *Client) AddToWishlist(ctx context.Context, token, productID string) (*models.WishlistEntry, error) {
	var out models.WishlistEntry
	if err := c.post(ctx, "/api/wishlist", token, models.WishlistRequest{ProductID: productID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	return c.delete(ctx, "/api/wishlist/"+url.PathEscape(productID), token)
}

func (c *Client) GetWishlist(ctx context.Context, token string, page, size int) (*models.WishlistPage, error) {
	var out models.WishlistPage
	path := fmt.Sprintf("/api/wishlist?page=%d&size=%d", page, size)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
