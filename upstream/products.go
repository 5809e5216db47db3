package upstream

import (
	"context"
	"net/url"

	"storefront/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, "/api/products", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) NewArrivals(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, "/api/products/new-arrivals", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProductsGroupedByRoot(ctx context.Context) (map[string][]models.Product, error) {
	out := map[string][]models.Product{}
	if err := c.get(ctx, "/api/products/grouped-by-root", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var out models.Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(productID), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VariantOptions(ctx context.Context, productID string) ([]models.VariantOption, error) {
	var out []models.VariantOption
	if err := c.get(ctx, "/api/products/"+url.PathEscape(productID)+"/options", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}
