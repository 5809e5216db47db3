package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"storefront/models"
)

// CreateOrder creates one upstream order for one product line. The
// idempotency key ties retried checkout attempts to the same order.
func (c *Client) CreateOrder(ctx context.Context, token, idempotencyKey string, req models.CreateOrderRequest) (*models.OrderResponse, error) {
	var out models.OrderResponse
	opts := requestOptions{token: token}
	if idempotencyKey != "" {
		opts.headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", opts, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context, token string, page, size int) (*models.OrderListResponse, error) {
	var out models.OrderListResponse
	path := fmt.Sprintf("/api/orders?page=%d&size=%d", page, size)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*models.OrderResponse, error) {
	var out models.OrderResponse
	if err := c.get(ctx, "/api/orders/"+url.PathEscape(orderID), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder is the compensation call the checkout orchestrator issues for
// orders stranded by a partial failure.
func (c *Client) CancelOrder(ctx context.Context, token, orderID string) error {
	return c.post(ctx, "/api/orders/"+url.PathEscape(orderID)+"/cancel", token, struct{}{}, nil)
}
