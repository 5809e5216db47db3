package upstream

import (
	"context"
	"net/http"
	"net/url"

	"storefront/models"
)

func (c *Client) InitializePayment(ctx context.Context, token, idempotencyKey string, req models.PaymentInitializationRequest) (*models.PaymentInitializationResponse, error) {
	var out models.PaymentInitializationResponse
	opts := requestOptions{token: token}
	if idempotencyKey != "" {
		opts.headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	if err := c.do(ctx, http.MethodPost, "/api/payments/initialize", opts, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyPayment(ctx context.Context, token, reference string) (*models.PaymentVerificationResponse, error) {
	var out models.PaymentVerificationResponse
	if err := c.get(ctx, "/api/payments/verify/"+url.PathEscape(reference), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
