package upstream

import (
	"context"

	"storefront/models"
)

// Register starts a customer registration; the upstream sends an OTP to the
// given email and holds the account pending verification.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.post(ctx, "/api/customer/auth/register", "", req, nil)
}

// VerifyOtp completes a registration and returns the first token pair.
func (c *Client) VerifyOtp(ctx context.Context, req models.OtpVerificationRequest) (*models.UpstreamLoginResponse, error) {
	var out models.UpstreamLoginResponse
	if err := c.post(ctx, "/api/customer/auth/verify-otp", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.UpstreamLoginResponse, error) {
	var out models.UpstreamLoginResponse
	if err := c.post(ctx, "/api/customer/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.post(ctx, "/api/customer/auth/logout", token, nil, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return c.post(ctx, "/api/customer/auth/forgot-password", "", req, nil)
}

func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return c.post(ctx, "/api/customer/auth/reset-password", "", req, nil)
}

func (c *Client) Profile(ctx context.Context, token string) (*models.UpstreamUser, error) {
	var out models.UpstreamUser
	if err := c.get(ctx, "/api/customer/auth/profile", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req models.UpdateProfileRequest) (*models.UpstreamUser, error) {
	var out models.UpstreamUser
	if err := c.put(ctx, "/api/customer/auth/profile", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RefreshToken(ctx context.Context, token string) (*models.UpstreamLoginResponse, error) {
	var out models.UpstreamLoginResponse
	if err := c.post(ctx, "/api/customer/auth/refresh", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
