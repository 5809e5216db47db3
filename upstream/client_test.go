package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func TestLogin_DecodesTokenPairAndUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/customer/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ama@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.UpstreamLoginResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         models.UpstreamUser{UserID: "u-1", Email: req.Email},
		})
	}))
	defer srv.Close()

	sut := NewClient(srv.URL)
	out, err := sut.Login(context.Background(), models.LoginRequest{Email: "ama@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "access-1", out.AccessToken)
	assert.Equal(t, "refresh-1", out.RefreshToken)
	assert.Equal(t, "u-1", out.User.UserID)
}

func TestProfile_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.UpstreamUser{ID: "u-1"})
	}))
	defer srv.Close()

	sut := NewClient(srv.URL)
	user, err := sut.Profile(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestCreateOrder_SendsIdempotencyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "attempt-1-0", r.Header.Get("Idempotency-Key"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.OrderResponse{ID: "order-1"})
	}))
	defer srv.Close()

	sut := NewClient(srv.URL)
	order, err := sut.CreateOrder(context.Background(), "tok", "attempt-1-0", models.CreateOrderRequest{ProductID: "A", Quantity: 1})

	require.NoError(t, err)
	assert.Equal(t, "order-1", order.Identifier())
}

func TestErrorStatus_SurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid or expired OTP"}`))
	}))
	defer srv.Close()

	sut := NewClient(srv.URL)
	_, err := sut.VerifyOtp(context.Background(), models.OtpVerificationRequest{Email: "a@b.com", Otp: "000000"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid or expired OTP", apiErr.Message)
	assert.False(t, apiErr.IsSessionEnding())
}

func TestErrorStatus_FallsBackThroughErrorAndDetails(t *testing.T) {
	bodies := map[string]string{
		`{"error":"token revoked"}`:     "token revoked",
		`{"details":"rate limited"}`:    "rate limited",
		`not json at all`:               "Unauthorized",
		`{"message":"","error":"nope"}`: "nope",
	}
	for body, want := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(body))
		}))

		sut := NewClient(srv.URL)
		err := sut.Logout(context.Background(), "tok")
		srv.Close()

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr, "body %q", body)
		assert.Equal(t, want, apiErr.Message, "body %q", body)
		assert.True(t, apiErr.IsSessionEnding())
	}
}

func TestSuccessWithoutJSONContentType_LeavesOutputUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	sut := NewClient(srv.URL)
	user, err := sut.Profile(context.Background(), "tok")

	require.NoError(t, err)
	assert.Empty(t, user.ID)
}

func TestTransportFailure_IsNotAnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	sut := NewClient(srv.URL)
	err := sut.Logout(context.Background(), "tok")

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
