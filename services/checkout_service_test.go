package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

type checkoutAPIMock struct {
	mu           sync.Mutex
	failProducts map[string]error
	paymentErr   error
	payment      *models.PaymentInitializationResponse

	created      []string
	createdKeys  []string
	cancelled    []string
	paymentCalls []models.PaymentInitializationRequest
	paymentKeys  []string
}

func (m *checkoutAPIMock) CreateOrder(_ context.Context, _, idempotencyKey string, req models.CreateOrderRequest) (*models.OrderResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failProducts[req.ProductID]; ok {
		return nil, err
	}
	id := "order-" + req.ProductID
	m.created = append(m.created, id)
	m.createdKeys = append(m.createdKeys, idempotencyKey)
	return &models.OrderResponse{ID: id}, nil
}

func (m *checkoutAPIMock) CancelOrder(_ context.Context, _, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = append(m.cancelled, orderID)
	return nil
}

func (m *checkoutAPIMock) InitializePayment(_ context.Context, _, idempotencyKey string, req models.PaymentInitializationRequest) (*models.PaymentInitializationResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paymentCalls = append(m.paymentCalls, req)
	m.paymentKeys = append(m.paymentKeys, idempotencyKey)
	if m.paymentErr != nil {
		return nil, m.paymentErr
	}
	return m.payment, nil
}

func checkoutFixture(api *checkoutAPIMock) (*CheckoutService, *CartService) {
	cart := NewCartService()
	return NewCheckoutService(api, cart, "GHS", "https://shop.example.com/payment/success"), cart
}

func guestCheckoutReq() models.CheckoutRequest {
	return models.CheckoutRequest{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@example.com",
		Phone:     "+233201234567",
		Address:   "12 Ring Road",
		City:      "Accra",
		State:     "Greater Accra",
		ZipCode:   "00233",
		Country:   "Ghana",
	}
}

func TestCheckout_NilSession_Rejected(t *testing.T) {
	api := &checkoutAPIMock{}
	sut, cart := checkoutFixture(api)
	cart.Add("tab-1", addReq("A", 10, 1, "M", "black"))

	result, err := sut.Checkout(context.Background(), nil, "tab-1", guestCheckoutReq())

	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Nil(t, result)
	assert.Empty(t, api.created)
}

func TestCheckout_EmptyCart_NoUpstreamCalls(t *testing.T) {
	api := &checkoutAPIMock{}
	sut, _ := checkoutFixture(api)
	sess := &Session{ID: "s1", AccessToken: "tok"}

	result, err := sut.Checkout(context.Background(), sess, "tab-1", guestCheckoutReq())

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, result)
	assert.Empty(t, api.created)
	assert.Empty(t, api.paymentCalls)
}

func TestCheckout_Success_OneOrderPerLine(t *testing.T) {
	api := &checkoutAPIMock{
		payment: &models.PaymentInitializationResponse{
			AuthorizationURL: "https://pay.example.com/auth/abc",
			Reference:        "ref-123",
		},
	}
	sut, cart := checkoutFixture(api)
	cart.Add("tab-1", addReq("A", 29.99, 2, "M", "black"))
	cart.Add("tab-1", addReq("B", 79.99, 1, "L", "white"))
	sess := &Session{ID: "s1", AccessToken: "tok"}

	result, err := sut.Checkout(context.Background(), sess, "tab-1", guestCheckoutReq())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "https://pay.example.com/auth/abc", result.AuthorizationURL)
	assert.Equal(t, "ref-123", result.Reference)
	assert.ElementsMatch(t, []string{"order-A", "order-B"}, result.OrderIDs)
	assert.Len(t, api.created, 2)
	assert.Empty(t, api.cancelled)

	require.Len(t, api.paymentCalls, 1)
	payment := api.paymentCalls[0]
	assert.Equal(t, "139.9700", payment.Amount)
	assert.Equal(t, "GHS", payment.Currency)
	assert.Equal(t, "ama@example.com", payment.Email)
	assert.Equal(t, "https://shop.example.com/payment/success", payment.CallbackURL)
	assert.ElementsMatch(t, []string{"order-A", "order-B"}, payment.OrderIDs)

	// Same attempt, distinct per-line keys.
	require.Len(t, api.createdKeys, 2)
	assert.NotEqual(t, api.createdKeys[0], api.createdKeys[1])
	require.Len(t, api.paymentKeys, 1)
	assert.NotEmpty(t, api.paymentKeys[0])
}

func TestCheckout_Success_ClearsCart(t *testing.T) {
	api := &checkoutAPIMock{
		payment: &models.PaymentInitializationResponse{AuthorizationURL: "https://pay.example.com/auth/abc"},
	}
	sut, cart := checkoutFixture(api)
	cart.Add("tab-1", addReq("A", 10, 1, "M", "black"))
	sess := &Session{ID: "s1", AccessToken: "tok"}

	_, err := sut.Checkout(context.Background(), sess, "tab-1", guestCheckoutReq())

	require.NoError(t, err)
	assert.Empty(t, cart.Items("tab-1"))
}

func TestCheckout_NestedAuthorizationURL_Accepted(t *testing.T) {
	api := &checkoutAPIMock{
		payment: &models.PaymentInitializationResponse{
			Data: &models.PaymentInitializationData{AuthorizationURL: "https://pay.example.com/auth/nested"},
		},
	}
	sut, cart := checkoutFixture(api)
	cart.Add("tab-1", addReq("A", 10, 1, "M", "black"))
	sess := &Session{ID: "s1", AccessToken: "tok"}

	result, err := sut.Checkout(context.Background(), sess, "tab-1", guestCheckoutReq())

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/auth/nested", result.AuthorizationURL)
}

func TestCheckout_OrderFailure_CancelsCreatedOrders(t *testing.T) {
	api := &checkoutAPIMock{
		failProducts: map[string]error{"B": errors.New("insufficient stock")},
	}
	sut, cart := checkoutFixture(api)
	cart.Add("tab-1", addReq("A", 10, 1, "M", "black"))
	cart.Add("tab-1", addReq("B", 20, 1, "L", "white"))
	cart.Add("tab-1", addReq("C", 30, 1, "S", "red"))
	sess := &Session{ID: "s1", AccessToken: "tok"}

	result, err := sut.Checkout(context.Background(), sess, "tab-1", guestCheckoutReq())

	require.EqualError(t, err, "insufficient stock")
	assert.Nil(t, result)
	assert.Empty(t, api.paymentCalls)
	assert.ElementsMatch(t, api.created, api.cancelled)

	// The cart survives the failed attempt.
	assert.Len(t, cart.Items("tab-1"), 3)
}

func TestCheckout_PaymentFailure_CancelsAllOrders(t *testing.T) {
	api := &checkoutAPIMock{paymentErr: errors.New("gateway unavailable")}
	sut, cart := checkoutFixture(api)
	cart.Add("tab-1", addReq("A", 10, 1, "M", "black"))
	cart.Add("tab-1", addReq("B", 20, 1, "L", "white"))
	sess := &Session{ID: "s1", AccessToken: "tok"}

	result, err := sut.Checkout(context.Background(), sess, "tab-1", guestCheckoutReq())

	require.EqualError(t, err, "gateway unavailable")
	assert.Nil(t, result)
	assert.ElementsMatch(t, []string{"order-A", "order-B"}, api.cancelled)
	assert.Len(t, cart.Items("tab-1"), 2)
}

func TestCheckout_MissingAuthorizationURL_CancelsAndFails(t *testing.T) {
	api := &checkoutAPIMock{payment: &models.PaymentInitializationResponse{}}
	sut, cart := checkoutFixture(api)
	cart.Add("tab-1", addReq("A", 10, 1, "M", "black"))
	sess := &Session{ID: "s1", AccessToken: "tok"}

	result, err := sut.Checkout(context.Background(), sess, "tab-1", guestCheckoutReq())

	require.ErrorIs(t, err, ErrNoAuthorizationURL)
	assert.Nil(t, result)
	assert.ElementsMatch(t, []string{"order-A"}, api.cancelled)
	assert.Len(t, cart.Items("tab-1"), 1)
}
