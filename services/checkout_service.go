package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"storefront/models"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNoAuthorizationURL = errors.New("failed to initialize payment")
)

type checkoutAPI interface {
	CreateOrder(ctx context.Context, token, idempotencyKey string, req models.CreateOrderRequest) (*models.OrderResponse, error)
	CancelOrder(ctx context.Context, token, orderID string) error
	InitializePayment(ctx context.Context, token, idempotencyKey string, req models.PaymentInitializationRequest) (*models.PaymentInitializationResponse, error)
}

// CheckoutService turns the session's cart into one upstream order per line,
// then one payment session covering all of them. The protocol is sequential
// and not resumable: orders, then payment, then the browser leaves for the
// authorization URL.
type CheckoutService struct {
	api         checkoutAPI
	cart        *CartService
	currency    string
	callbackURL string
}

func NewCheckoutService(api checkoutAPI, cart *CartService, currency, callbackURL string) *CheckoutService {
	return &CheckoutService{
		api:         api,
		cart:        cart,
		currency:    currency,
		callbackURL: callbackURL,
	}
}

// Checkout runs the full orchestration for an authenticated session. The
// per-line order-creation calls are fanned out concurrently and fail fast;
// when any of them fails, the orders already created are cancelled so a
// partial failure strands nothing upstream, and exactly one error reaches
// the caller. The cart is cleared once an authorization URL is in hand,
// before the payment is confirmed.
func (s *CheckoutService) Checkout(ctx context.Context, sess *Session, cartID string, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if sess == nil {
		return nil, ErrNotAuthenticated
	}

	items := s.cart.Items(cartID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// One key per checkout attempt: a retried attempt after a network blip
	// maps onto the same upstream orders instead of duplicating them.
	attemptKey := uuid.NewString()

	orderIDs := make([]string, len(items))
	g, groupCtx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			order, err := s.api.CreateOrder(groupCtx, sess.AccessToken,
				fmt.Sprintf("%s-%d", attemptKey, i),
				models.CreateOrderRequest{
					ProductID:             item.Product.ID,
					Quantity:              item.Quantity,
					PhoneNumber:           req.Phone,
					ShippingCountry:       req.Country,
					ShippingStreetAddress: req.Address,
					ShippingRegion:        req.City + ", " + req.State,
					ShippingPostalCode:    req.ZipCode,
				})
			if err != nil {
				return err
			}
			orderIDs[i] = order.Identifier()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.cancelCreated(sess.AccessToken, orderIDs)
		return nil, err
	}

	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}

	payment, err := s.api.InitializePayment(ctx, sess.AccessToken, attemptKey,
		models.PaymentInitializationRequest{
			OrderIDs:    ids,
			Amount:      s.cart.TotalPrice(cartID).StringFixed(4),
			Email:       req.Email,
			Currency:    s.currency,
			CallbackURL: s.callbackURL,
		})
	if err != nil {
		s.cancelCreated(sess.AccessToken, orderIDs)
		return nil, err
	}

	authURL := payment.AuthURL()
	if authURL == "" {
		s.cancelCreated(sess.AccessToken, orderIDs)
		return nil, ErrNoAuthorizationURL
	}

	s.cart.Clear(cartID)

	return &models.CheckoutResponse{
		AuthorizationURL: authURL,
		OrderIDs:         ids,
		Reference:        payment.Reference,
	}, nil
}

// cancelCreated compensates a failed checkout: best effort, a cancellation
// failure is logged and swallowed because the checkout error is the one the
// caller needs to see.
func (s *CheckoutService) cancelCreated(token string, orderIDs []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, id := range orderIDs {
		if id == "" {
			continue
		}
		if err := s.api.CancelOrder(ctx, token, id); err != nil {
			log.Printf("order %s cancellation failed: %v", id, err)
		}
	}
}
