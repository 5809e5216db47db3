package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"storefront/models"
)

// CartService holds one cart per session, in memory only: a gateway restart
// loses carts the same way a page reload lost them in the storefront. Every
// operation is total and synchronous; mutations on a line are keyed by the
// full (productID, size, color) tuple.
type CartService struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLineItem
}

func NewCartService() *CartService {
	return &CartService{carts: map[string][]models.CartLineItem{}}
}

// Add merges into an existing line with the same identity key, otherwise
// appends. No upper bound on quantity is enforced here; stock is the product
// screen's concern.
func (s *CartService) Add(sessionID string, req models.AddCartItemRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := models.CartLineItem{
		Product:   req.Product,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	}

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Key() == line.Key() {
			items[i].Quantity += req.Quantity
			return
		}
	}
	s.carts[sessionID] = append(items, line)
}

// UpdateQuantity sets the quantity of the line with the given key. A missing
// line is a no-op.
func (s *CartService) UpdateQuantity(sessionID string, key models.CartLineKey, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity = quantity
		}
	}
}

// Remove drops the line with the given key. A missing line is a no-op.
func (s *CartService) Remove(sessionID string, key models.CartLineKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	kept := items[:0]
	for _, item := range items {
		if item.Key() != key {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		delete(s.carts, sessionID)
		return
	}
	s.carts[sessionID] = kept
}

func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Items returns a copy of the cart's lines.
func (s *CartService) Items(sessionID string) []models.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.carts[sessionID]
	copied := make([]models.CartLineItem, len(items))
	copy(copied, items)
	return copied
}

// TotalPrice is Σ(effective unit price × quantity), recomputed on every
// call. This figure, not anything stored, is what checkout submits.
func (s *CartService) TotalPrice(sessionID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, item := range s.carts[sessionID] {
		unit := item.Product.EffectiveUnitPrice()
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (s *CartService) TotalItems(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.carts[sessionID] {
		total += item.Quantity
	}
	return total
}

// View assembles the read snapshot for the cart and checkout summary
// screens.
func (s *CartService) View(sessionID string) models.CartView {
	items := s.Items(sessionID)
	price, _ := s.TotalPrice(sessionID).Float64()
	return models.CartView{
		Items:      items,
		TotalItems: s.TotalItems(sessionID),
		TotalPrice: price,
	}
}
