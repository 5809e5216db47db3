package services

import (
	"context"
	"errors"
	"sync"

	"storefront/models"
)

var ErrNotAuthenticated = errors.New("authentication required")

const wishlistPageSize = 50

type wishlistAPI interface {
	AddToWishlist(ctx context.Context, token, productID string) (*models.WishlistEntry, error)
	RemoveFromWishlist(ctx context.Context, token, productID string) error
	GetWishlist(ctx context.Context, token string, page, size int) (*models.WishlistPage, error)
}

// WishlistService mirrors the upstream wishlist per session. The mirror is a
// read-through cache: every mutation goes to the upstream first and is
// followed by a full refetch, so the local copy never drifts. Errors
// propagate to the caller and are not retained.
type WishlistService struct {
	api     wishlistAPI
	mu      sync.RWMutex
	mirrors map[string][]models.WishlistEntry
}

func NewWishlistService(api wishlistAPI) *WishlistService {
	return &WishlistService{api: api, mirrors: map[string][]models.WishlistEntry{}}
}

// Refresh replaces the session's mirror with the full upstream list. Without
// an authenticated session it is a no-op.
func (s *WishlistService) Refresh(ctx context.Context, sess *Session) error {
	if sess == nil {
		return nil
	}
	page, err := s.api.GetWishlist(ctx, sess.AccessToken, 0, wishlistPageSize)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.mirrors[sess.ID] = page.Items
	s.mu.Unlock()
	return nil
}

func (s *WishlistService) Add(ctx context.Context, sess *Session, productID string) error {
	if sess == nil {
		return ErrNotAuthenticated
	}
	if _, err := s.api.AddToWishlist(ctx, sess.AccessToken, productID); err != nil {
		return err
	}
	return s.Refresh(ctx, sess)
}

func (s *WishlistService) Remove(ctx context.Context, sess *Session, productID string) error {
	if sess == nil {
		return nil
	}
	if err := s.api.RemoveFromWishlist(ctx, sess.AccessToken, productID); err != nil {
		return err
	}
	return s.Refresh(ctx, sess)
}

// Contains is a pure membership predicate over the local mirror.
func (s *WishlistService) Contains(sessionID, productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.mirrors[sessionID] {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistService) Entries(sessionID string) []models.WishlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]models.WishlistEntry, len(s.mirrors[sessionID]))
	copy(entries, s.mirrors[sessionID])
	return entries
}

func (s *WishlistService) Count(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mirrors[sessionID])
}

// Clear drops the mirror on sign-out.
func (s *WishlistService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mirrors, sessionID)
}
