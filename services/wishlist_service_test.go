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

type wishlistAPIMock struct {
	mu        sync.Mutex
	addErr    error
	removeErr error
	listErr   error

	items   []models.WishlistEntry
	added   []string
	removed []string
	fetches int
}

func (m *wishlistAPIMock) AddToWishlist(_ context.Context, _, productID string) (*models.WishlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return nil, m.addErr
	}
	entry := models.WishlistEntry{ProductID: productID}
	m.items = append(m.items, entry)
	m.added = append(m.added, productID)
	return &entry, nil
}

func (m *wishlistAPIMock) RemoveFromWishlist(_ context.Context, _, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeErr != nil {
		return m.removeErr
	}
	kept := m.items[:0]
	for _, entry := range m.items {
		if entry.ProductID != productID {
			kept = append(kept, entry)
		}
	}
	m.items = kept
	m.removed = append(m.removed, productID)
	return nil
}

func (m *wishlistAPIMock) GetWishlist(_ context.Context, _ string, _, _ int) (*models.WishlistPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.fetches++
	items := make([]models.WishlistEntry, len(m.items))
	copy(items, m.items)
	return &models.WishlistPage{Items: items, TotalCount: len(items)}, nil
}

func TestWishlistRefresh_NilSession_IsNoOp(t *testing.T) {
	api := &wishlistAPIMock{}
	sut := NewWishlistService(api)

	require.NoError(t, sut.Refresh(context.Background(), nil))
	assert.Zero(t, api.fetches)
}

func TestWishlistRefresh_ReplacesMirror(t *testing.T) {
	api := &wishlistAPIMock{items: []models.WishlistEntry{{ProductID: "A"}, {ProductID: "B"}}}
	sut := NewWishlistService(api)
	sess := &Session{ID: "s1", AccessToken: "tok"}

	require.NoError(t, sut.Refresh(context.Background(), sess))

	assert.Equal(t, 2, sut.Count("s1"))
	assert.True(t, sut.Contains("s1", "A"))
	assert.False(t, sut.Contains("s1", "C"))
}

func TestWishlistAdd_MutatesUpstreamThenRefetches(t *testing.T) {
	api := &wishlistAPIMock{}
	sut := NewWishlistService(api)
	sess := &Session{ID: "s1", AccessToken: "tok"}

	require.NoError(t, sut.Add(context.Background(), sess, "A"))

	assert.Equal(t, []string{"A"}, api.added)
	assert.Equal(t, 1, api.fetches)
	assert.True(t, sut.Contains("s1", "A"))
}

func TestWishlistAdd_NilSession_Rejected(t *testing.T) {
	api := &wishlistAPIMock{}
	sut := NewWishlistService(api)

	err := sut.Add(context.Background(), nil, "A")

	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, api.added)
}

func TestWishlistAdd_UpstreamError_LeavesMirrorUntouched(t *testing.T) {
	api := &wishlistAPIMock{items: []models.WishlistEntry{{ProductID: "A"}}}
	sut := NewWishlistService(api)
	sess := &Session{ID: "s1", AccessToken: "tok"}
	require.NoError(t, sut.Refresh(context.Background(), sess))

	api.addErr = errors.New("upstream down")
	err := sut.Add(context.Background(), sess, "B")

	require.EqualError(t, err, "upstream down")
	assert.Equal(t, 1, sut.Count("s1"))
	assert.False(t, sut.Contains("s1", "B"))
}

func TestWishlistRemove_MutatesUpstreamThenRefetches(t *testing.T) {
	api := &wishlistAPIMock{items: []models.WishlistEntry{{ProductID: "A"}, {ProductID: "B"}}}
	sut := NewWishlistService(api)
	sess := &Session{ID: "s1", AccessToken: "tok"}
	require.NoError(t, sut.Refresh(context.Background(), sess))

	require.NoError(t, sut.Remove(context.Background(), sess, "A"))

	assert.Equal(t, []string{"A"}, api.removed)
	assert.False(t, sut.Contains("s1", "A"))
	assert.True(t, sut.Contains("s1", "B"))
}

func TestWishlistRemove_NilSession_IsNoOp(t *testing.T) {
	api := &wishlistAPIMock{}
	sut := NewWishlistService(api)

	require.NoError(t, sut.Remove(context.Background(), nil, "A"))
	assert.Empty(t, api.removed)
}

func TestWishlistClear_DropsOnlyThatSession(t *testing.T) {
	api := &wishlistAPIMock{items: []models.WishlistEntry{{ProductID: "A"}}}
	sut := NewWishlistService(api)
	require.NoError(t, sut.Refresh(context.Background(), &Session{ID: "s1", AccessToken: "tok"}))
	require.NoError(t, sut.Refresh(context.Background(), &Session{ID: "s2", AccessToken: "tok"}))

	sut.Clear("s1")

	assert.Zero(t, sut.Count("s1"))
	assert.Equal(t, 1, sut.Count("s2"))
}

func TestWishlistEntries_ReturnsACopy(t *testing.T) {
	api := &wishlistAPIMock{items: []models.WishlistEntry{{ProductID: "A"}}}
	sut := NewWishlistService(api)
	sess := &Session{ID: "s1", AccessToken: "tok"}
	require.NoError(t, sut.Refresh(context.Background(), sess))

	entries := sut.Entries("s1")
	require.Len(t, entries, 1)
	entries[0].ProductID = "mutated"

	assert.True(t, sut.Contains("s1", "A"))
}
