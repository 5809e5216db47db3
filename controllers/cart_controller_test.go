package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

func newCartRouter() (*gin.Engine, *services.CartService) {
	gin.SetMode(gin.TestMode)
	cart := services.NewCartService()
	ctrl := NewCartController(cart)

	router := gin.New()
	group := router.Group("/cart", middleware.CartSessionMiddleware())
	group.GET("", ctrl.GetCart)
	group.DELETE("", ctrl.ClearCart)
	group.POST("/items", ctrl.AddItem)
	group.PATCH("/items/:productId", ctrl.UpdateItem)
	group.DELETE("/items/:productId", ctrl.RemoveItem)
	return router, cart
}

func addItemBody(t *testing.T, id string, price float64, qty int, size, color string) *bytes.Reader {
	t.Helper()
	payload, err := json.Marshal(models.AddCartItemRequest{
		Product:  models.CartProduct{ID: id, Name: "product " + id, CostPrice: price},
		Quantity: qty,
		Size:     size,
		Color:    color,
	})
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func decodeCartView(t *testing.T, rec *httptest.ResponseRecorder) models.CartView {
	t.Helper()
	var resp struct {
		Success bool            `json:"success"`
		Data    models.CartView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestCartRoutes_MintCartSessionWhenHeaderAbsent(t *testing.T) {
	router, _ := newCartRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CartSessionHeader))
}

func TestCartRoutes_EchoProvidedCartSession(t *testing.T) {
	router, _ := newCartRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(middleware.CartSessionHeader, "tab-1")
	router.ServeHTTP(rec, req)

	assert.Equal(t, "tab-1", rec.Header().Get(middleware.CartSessionHeader))
}

func TestAddItem_ReturnsViewWithTotals(t *testing.T) {
	router, _ := newCartRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", addItemBody(t, "A", 29.99, 2, "M", "black"))
	req.Header.Set(middleware.CartSessionHeader, "tab-1")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	view := decodeCartView(t, rec)
	assert.Equal(t, 2, view.TotalItems)
	assert.InDelta(t, 59.98, view.TotalPrice, 0.0001)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "A", view.Items[0].Product.ID)
}

func TestAddItem_RejectsMissingQuantity(t *testing.T) {
	router, cart := newCartRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items",
		bytes.NewReader([]byte(`{"product":{"id":"A"},"quantity":0}`)))
	req.Header.Set(middleware.CartSessionHeader, "tab-1")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, cart.Items("tab-1"))
}

func TestUpdateItem_TargetsOneVariantLine(t *testing.T) {
	router, cart := newCartRouter()
	cart.Add("tab-1", models.AddCartItemRequest{
		Product: models.CartProduct{ID: "A", CostPrice: 10}, Quantity: 1, Size: "M", Color: "black"})
	cart.Add("tab-1", models.AddCartItemRequest{
		Product: models.CartProduct{ID: "A", CostPrice: 10}, Quantity: 1, Size: "L", Color: "black"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/A",
		bytes.NewReader([]byte(`{"quantity":5,"size":"M","color":"black"}`)))
	req.Header.Set(middleware.CartSessionHeader, "tab-1")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeCartView(t, rec)
	assert.Equal(t, 6, view.TotalItems)
}

func TestRemoveItem_UsesVariantQueryParams(t *testing.T) {
	router, cart := newCartRouter()
	cart.Add("tab-1", models.AddCartItemRequest{
		Product: models.CartProduct{ID: "A", CostPrice: 10}, Quantity: 1, Size: "M", Color: "black"})
	cart.Add("tab-1", models.AddCartItemRequest{
		Product: models.CartProduct{ID: "A", CostPrice: 10}, Quantity: 1, Size: "L", Color: "black"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart/items/A?size=M&color=black", nil)
	req.Header.Set(middleware.CartSessionHeader, "tab-1")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeCartView(t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "L", view.Items[0].Size)
}

func TestClearCart_EmptiesOnlyThatTab(t *testing.T) {
	router, cart := newCartRouter()
	cart.Add("tab-1", models.AddCartItemRequest{Product: models.CartProduct{ID: "A", CostPrice: 10}, Quantity: 1})
	cart.Add("tab-2", models.AddCartItemRequest{Product: models.CartProduct{ID: "B", CostPrice: 20}, Quantity: 2})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req.Header.Set(middleware.CartSessionHeader, "tab-1")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cart.Items("tab-1"))
	assert.Equal(t, 2, cart.TotalItems("tab-2"))
}
