package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/upstream"
)

type ProductController struct {
	api *upstream.Client
}

func NewProductController(api *upstream.Client) *ProductController {
	return &ProductController{api: api}
}

// GetAllProducts godoc
// @Summary List all listed products
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.api.ListProducts(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: products})
}

// GetNewArrivals godoc
// @Summary New arrivals
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/new-arrivals [get]
func (ctrl *ProductController) GetNewArrivals(c *gin.Context) {
	products, err := ctrl.api.NewArrivals(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: products})
}

// GetGroupedByCategory godoc
// @Summary Products grouped by root category
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/grouped-by-root [get]
func (ctrl *ProductController) GetGroupedByCategory(c *gin.Context) {
	grouped, err := ctrl.api.ProductsGroupedByRoot(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: grouped})
}

// SearchProducts godoc
// @Summary Search products
// @Description Case-insensitive match over name, description, brand and category
// @Tags Products
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.Response
// @Router /products/search [get]
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	query := strings.ToLower(c.Query("q"))

	products, err := ctrl.api.ListProducts(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}

	matched := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Brand), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			matched = append(matched, p)
		}
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: matched})
}

// GetProductByID godoc
// @Summary Product detail
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.api.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: product})
}

// GetVariantOptions godoc
// @Summary Variant options for a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /products/{id}/options [get]
func (ctrl *ProductController) GetVariantOptions(c *gin.Context) {
	options, err := ctrl.api.VariantOptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Data: options})
}
