package models

// CreateOrderRequest is one upstream order-creation call: the commerce API
// creates exactly one order per product line.
type CreateOrderRequest struct {
	ProductID             string `json:"productId"`
	Quantity              int    `json:"quantity,omitempty"`
	PhoneNumber           string `json:"phoneNumber,omitempty"`
	ShippingCountry       string `json:"shippingCountry"`
	ShippingPostalCode    string `json:"shippingPostalCode,omitempty"`
	ShippingStreetAddress string `json:"shippingStreetAddress"`
	ShippingRegion        string `json:"shippingRegion,omitempty"`
	ShippingGpsAddress    string `json:"shippingGpsAddress,omitempty"`
	ShippingHouseNumber   string `json:"shippingHouseNumber,omitempty"`
}

// OrderResponse tolerates the upstream's schema drift: some endpoints return
// id, others orderId; amounts and timestamps appear under several names.
// Tolerance, not normalization — callers pick the field they need.
type OrderResponse struct {
	ID               string  `json:"id,omitempty"`
	OrderID          string  `json:"orderId,omitempty"`
	OrderNumber      string  `json:"orderNumber,omitempty"`
	OrderCode        string  `json:"orderCode,omitempty"`
	Status           string  `json:"status,omitempty"`
	TotalAmount      float64 `json:"totalAmount,omitempty"`
	Amount           float64 `json:"amount,omitempty"`
	AmountPaid       float64 `json:"amountPaid,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	CreatedAt        string  `json:"createdAt,omitempty"`
	DateCreated      string  `json:"dateCreated,omitempty"`
	PaymentStatus    string  `json:"paymentStatus,omitempty"`
	PaymentReference string  `json:"paymentReference,omitempty"`
	CustomerEmail    string  `json:"customerEmail,omitempty"`
	ProductName      string  `json:"productName,omitempty"`
	ProductSku       string  `json:"productSku,omitempty"`
	QuantityOrdered  int     `json:"quantityOrdered,omitempty"`

	ShippingCountry       string `json:"shippingCountry,omitempty"`
	ShippingPostalCode    string `json:"shippingPostalCode,omitempty"`
	ShippingStreetAddress string `json:"shippingStreetAddress,omitempty"`
	ShippingRegion        string `json:"shippingRegion,omitempty"`
}

// Identifier returns id or orderId, whichever the endpoint populated.
func (o OrderResponse) Identifier() string {
	if o.ID != "" {
		return o.ID
	}
	return o.OrderID
}

type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalCount int             `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
}

// CheckoutRequest carries the shipping form the storefront submits alongside
// the session's cart.
type CheckoutRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zipCode" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

type CheckoutResponse struct {
	AuthorizationURL string   `json:"authorizationUrl"`
	OrderIDs         []string `json:"orderIds"`
	Reference        string   `json:"reference,omitempty"`
}
