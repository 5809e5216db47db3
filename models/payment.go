package models

// PaymentInitializationRequest covers one payment for all orders of a
// checkout. Amount travels as a string with four decimal places so precision
// survives the wire.
type PaymentInitializationRequest struct {
	OrderIDs    []string          `json:"orderIds,omitempty"`
	OrderID     string            `json:"orderId,omitempty"`
	Amount      string            `json:"amount"`
	Email       string            `json:"email"`
	Currency    string            `json:"currency,omitempty"`
	CallbackURL string            `json:"callbackUrl,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type PaymentInitializationResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	AuthorizationURL string `json:"authorizationUrl,omitempty"`
	AccessCode       string `json:"accessCode,omitempty"`
	Reference        string `json:"reference,omitempty"`
	OrderID          string `json:"orderId,omitempty"`

	// Legacy nested shape still emitted by older upstream deployments.
	Data *PaymentInitializationData `json:"data,omitempty"`
}

type PaymentInitializationData struct {
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
	Reference        string `json:"reference"`
}

// AuthURL returns the flat authorization URL, falling back to the legacy
// nested shape.
func (r PaymentInitializationResponse) AuthURL() string {
	if r.AuthorizationURL != "" {
		return r.AuthorizationURL
	}
	if r.Data != nil {
		return r.Data.AuthorizationURL
	}
	return ""
}

type PaymentVerificationResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	Reference     string          `json:"reference"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	OrderID       string          `json:"orderId"`
	PaidAt        string          `json:"paidAt"`
	TransactionID string          `json:"transactionId"`
	Orders        []OrderResponse `json:"orders,omitempty"`
}
