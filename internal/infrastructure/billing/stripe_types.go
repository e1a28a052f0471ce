package billing

// CheckoutSessionInput contains parameters for creating a checkout session
type CheckoutSessionInput struct {
	CustomerEmail string
	ProductName   string
	Description   string
	AmountCents   int64
	Quantity      int64
	Metadata      map[string]string
}

// CheckoutSessionOutput contains the result of creating a checkout session
type CheckoutSessionOutput struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}
