package checkout

// SessionRequest is the payload sent to the gateway when creating a hosted
// checkout session.
type SessionRequest struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	CustomerEmail string  `json:"customer_email"`
	ReferenceID   string  `json:"reference_id"`
	SuccessURL    string  `json:"success_url"`
	CancelURL     string  `json:"cancel_url"`
}

// SessionResponse is the gateway's answer to session creation.
type SessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionStatus is the gateway's view of a session after the customer has
// been redirected back.
type SessionStatus struct {
	ID            string  `json:"id"`
	PaymentStatus string  `json:"payment_status"`
	PaymentIntent string  `json:"payment_intent"`
	AmountTotal   float64 `json:"amount_total"`
	CustomerEmail string  `json:"customer_email"`
	ReferenceID   string  `json:"reference_id"`
}

// Paid reports whether the gateway confirmed the payment.
func (s SessionStatus) Paid() bool {
	return s.PaymentStatus == "paid"
}
