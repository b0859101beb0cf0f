package payment

import (
	"fmt"
)

// CheckoutSessionRequest asks the gateway for a hosted checkout page for a
// booking. Field names follow the dashboard wire contract.
type CheckoutSessionRequest struct {
	Cost          float64 `json:"cost"`
	BookingID     uint    `json:"bookingId"`
	CustomerEmail string  `json:"customerEmail"`
	ServiceName   string  `json:"serviceName"`
	TrackingID    string  `json:"trackingId"`
}

func (r CheckoutSessionRequest) Validate() error {
	if r.BookingID == 0 {
		return fmt.Errorf("bookingId is required")
	}
	if r.Cost <= 0 {
		return fmt.Errorf("cost must be greater than zero")
	}
	return nil
}

// CheckoutSessionResponse carries the redirect target of the hosted page.
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// PaymentSuccessResponse is returned from the session exchange after the
// gateway confirms payment.
type PaymentSuccessResponse struct {
	TransactionID string `json:"transactionId"`
	TrackingID    string `json:"trackingId"`
}
