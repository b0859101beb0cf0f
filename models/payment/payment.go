package payment

import (
	"time"
)

// Payment records a completed checkout. Rows are written once by the
// payment-success exchange and never mutated afterwards.
type Payment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Amount        float64   `gorm:"not null" json:"amount"`
	TransactionID string    `gorm:"type:varchar(128);not null;unique" json:"transactionId"`
	TrackingID    string    `gorm:"type:varchar(64);not null;index" json:"trackingId"`
	ServiceName   string    `gorm:"type:varchar(255);not null" json:"serviceName"`
	CustomerEmail string    `gorm:"type:varchar(255);not null;index" json:"customerEmail"`
	PaidAt        time.Time `gorm:"not null" json:"paidAt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
