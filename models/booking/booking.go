package booking

import (
	"time"
)

// Booking links a customer to a service instance at a chosen date and
// location. JSON field names follow the dashboard wire contract (camelCase).
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ServiceName string  `gorm:"type:varchar(255);not null" json:"serviceName"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"type:varchar(100)" json:"category"`
	Image       string  `gorm:"type:varchar(2048)" json:"image"`

	UserName  string `gorm:"type:varchar(255);not null" json:"userName"`
	UserEmail string `gorm:"type:varchar(255);not null;index" json:"userEmail"`

	// Date is the customer-chosen event date; BookingsDate is when the
	// booking was placed.
	Date         string    `gorm:"type:varchar(50);not null" json:"date"`
	Location     string    `gorm:"type:varchar(255);not null" json:"location"`
	BookingsDate time.Time `gorm:"not null" json:"bookingsDate"`

	TrackingID string `gorm:"type:varchar(64);unique" json:"trackingId"`

	PaymentStatus  PaymentStatus  `gorm:"type:varchar(20);not null;index" json:"paymentStatus"`
	DeliveryStatus DeliveryStatus `gorm:"type:varchar(30);not null;index" json:"deliveryStatus"`

	// Set once an approved decorator is assigned in planning-phase.
	DecoratorEmail  *string `gorm:"type:varchar(255);index" json:"decoratorEmail,omitempty"`
	DecoratorName   *string `gorm:"type:varchar(255)" json:"decoratorName,omitempty"`
	DecoratorStatus *string `gorm:"type:varchar(50)" json:"decoratorStatus,omitempty"`

	// Checkout session identifier from the payment gateway, encrypted at
	// rest. Cleared semantics: present only between session creation and
	// payment confirmation.
	CheckoutSessionEncrypted *string `gorm:"type:text" json:"-"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// CanAssignDecorator reports whether the assign-decorator action is legal for
// the booking's current state: paid and still in planning-phase.
func (b *Booking) CanAssignDecorator() bool {
	return b.DeliveryStatus == DeliveryStatusPlanning && b.PaymentStatus == PaymentStatusPaid
}

// CanAdvanceTo reports whether the booking may move to the requested delivery
// status. An unpaid booking never progresses past planning-phase.
func (b *Booking) CanAdvanceTo(to DeliveryStatus) bool {
	if b.PaymentStatus != PaymentStatusPaid {
		return false
	}
	return CanTransition(b.DeliveryStatus, to)
}
