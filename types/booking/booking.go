package booking

import (
	"fmt"
)

// BookingCreateRequest is the payload sent when a customer books a service.
type BookingCreateRequest struct {
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	UserName    string  `json:"userName"`
	UserEmail   string  `json:"userEmail"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

func (b BookingCreateRequest) Validate() error {
	if b.ServiceName == "" {
		return fmt.Errorf("serviceName is required")
	}
	if b.Price <= 0 {
		return fmt.Errorf("price must be greater than zero")
	}
	if b.Date == "" {
		return fmt.Errorf("date is required")
	}
	if b.Location == "" {
		return fmt.Errorf("location is required")
	}
	return nil
}

// BookingUpdateRequest is a partial update; only non-nil fields are applied.
type BookingUpdateRequest struct {
	UserName *string  `json:"userName,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Category *string  `json:"category,omitempty"`
	Location *string  `json:"location,omitempty"`
	Date     *string  `json:"date,omitempty"`
}

func (b BookingUpdateRequest) Validate() error {
	if b.UserName == nil && b.Price == nil && b.Category == nil && b.Location == nil && b.Date == nil {
		return fmt.Errorf("at least one field must be provided")
	}
	if b.Price != nil && *b.Price <= 0 {
		return fmt.Errorf("price must be greater than zero")
	}
	return nil
}

// AssignDecoratorRequest carries the chosen decorator's identity.
type AssignDecoratorRequest struct {
	DecoratorEmail  string `json:"decoratorEmail"`
	DecoratorName   string `json:"decoratorName"`
	DecoratorStatus string `json:"decoratorStatus"`
}

func (r AssignDecoratorRequest) Validate() error {
	if r.DecoratorEmail == "" {
		return fmt.Errorf("decoratorEmail is required")
	}
	if r.DecoratorName == "" {
		return fmt.Errorf("decoratorName is required")
	}
	return nil
}

// DeliveryStatusUpdateRequest advances a booking along the delivery pipeline.
type DeliveryStatusUpdateRequest struct {
	DeliveryStatus string `json:"deliveryStatus"`
}

func (r DeliveryStatusUpdateRequest) Validate() error {
	if r.DeliveryStatus == "" {
		return fmt.Errorf("deliveryStatus is required")
	}
	return nil
}
