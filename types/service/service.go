package service

import (
	"fmt"
)

// ServiceCreateRequest is the admin payload for a new catalog entry.
type ServiceCreateRequest struct {
	ServiceName string  `json:"serviceName"`
	Cost        float64 `json:"cost"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (s ServiceCreateRequest) Validate() error {
	if s.ServiceName == "" {
		return fmt.Errorf("serviceName is required")
	}
	if s.Cost <= 0 {
		return fmt.Errorf("cost must be greater than zero")
	}
	if s.Unit == "" {
		return fmt.Errorf("unit is required")
	}
	if s.Category == "" {
		return fmt.Errorf("category is required")
	}
	if s.Rating < 0 || s.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	return nil
}

// ServiceUpdateRequest is a partial update; only non-nil fields are applied.
type ServiceUpdateRequest struct {
	ServiceName *string  `json:"serviceName,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

func (s ServiceUpdateRequest) Validate() error {
	if s.ServiceName == nil && s.Cost == nil && s.Unit == nil && s.Category == nil &&
		s.Rating == nil && s.Description == nil && s.Image == nil {
		return fmt.Errorf("at least one field must be provided")
	}
	if s.Cost != nil && *s.Cost <= 0 {
		return fmt.Errorf("cost must be greater than zero")
	}
	if s.Rating != nil && (*s.Rating < 0 || *s.Rating > 5) {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	return nil
}
