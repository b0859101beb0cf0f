package user

import (
	"fmt"
)

// UserUpdateRequest is the partial update for PATCH /users/:id. Admins may
// change the role; profile fields are merged when present.
type UserUpdateRequest struct {
	Role       *string `json:"role,omitempty"`
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	Experience *string `json:"experience,omitempty"`
	PhotoURL   *string `json:"photoURL,omitempty"`
}

func (r UserUpdateRequest) Validate() error {
	if r.Role == nil && r.Name == nil && r.Address == nil && r.Experience == nil && r.PhotoURL == nil {
		return fmt.Errorf("at least one field must be provided")
	}
	if r.Role != nil && *r.Role != "user" && *r.Role != "decorator" && *r.Role != "admin" {
		return fmt.Errorf("role must be one of 'user', 'decorator', 'admin'")
	}
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// StatusUpdateRequest approves or disables a decorator account (admin only).
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if r.Status != "pending" && r.Status != "approved" && r.Status != "disabled" {
		return fmt.Errorf("status must be one of 'pending', 'approved', 'disabled'")
	}
	return nil
}
