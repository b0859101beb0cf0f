package constants

// Acting roles carried in JWT claims and user records.
const (
	RoleUser      = "user"
	RoleDecorator = "decorator"
	RoleAdmin     = "admin"

	// RoleAny allows any authenticated identity regardless of role.
	RoleAny = "any"
)

// Decorator approval states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDisabled = "disabled"
)

// Role groups for convenience
var (
	StaffRoles = []string{
		RoleDecorator,
		RoleAdmin,
	}
)
