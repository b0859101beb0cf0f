package user

import (
	"time"
)

// Role is the closed set of acting roles. Route gating matches on this type
// only, never on free-form strings.
type Role string

const (
	RoleUser      Role = "user"
	RoleDecorator Role = "decorator"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleDecorator, RoleAdmin:
		return true
	default:
		return false
	}
}

// Status is the decorator approval state. Only approved decorators are
// offered as assignment candidates.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDisabled Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisabled:
		return true
	default:
		return false
	}
}

// User is an account record. Decorator applicants carry profile fields
// (address, experience) and start in pending status.
type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null;unique" json:"email"`

	// PasswordHash is a bcrypt hash and never leaves the server.
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	Role   Role   `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	Status Status `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	Address    string `gorm:"type:text" json:"address,omitempty"`
	Experience string `gorm:"type:varchar(255)" json:"experience,omitempty"`
	PhotoURL   string `gorm:"type:varchar(2048)" json:"photoURL,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
