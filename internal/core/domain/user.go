package domain

import (
	"strings"
	"time"
)

// Role is the closed set of actor roles. Every component that branches on a
// role compares against these constants, never raw strings from the wire.
type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleOwner           Role = "OWNER"
	RoleTenant          Role = "TENANT"
	RoleAccountant      Role = "ACCOUNTANT"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleTenant, RoleAccountant, RoleServiceProvider:
		return true
	}
	return false
}

// Status gates whether an account may authenticate. Only ACTIVE users can
// log in; deactivation is a transition to INACTIVE, never a hard delete.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusPending  Status = "PENDING"
)

// Valid reports whether s is one of the known account statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// User is the credential-store record for an account.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	Role         Role       `json:"role"`
	Status       Status     `json:"status"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AuthUser is the public view of an authenticated user handed to callers.
// It never carries the password hash.
type AuthUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// PublicView projects the credential record onto its safe external shape.
func (u *User) PublicView() *AuthUser {
	return &AuthUser{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}

// NormalizeEmail lower-cases and trims an email so lookups are exact-match.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
