package domain

import "time"

// Audience selects which residents an announcement targets.
type Audience string

const (
	AudienceAll     Audience = "ALL"
	AudienceOwners  Audience = "OWNERS"
	AudienceTenants Audience = "TENANTS"
)

// Announcement is a notice published by the syndic to residents.
type Announcement struct {
	ID         string     `json:"id"`
	AuthorID   string     `json:"author_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Category   string     `json:"category,omitempty"`
	Priority   string     `json:"priority,omitempty"`
	Pinned     bool       `json:"pinned"`
	Audience   Audience   `json:"audience"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
