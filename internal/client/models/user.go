package models

import "time"

// User is the single local profile.
//
// Invariants: BirthDate is not after "now"; CreatedAt is not after UpdatedAt.
type User struct {
	// ID is generated once when the profile is first saved.
	ID string `validate:"required"`
	// Name is the display name collected during onboarding.
	Name string `validate:"required,max=100"`

	BirthDate time.Time
	CreatedAt time.Time
	// UpdatedAt is refreshed on every edit.
	UpdatedAt time.Time
}

// UserPatch is a shallow, field-level update. Nil fields are left unchanged.
type UserPatch struct {
	ID        *string
	Name      *string
	BirthDate *time.Time
	CreatedAt *time.Time
}

// Apply returns a copy of u with every non-nil patch field overwritten.
// UpdatedAt is not touched; the store sets it.
func (p UserPatch) Apply(u User) User {
	if p.ID != nil {
		u.ID = *p.ID
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.BirthDate != nil {
		u.BirthDate = *p.BirthDate
	}
	if p.CreatedAt != nil {
		u.CreatedAt = *p.CreatedAt
	}
	return u
}
