// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It carries the fundamental identity information plus exactly one Profile
// that determines whether the account acts as a business or a customer.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // The unique login name.
	Email        string    // The user's primary contact email.
	FirstName    string    // The user's first name.
	LastName     string    // The user's last name.
	PasswordHash string    // The bcrypt hash of the user's password. Never serialized.
	Profile      *Profile  // The role-defining profile. Created together with the user.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// IsBusiness reports whether the user owns a business profile.
func (u *User) IsBusiness() bool {
	return u.Profile != nil && u.Profile.Type == ProfileTypeBusiness
}

// IsCustomer reports whether the user owns a customer profile.
func (u *User) IsCustomer() bool {
	return u.Profile != nil && u.Profile.Type == ProfileTypeCustomer
}

// Profile holds the public marketplace identity of a user. The Type field
// partitions which entities the owner may originate: only business profiles
// publish offers and receive reviews, only customer profiles place orders
// and write reviews.
type Profile struct {
	UserID       uuid.UUID   // Foreign Key that links this profile to a core User entity. Immutable.
	Type         ProfileType // business or customer. Immutable after creation.
	File         string      // Optional avatar / attachment reference.
	Location     string      // Free-form location text.
	Tel          string      // Contact phone number.
	Description  string      // Public description text.
	WorkingHours string      // Free-form working hours text (business profiles).
	CreatedAt    time.Time   // Timestamp of when this profile was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this profile.
}
