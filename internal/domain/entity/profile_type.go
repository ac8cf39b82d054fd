// Package entity contains the core business objects of the project.
package entity

import "slices"

// ProfileType represents the kind of marketplace profile a user owns.
type ProfileType string

const (
	// ProfileTypeBusiness indicates a business profile that publishes offers.
	ProfileTypeBusiness ProfileType = "business"
	// ProfileTypeCustomer indicates a customer profile that places orders.
	ProfileTypeCustomer ProfileType = "customer"
)

// String returns the string representation of the ProfileType.
func (t ProfileType) String() string {
	return string(t)
}

// IsValid checks if the ProfileType is a valid value.
func (t ProfileType) IsValid() bool {
	switch t {
	case ProfileTypeBusiness, ProfileTypeCustomer:
		return true
	default:
		return false
	}
}

// ProfileTypes is a slice of ProfileType for convenience.
type ProfileTypes []ProfileType

// Contains checks if the slice contains a specific profile type.
func (ts ProfileTypes) Contains(t ProfileType) bool {
	return slices.Contains(ts, t)
}

// ToStrings converts ProfileTypes to []string for JWT compatibility.
func (ts ProfileTypes) ToStrings() []string {
	result := make([]string, len(ts))
	for i, t := range ts {
		result[i] = t.String()
	}

	return result
}

// ProfileTypesFromStrings converts []string to ProfileTypes, filtering out invalid values.
func ProfileTypesFromStrings(ss []string) ProfileTypes {
	result := make(ProfileTypes, 0, len(ss))
	for _, s := range ss {
		t := ProfileType(s)
		if t.IsValid() {
			result = append(result, t)
		}
	}

	return result
}
