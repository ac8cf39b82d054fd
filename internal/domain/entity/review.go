// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// Review is a rating plus text left by a customer for a business user.
// At most one review exists per (reviewer, business_user) pair; both
// identity references are immutable after creation.
type Review struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the review.
	BusinessUserID uuid.UUID // The reviewed business user. Immutable.
	ReviewerID     uuid.UUID // The customer that wrote the review. Immutable.
	Rating         int       // Integer rating, 1 to 5.
	Description    string    // Non-empty review text.
	CreatedAt      time.Time // Timestamp of when this review was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
