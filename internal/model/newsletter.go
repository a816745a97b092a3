package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is a newsletter subscription. Unsubscribe is a soft delete:
// the record stays and IsActive flips false, so a later subscribe
// reactivates it instead of duplicating.
type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	Source       string             `bson:"source,omitempty" json:"source,omitempty"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeEmail lowercases and trims an email for case-insensitive
// uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SubscriberListOptions carries filter and pagination parameters for listing
// subscribers.
type SubscriberListOptions struct {
	Active *bool
	Search string // matches email
	Page   PageQuery
}
