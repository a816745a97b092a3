package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact workflow statuses. Any status can be set at any time; transition
// legality is not enforced.
var ContactStatuses = []string{"New", "In Progress", "Contacted", "Quoted", "Converted", "Closed"}

// Contact priorities.
var ContactPriorities = []string{"Low", "Medium", "High"}

// ContactNote is an admin-authored note on a submission.
type ContactNote struct {
	Text      string    `bson:"text" json:"text"`
	Author    string    `bson:"author" json:"author"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Contact is a contact-form submission together with its moderation state.
// Submissions are created unauthenticated; all later mutation is admin-only.
type Contact struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string             `bson:"message" json:"message"`

	// Classification supplied by the visitor.
	Service     string `bson:"service,omitempty" json:"service,omitempty"`
	ProjectType string `bson:"projectType,omitempty" json:"projectType,omitempty"`
	Budget      string `bson:"budget,omitempty" json:"budget,omitempty"`
	Timeline    string `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`

	// Workflow state managed by admins.
	Status       string        `bson:"status" json:"status"`
	Priority     string        `bson:"priority" json:"priority"`
	Source       string        `bson:"source,omitempty" json:"source,omitempty"`
	AssignedTo   string        `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Notes        []ContactNote `bson:"notes,omitempty" json:"notes,omitempty"`
	FollowUpDate *time.Time    `bson:"followUpDate,omitempty" json:"followUpDate,omitempty"`
	IsRead       bool          `bson:"isRead" json:"isRead"`

	IPAddress string    `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ContactListOptions carries filter and pagination parameters for listing
// submissions.
type ContactListOptions struct {
	Status     string
	Priority   string
	AssignedTo string
	Unread     *bool
	Search     string // matches name, email, subject, message
	Page       PageQuery
}

// ContactStats is the aggregated overview returned by the admin stats
// endpoint.
type ContactStats struct {
	Total    int64            `json:"total"`
	Unread   int64            `json:"unread"`
	ByStatus map[string]int64 `json:"byStatus"`
	BySource map[string]int64 `json:"bySource"`
}
