package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Journey entry types.
var JourneyTypes = []string{"Milestone", "Achievement", "Award", "Expansion", "Project", "Partnership"}

// JourneyMetrics holds the headline numbers attached to a timeline entry.
type JourneyMetrics struct {
	Projects  int    `bson:"projects,omitempty" json:"projects,omitempty"`
	Employees int    `bson:"employees,omitempty" json:"employees,omitempty"`
	Revenue   string `bson:"revenue,omitempty" json:"revenue,omitempty"`
	Area      string `bson:"area,omitempty" json:"area,omitempty"`
}

// JourneyEntry is one milestone on the company timeline.
type JourneyEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Year        int                `bson:"year" json:"year"`
	Month       int                `bson:"month,omitempty" json:"month,omitempty"`
	Type        string             `bson:"type" json:"type"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Metrics     JourneyMetrics     `bson:"metrics,omitempty" json:"metrics"`
	Highlights  []string           `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	IsFeatured  bool               `bson:"isFeatured" json:"isFeatured"`
	Order       int                `bson:"order" json:"order"`
	CreatedBy   string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy   string             `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// JourneyListOptions carries filter and pagination parameters for listing
// timeline entries.
type JourneyListOptions struct {
	Type       string
	Year       int
	Search     string // matches title, description
	Featured   *bool
	Active     *bool
	ActiveOnly bool
	Page       PageQuery
}

// TimelineYear groups active journey entries under one year for the public
// timeline view.
type TimelineYear struct {
	Year    int             `json:"year"`
	Entries []*JourneyEntry `json:"entries"`
}
