package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project categories.
var ProjectCategories = []string{"Residential", "Commercial", "Industrial", "Infrastructure", "Renovation"}

// Project statuses.
var ProjectStatuses = []string{"Planning", "In Progress", "Completed", "On Hold"}

// ProjectImage is one entry in a project's image gallery. At most one image
// per project should carry IsMain; create/update demote extras.
type ProjectImage struct {
	URL     string `bson:"url" json:"url"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
	IsMain  bool   `bson:"isMain" json:"isMain"`
}

// ProjectSpecs holds the physical specifications of a project.
type ProjectSpecs struct {
	Area   string `bson:"area,omitempty" json:"area,omitempty"`
	Floors string `bson:"floors,omitempty" json:"floors,omitempty"`
	Units  string `bson:"units,omitempty" json:"units,omitempty"`
}

// Project is a construction project shown on the public site and managed
// through the admin dashboard.
type Project struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Category       string             `bson:"category" json:"category"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Client         string             `bson:"client,omitempty" json:"client,omitempty"`
	StartDate      *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status         string             `bson:"status" json:"status"`
	Budget         string             `bson:"budget,omitempty" json:"budget,omitempty"`
	Images         []ProjectImage     `bson:"images,omitempty" json:"images,omitempty"`
	Features       []string           `bson:"features,omitempty" json:"features,omitempty"`
	Specifications ProjectSpecs       `bson:"specifications,omitempty" json:"specifications"`
	Highlights     []string           `bson:"highlights,omitempty" json:"highlights,omitempty"`
	IsFeatured     bool               `bson:"isFeatured" json:"isFeatured"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedBy      string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy      string             `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`

	// DurationMonths is derived from StartDate/EndDate at the serialization
	// boundary; it is never stored.
	DurationMonths int `bson:"-" json:"durationMonths,omitempty"`
}

// Duration returns the project duration in whole months, or 0 when either
// date is missing or the range is inverted.
func (p *Project) Duration() int {
	if p.StartDate == nil || p.EndDate == nil || p.EndDate.Before(*p.StartDate) {
		return 0
	}
	years := p.EndDate.Year() - p.StartDate.Year()
	months := int(p.EndDate.Month()) - int(p.StartDate.Month())
	return years*12 + months
}

// NormalizeMainImage keeps IsMain on the first image that claims it and
// clears the flag from the rest. With no claimants the first image becomes
// main.
func (p *Project) NormalizeMainImage() {
	if len(p.Images) == 0 {
		return
	}
	seen := false
	for i := range p.Images {
		if p.Images[i].IsMain {
			if seen {
				p.Images[i].IsMain = false
			}
			seen = true
		}
	}
	if !seen {
		p.Images[0].IsMain = true
	}
}

// ProjectListOptions carries filter and pagination parameters for listing
// projects.
type ProjectListOptions struct {
	Category   string
	Status     string
	Search     string // matches name, description, location, client
	Featured   *bool
	Active     *bool
	ActiveOnly bool // forced on public endpoints
	Page       PageQuery
}

// ProjectStats is the aggregated overview returned by the admin stats
// endpoint. Zero-valued when the collection is empty.
type ProjectStats struct {
	Total      int64            `json:"total"`
	Featured   int64            `json:"featured"`
	Active     int64            `json:"active"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByCategory map[string]int64 `json:"byCategory"`
}
