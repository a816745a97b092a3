package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service categories. The catalog carries one more category than projects.
var ServiceCategories = []string{"Residential", "Commercial", "Industrial", "Infrastructure", "Renovation", "Consultation"}

// Service pricing types.
var PricingTypes = []string{"fixed", "hourly", "quote"}

// ServicePricing describes how a service is priced.
type ServicePricing struct {
	Type     string `bson:"type,omitempty" json:"type,omitempty"`
	Range    string `bson:"range,omitempty" json:"range,omitempty"`
	Currency string `bson:"currency,omitempty" json:"currency,omitempty"`
}

// ServiceSpecs holds delivery characteristics of a service.
type ServiceSpecs struct {
	Duration   string `bson:"duration,omitempty" json:"duration,omitempty"`
	Complexity string `bson:"complexity,omitempty" json:"complexity,omitempty"`
	TeamSize   string `bson:"teamSize,omitempty" json:"teamSize,omitempty"`
}

// Service is one entry in the construction service catalog.
type Service struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Category       string             `bson:"category" json:"category"`
	Pricing        ServicePricing     `bson:"pricing,omitempty" json:"pricing"`
	Specifications ServiceSpecs       `bson:"specifications,omitempty" json:"specifications"`
	Features       []string           `bson:"features,omitempty" json:"features,omitempty"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	IsFeatured     bool               `bson:"isFeatured" json:"isFeatured"`
	Order          int                `bson:"order" json:"order"`
	CreatedBy      string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy      string             `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ServiceListOptions carries filter and pagination parameters for listing
// catalog services.
type ServiceListOptions struct {
	Category   string
	Search     string // matches name, description
	Featured   *bool
	Active     *bool
	ActiveOnly bool
	Page       PageQuery
}
