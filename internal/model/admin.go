package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Administrator roles. SuperAdmin additionally manages administrator accounts.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Roles lists all valid administrator roles.
var Roles = []string{RoleAdmin, RoleSuperAdmin}

// Admin is an administrator account. The bcrypt password hash is stored in
// the document but never serialized to JSON.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AdminListOptions carries filter and pagination parameters for listing
// administrator accounts.
type AdminListOptions struct {
	Role   string
	Active *bool
	Search string // matches username and email
	Page   PageQuery
}
