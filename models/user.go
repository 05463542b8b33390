package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered account document stored in the "users"
// collection. Uniqueness of Email is enforced by a unique index created at
// startup; the registration pre-check is an optimization only.
// PasswordHash must never leave the server process.
type User struct {
	// ID is the server-assigned document identifier.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	// FirstName is the user's given name.
	FirstName string `bson:"first_name" json:"first_name"`

	// LastName is the user's family name.
	LastName string `bson:"last_name" json:"last_name"`

	// Email is the unique account identifier used for login.
	Email string `bson:"email" json:"email"`

	// MarketingOptin records whether the user agreed to receive
	// product emails beyond transactional ones.
	MarketingOptin bool `bson:"marketing_optin" json:"marketing_optin"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to JSON.
	PasswordHash string `bson:"password_hash" json:"-"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
