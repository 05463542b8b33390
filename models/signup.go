package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// EmailSignup is a prerelease notification signup document.
// Signups are append-only: they are never mutated or deleted, and duplicate
// addresses are permitted. A signup is distinct from a full User account.
type EmailSignup struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email string             `bson:"email" json:"email"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the EmailSignup model.
func (s EmailSignup) CollectionName() string {
	return "email_addresses"
}
