package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Host is the authenticated owner of forms. A host document must exist
// before the first form insert for that principal; the hosts service
// bootstraps it lazily.
type Host struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email            string             `bson:"email" json:"email"`
	Name             string             `bson:"name" json:"name"`
	Password         string             `bson:"password,omitempty" json:"-"` // bcrypt hash, never returned
	ActiveFormsCount int                `bson:"activeFormsCount" json:"activeFormsCount"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
