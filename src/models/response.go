package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is one submitted answer set for a form. Immutable once stored,
// except for deletion by the owning host.
type Response struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	FormID     primitive.ObjectID     `bson:"formId" json:"formId"`
	Answers    map[string]interface{} `bson:"answers" json:"answers"`
	DeviceHash string                 `bson:"deviceHash" json:"deviceHash"`
	CreatedAt  time.Time              `bson:"createdAt" json:"createdAt"`
}

// ResponseSubmit is the request body for an anonymous submission.
type ResponseSubmit struct {
	Answers map[string]interface{} `json:"answers" validate:"required"`
}

// ResponseView is the normalized shape returned to the form owner.
// Answers is never nil.
type ResponseView struct {
	ID         primitive.ObjectID     `json:"id"`
	FormID     primitive.ObjectID     `json:"formId"`
	Answers    map[string]interface{} `json:"answers"`
	DeviceHash string                 `json:"deviceHash"`
	CreatedAt  time.Time              `json:"createdAt"`
}
