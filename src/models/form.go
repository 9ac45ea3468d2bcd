package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AcceptanceState is the derived lifecycle state of a form. It is never
// stored; it is computed from the closed/isActive flags.
type AcceptanceState string

const (
	StateOpen   AcceptanceState = "open"
	StateClosed AcceptanceState = "closed"
	StateDraft  AcceptanceState = "draft"
)

// Question is a single question inside a form.
type Question struct {
	ID       string   `bson:"id" json:"id"`
	Question string   `bson:"question" json:"question"`
	Type     string   `bson:"type" json:"type"` // short_answer, paragraph, multiple_choice, checkboxes, dropdown, linear_scale, date, time
	Required bool     `bson:"required" json:"required"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`
}

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HostID      primitive.ObjectID `bson:"hostId" json:"hostId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Questions   []Question         `bson:"questions" json:"questions"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Closed      bool               `bson:"closed" json:"closed"`

	// Privacy flags are persisted but forced to true by the API layer;
	// per-form configurability is not exposed.
	Anonymous            bool `bson:"anonymous" json:"anonymous"`
	OneResponsePerDevice bool `bson:"oneResponsePerDevice" json:"oneResponsePerDevice"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AcceptanceState derives the current state from the stored flags.
// Closed is terminal and wins over isActive: a stopped form never reopens.
func (f *Form) AcceptanceState() AcceptanceState {
	if f.Closed {
		return StateClosed
	}
	if f.IsActive {
		return StateOpen
	}
	return StateDraft
}

// FormCreate is the request body for creating a form. The privacy flags are
// accepted for wire compatibility but overwritten by the service.
type FormCreate struct {
	Title                string     `json:"title" validate:"required,min=1,max=200"`
	Description          string     `json:"description" validate:"max=1000"`
	Questions            []Question `json:"questions"`
	IsActive             *bool      `json:"isActive"`
	Anonymous            bool       `json:"anonymous"`
	OneResponsePerDevice bool       `json:"oneResponsePerDevice"`
	Closed               bool       `json:"closed"`
}

// FormUpdate is the request body for updating a form. Nil fields are left
// untouched. closed is deliberately absent: only PATCH /forms/:id/stop may
// set it.
type FormUpdate struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Questions   []Question `json:"questions"`
	IsActive    *bool      `json:"isActive"`
}

// FormListItem is the trimmed projection returned by GET /forms.
type FormListItem struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Closed      bool               `bson:"closed" json:"closed"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
