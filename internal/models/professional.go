package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Professional is a singleton resource: its collection holds at most one
// document at any time.
type Professional struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProfessionalName string             `json:"professionalName" bson:"professionalName" validate:"required,min=2"`
	Tagline          string             `json:"tagline" bson:"tagline" validate:"required,min=5"`
	Description      string             `json:"description" bson:"description" validate:"required,min=10"`
	Base64Image      string             `json:"base64Image" bson:"base64Image"`
	ProudOf          string             `json:"proudOf" bson:"proudOf"`
	Collaboration    string             `json:"collaboration" bson:"collaboration"`
	CurrentFocus     string             `json:"currentFocus" bson:"currentFocus"`
	CurrentLearning  string             `json:"currentLearning" bson:"currentLearning"`
}

type ProfessionalUpdate struct {
	ProfessionalName *string `json:"professionalName,omitempty" bson:"professionalName,omitempty"`
	Tagline          *string `json:"tagline,omitempty" bson:"tagline,omitempty"`
	Description      *string `json:"description,omitempty" bson:"description,omitempty"`
	Base64Image      *string `json:"base64Image,omitempty" bson:"base64Image,omitempty"`
	ProudOf          *string `json:"proudOf,omitempty" bson:"proudOf,omitempty"`
	Collaboration    *string `json:"collaboration,omitempty" bson:"collaboration,omitempty"`
	CurrentFocus     *string `json:"currentFocus,omitempty" bson:"currentFocus,omitempty"`
	CurrentLearning  *string `json:"currentLearning,omitempty" bson:"currentLearning,omitempty"`
}

func (p *Professional) Normalize() {
	p.ProfessionalName = strings.TrimSpace(p.ProfessionalName)
	p.Tagline = strings.TrimSpace(p.Tagline)
	p.Description = strings.TrimSpace(p.Description)
	p.Base64Image = strings.TrimSpace(p.Base64Image)
	p.ProudOf = strings.TrimSpace(p.ProudOf)
	p.Collaboration = strings.TrimSpace(p.Collaboration)
	p.CurrentFocus = strings.TrimSpace(p.CurrentFocus)
	p.CurrentLearning = strings.TrimSpace(p.CurrentLearning)
}

func (u *ProfessionalUpdate) Normalize() {
	trimPtr(u.ProfessionalName)
	trimPtr(u.Tagline)
	trimPtr(u.Description)
	trimPtr(u.Base64Image)
	trimPtr(u.ProudOf)
	trimPtr(u.Collaboration)
	trimPtr(u.CurrentFocus)
	trimPtr(u.CurrentLearning)
}
