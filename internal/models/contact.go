package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Contact struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName     string             `json:"firstName" bson:"firstName" validate:"required"`
	LastName      string             `json:"lastName" bson:"lastName" validate:"required"`
	Email         string             `json:"email" bson:"email" validate:"required,simpleemail"`
	FavoriteColor string             `json:"favoriteColor" bson:"favoriteColor" validate:"required"`
	Birthday      string             `json:"birthday" bson:"birthday" validate:"required,shortdate"`
}

type ContactUpdate struct {
	FirstName     *string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Email         *string `json:"email,omitempty" bson:"email,omitempty"`
	FavoriteColor *string `json:"favoriteColor,omitempty" bson:"favoriteColor,omitempty"`
	Birthday      *string `json:"birthday,omitempty" bson:"birthday,omitempty"`
}

// Normalize trims every string field and lower-cases the email. Stored
// documents and uniqueness comparisons always see the normalized form.
func (c *Contact) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.FavoriteColor = strings.TrimSpace(c.FavoriteColor)
	c.Birthday = strings.TrimSpace(c.Birthday)
}

func (u *ContactUpdate) Normalize() {
	trimPtr(u.FirstName)
	trimPtr(u.LastName)
	trimPtr(u.FavoriteColor)
	trimPtr(u.Birthday)
	if u.Email != nil {
		*u.Email = strings.ToLower(strings.TrimSpace(*u.Email))
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
