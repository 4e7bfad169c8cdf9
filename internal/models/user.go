package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User carries the same field set as Contact but lives in its own
// collection with its own uniqueness scope.
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName     string             `json:"firstName" bson:"firstName" validate:"required"`
	LastName      string             `json:"lastName" bson:"lastName" validate:"required"`
	Email         string             `json:"email" bson:"email" validate:"required,simpleemail"`
	FavoriteColor string             `json:"favoriteColor" bson:"favoriteColor" validate:"required"`
	Birthday      string             `json:"birthday" bson:"birthday" validate:"required,shortdate"`
}

type UserUpdate struct {
	FirstName     *string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Email         *string `json:"email,omitempty" bson:"email,omitempty"`
	FavoriteColor *string `json:"favoriteColor,omitempty" bson:"favoriteColor,omitempty"`
	Birthday      *string `json:"birthday,omitempty" bson:"birthday,omitempty"`
}

func (u *User) Normalize() {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.FavoriteColor = strings.TrimSpace(u.FavoriteColor)
	u.Birthday = strings.TrimSpace(u.Birthday)
}

func (u *UserUpdate) Normalize() {
	trimPtr(u.FirstName)
	trimPtr(u.LastName)
	trimPtr(u.FavoriteColor)
	trimPtr(u.Birthday)
	if u.Email != nil {
		*u.Email = strings.ToLower(strings.TrimSpace(*u.Email))
	}
}
