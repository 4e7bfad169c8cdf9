package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rolodex/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCheckContactCreate(t *testing.T) {
	tests := []struct {
		name    string
		contact models.Contact
		want    []string
	}{
		{
			name: "valid contact",
			contact: models.Contact{
				FirstName:     "Ada",
				LastName:      "Lovelace",
				Email:         "ada@example.com",
				FavoriteColor: "green",
				Birthday:      "1815-12-10",
			},
			want: nil,
		},
		{
			name:    "all fields missing",
			contact: models.Contact{},
			want: []string{
				"firstName is required",
				"lastName is required",
				"email is required",
				"favoriteColor is required",
				"birthday is required",
			},
		},
		{
			name: "email without dot",
			contact: models.Contact{
				FirstName:     "Ada",
				LastName:      "Lovelace",
				Email:         "ada@example",
				FavoriteColor: "green",
				Birthday:      "1815-12-10",
			},
			want: []string{"email must be a valid email address"},
		},
		{
			name: "email with whitespace",
			contact: models.Contact{
				FirstName:     "Ada",
				LastName:      "Lovelace",
				Email:         "ada lovelace@example.com",
				FavoriteColor: "green",
				Birthday:      "1815-12-10",
			},
			want: []string{"email must be a valid email address"},
		},
		{
			name: "birthday wrong shape",
			contact: models.Contact{
				FirstName:     "Ada",
				LastName:      "Lovelace",
				Email:         "ada@example.com",
				FavoriteColor: "green",
				Birthday:      "1815-2-10",
			},
			want: []string{"birthday must match YYYY-MM-DD"},
		},
		{
			name: "impossible calendar date passes shape check",
			contact: models.Contact{
				FirstName:     "Ada",
				LastName:      "Lovelace",
				Email:         "ada@example.com",
				FavoriteColor: "green",
				Birthday:      "2023-02-30",
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(&tt.contact))
		})
	}
}

func TestCheckProfessionalCreate(t *testing.T) {
	valid := models.Professional{
		ProfessionalName: "Ada Lovelace",
		Tagline:          "First programmer",
		Description:      "Wrote the first algorithm intended for a machine.",
	}
	assert.Nil(t, Check(&valid))

	short := models.Professional{
		ProfessionalName: "A",
		Tagline:          "tiny",
		Description:      "too short",
	}
	assert.Equal(t, []string{
		"professionalName must be at least 2 characters",
		"tagline must be at least 5 characters",
		"description must be at least 10 characters",
	}, Check(&short))
}

func TestContactPatch(t *testing.T) {
	t.Run("no fields supplied is valid here", func(t *testing.T) {
		assert.Nil(t, ContactPatch(&models.ContactUpdate{}))
	})

	t.Run("supplied fields keep their format rules", func(t *testing.T) {
		assert.Equal(t,
			[]string{"email must be a valid email address"},
			ContactPatch(&models.ContactUpdate{Email: strPtr("nope")}))
		assert.Equal(t,
			[]string{"birthday must match YYYY-MM-DD"},
			ContactPatch(&models.ContactUpdate{Birthday: strPtr("01-01-2020")}))
	})

	t.Run("supplied empty field is rejected", func(t *testing.T) {
		assert.Equal(t,
			[]string{"firstName is required"},
			ContactPatch(&models.ContactUpdate{FirstName: strPtr("")}))
	})

	t.Run("valid partial update", func(t *testing.T) {
		assert.Nil(t, ContactPatch(&models.ContactUpdate{
			FavoriteColor: strPtr("blue"),
			Email:         strPtr("new@example.com"),
		}))
	})
}

func TestUserPatch(t *testing.T) {
	assert.Nil(t, UserPatch(&models.UserUpdate{Email: strPtr("ok@example.com")}))
	assert.Equal(t,
		[]string{"email must be a valid email address"},
		UserPatch(&models.UserUpdate{Email: strPtr("bad@bad")}))
}

func TestProfessionalPatch(t *testing.T) {
	assert.Nil(t, ProfessionalPatch(&models.ProfessionalUpdate{}))
	assert.Nil(t, ProfessionalPatch(&models.ProfessionalUpdate{
		Tagline: strPtr("long enough"),
		ProudOf: strPtr(""),
	}))
	assert.Equal(t,
		[]string{"tagline must be at least 5 characters"},
		ProfessionalPatch(&models.ProfessionalUpdate{Tagline: strPtr("tiny")}))
	assert.Equal(t,
		[]string{"description must be at least 10 characters"},
		ProfessionalPatch(&models.ProfessionalUpdate{Description: strPtr("short")}))
}
