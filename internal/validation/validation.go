// Package validation holds the field rules for the three resource kinds.
//
// Create payloads are validated through validator struct tags; partial
// update payloads relax presence but still enforce format and length on
// every supplied field. All checks are pure: callers normalize first,
// validation only reports violations.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"rolodex/internal/models"
)

var (
	// local@domain.tld with no whitespace and a single mandatory dot in
	// the domain part. Deliberately loose; the store does not care.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// YYYY-MM-DD shape only, no calendar check (2023-02-30 passes).
	shortDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("shortdate", func(fl validator.FieldLevel) bool {
		return shortDateRe.MatchString(fl.Field().String())
	})

	return v
}

// Check runs struct-tag validation on a create payload and returns the
// ordered list of violations, or nil when the payload is valid.
func Check(payload any) []string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, message(fe.Field(), fe.Tag(), fe.Param()))
	}
	return details
}

// ContactPatch validates the supplied fields of a contact update.
func ContactPatch(u *models.ContactUpdate) []string {
	return personPatch(u.FirstName, u.LastName, u.Email, u.FavoriteColor, u.Birthday)
}

// UserPatch validates the supplied fields of a user update.
func UserPatch(u *models.UserUpdate) []string {
	return personPatch(u.FirstName, u.LastName, u.Email, u.FavoriteColor, u.Birthday)
}

// ProfessionalPatch validates the supplied fields of a professional
// update. Optional fields carry no rules beyond trimming.
func ProfessionalPatch(u *models.ProfessionalUpdate) []string {
	var details []string
	appendViolation(&details, "professionalName", u.ProfessionalName, "required,min=2")
	appendViolation(&details, "tagline", u.Tagline, "required,min=5")
	appendViolation(&details, "description", u.Description, "required,min=10")
	return details
}

func personPatch(firstName, lastName, email, favoriteColor, birthday *string) []string {
	var details []string
	appendViolation(&details, "firstName", firstName, "required")
	appendViolation(&details, "lastName", lastName, "required")
	appendViolation(&details, "email", email, "required,simpleemail")
	appendViolation(&details, "favoriteColor", favoriteColor, "required")
	appendViolation(&details, "birthday", birthday, "required,shortdate")
	return details
}

func appendViolation(details *[]string, name string, value *string, tag string) {
	if value == nil {
		return
	}
	err := validate.Var(*value, tag)
	if err == nil {
		return
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrors) == 0 {
		*details = append(*details, name+" is invalid")
		return
	}
	*details = append(*details, message(name, fieldErrors[0].Tag(), fieldErrors[0].Param()))
}

func message(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "simpleemail":
		return field + " must be a valid email address"
	case "shortdate":
		return field + " must match YYYY-MM-DD"
	default:
		return field + " is invalid"
	}
}
