// Package validation checks enrollment form input server-side and maps
// failures to the messages shown next to each form field.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

var (
	validate *validator.Validate

	// Deliberately loose: one "@", at least one "." in the domain part,
	// no whitespace. Matches what the form itself accepted.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// enumValue is implemented by every closed form enum in the domain package.
type enumValue interface {
	Valid() bool
}

func init() {
	validate = validator.New()

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(validate.RegisterValidation("notblank", notBlank))
	must(validate.RegisterValidation("enum", knownEnum))
	must(validate.RegisterValidation("email_basic", basicEmail))
	must(validate.RegisterValidation("country", knownCountry))
	must(validate.RegisterValidation("language", knownLanguage))
	must(validate.RegisterValidation("tzcode", knownTimezone))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func knownEnum(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(enumValue)
	if !ok {
		return false
	}
	return v.Valid()
}

func basicEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func knownCountry(fl validator.FieldLevel) bool {
	return domain.IsCountry(fl.Field().String())
}

func knownLanguage(fl validator.FieldLevel) bool {
	return domain.IsLanguage(fl.Field().String())
}

func knownTimezone(fl validator.FieldLevel) bool {
	return domain.IsTimezone(fl.Field().String())
}

// fieldMessages maps "field" or "field.tag" to the message the form shows.
// The tag-qualified key wins so email can distinguish missing from malformed.
var fieldMessages = map[string]string{
	"fullName":            "Full name is required",
	"gender":              "Please select gender",
	"dateOfBirth":         "Date of birth is required",
	"country":             "Please select country",
	"timezone":            "Please select a valid timezone",
	"nativeLanguage":      "Please select native language",
	"guardianName":        "Guardian name is required",
	"relationship":        "Please select relationship",
	"whatsappNumber":      "WhatsApp number is required",
	"email.notblank":      "Email is required",
	"email.email_basic":   "Please enter a valid email",
	"level":               "Please select level",
	"quranReadingAbility": "Please select reading ability",
	"tajweedKnowledge":    "Please select Tajweed knowledge",
	"interestAreas":       "Please select at least one interest area",
	"preferredDays":       "Please select at least one day",
	"preferredTime":       "Please specify preferred time",
	"classType":           "Please select class type",
	"referralSource":      "Please select a valid option",
	"declaration":         "Please confirm the declaration",
}

// Validate checks one submission and returns field-keyed error messages.
// A nil map means the input is acceptable. Only the first failure per field
// is reported, which is all the form can display anyway.
func Validate(in domain.SubmissionInput) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError only happens for non-struct input.
		panic(err)
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := baseField(fe.Field())
		if _, dup := out[field]; dup {
			continue
		}
		if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		if msg, ok := fieldMessages[field]; ok {
			out[field] = msg
			continue
		}
		out[field] = "Invalid value"
	}
	return out
}

// baseField strips the dive index a slice element failure carries,
// e.g. "interestAreas[1]" -> "interestAreas".
func baseField(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}
