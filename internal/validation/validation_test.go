package validation

import (
	"testing"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

func validInput() domain.SubmissionInput {
	return domain.SubmissionInput{
		FullName:            "Aisha Rahman",
		Gender:              domain.GenderFemale,
		DateOfBirth:         "2014-03-12",
		Country:             "gb",
		Timezone:            "utc+0",
		NativeLanguage:      "english",
		GuardianName:        "Omar Rahman",
		Relationship:        domain.RelationshipFather,
		WhatsappNumber:      "+44 7700 900123",
		Email:               "omar@example.com",
		Level:               domain.LevelBeginner,
		QuranReadingAbility: domain.QuranBasic,
		TajweedKnowledge:    domain.TajweedNone,
		InterestAreas:       []domain.InterestArea{domain.InterestTajweed},
		PreferredDays:       []domain.Weekday{domain.Saturday},
		PreferredTime:       "After Maghrib",
		ClassType:           domain.ClassGroup,
		Declaration:         true,
	}
}

func TestValidateAccepts(t *testing.T) {
	if errs := Validate(validInput()); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}

	// Optional fields may stay empty.
	in := validInput()
	in.Timezone = ""
	in.PreviousMadrasah = ""
	in.SpecialNeeds = ""
	in.ReferralSource = ""
	in.Questions = ""
	if errs := Validate(in); errs != nil {
		t.Fatalf("expected no errors with optional fields empty, got %v", errs)
	}
}

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SubmissionInput)
		field   string
		message string
	}{
		{
			name:    "blank full name",
			mutate:  func(in *domain.SubmissionInput) { in.FullName = "   " },
			field:   "fullName",
			message: "Full name is required",
		},
		{
			name:    "missing gender",
			mutate:  func(in *domain.SubmissionInput) { in.Gender = "" },
			field:   "gender",
			message: "Please select gender",
		},
		{
			name:    "missing date of birth",
			mutate:  func(in *domain.SubmissionInput) { in.DateOfBirth = "" },
			field:   "dateOfBirth",
			message: "Date of birth is required",
		},
		{
			name:    "unknown country code",
			mutate:  func(in *domain.SubmissionInput) { in.Country = "zz" },
			field:   "country",
			message: "Please select country",
		},
		{
			name:    "unknown language code",
			mutate:  func(in *domain.SubmissionInput) { in.NativeLanguage = "klingon" },
			field:   "nativeLanguage",
			message: "Please select native language",
		},
		{
			name:    "blank guardian name",
			mutate:  func(in *domain.SubmissionInput) { in.GuardianName = "" },
			field:   "guardianName",
			message: "Guardian name is required",
		},
		{
			name:    "missing relationship",
			mutate:  func(in *domain.SubmissionInput) { in.Relationship = "" },
			field:   "relationship",
			message: "Please select relationship",
		},
		{
			name:    "blank whatsapp number",
			mutate:  func(in *domain.SubmissionInput) { in.WhatsappNumber = " " },
			field:   "whatsappNumber",
			message: "WhatsApp number is required",
		},
		{
			name:    "missing email",
			mutate:  func(in *domain.SubmissionInput) { in.Email = "" },
			field:   "email",
			message: "Email is required",
		},
		{
			name:    "whitespace-only email",
			mutate:  func(in *domain.SubmissionInput) { in.Email = "   " },
			field:   "email",
			message: "Email is required",
		},
		{
			name:    "malformed email",
			mutate:  func(in *domain.SubmissionInput) { in.Email = "not-an-email" },
			field:   "email",
			message: "Please enter a valid email",
		},
		{
			name:    "email without dot in domain",
			mutate:  func(in *domain.SubmissionInput) { in.Email = "a@b" },
			field:   "email",
			message: "Please enter a valid email",
		},
		{
			name:    "missing level",
			mutate:  func(in *domain.SubmissionInput) { in.Level = "" },
			field:   "level",
			message: "Please select level",
		},
		{
			name:    "missing reading ability",
			mutate:  func(in *domain.SubmissionInput) { in.QuranReadingAbility = "" },
			field:   "quranReadingAbility",
			message: "Please select reading ability",
		},
		{
			name:    "missing tajweed knowledge",
			mutate:  func(in *domain.SubmissionInput) { in.TajweedKnowledge = "" },
			field:   "tajweedKnowledge",
			message: "Please select Tajweed knowledge",
		},
		{
			name:    "no interest areas",
			mutate:  func(in *domain.SubmissionInput) { in.InterestAreas = nil },
			field:   "interestAreas",
			message: "Please select at least one interest area",
		},
		{
			name: "unknown interest area",
			mutate: func(in *domain.SubmissionInput) {
				in.InterestAreas = []domain.InterestArea{"astronomy"}
			},
			field:   "interestAreas",
			message: "Please select at least one interest area",
		},
		{
			name:    "no preferred days",
			mutate:  func(in *domain.SubmissionInput) { in.PreferredDays = []domain.Weekday{} },
			field:   "preferredDays",
			message: "Please select at least one day",
		},
		{
			name:    "blank preferred time",
			mutate:  func(in *domain.SubmissionInput) { in.PreferredTime = "" },
			field:   "preferredTime",
			message: "Please specify preferred time",
		},
		{
			name:    "missing class type",
			mutate:  func(in *domain.SubmissionInput) { in.ClassType = "" },
			field:   "classType",
			message: "Please select class type",
		},
		{
			name:    "declaration unchecked",
			mutate:  func(in *domain.SubmissionInput) { in.Declaration = false },
			field:   "declaration",
			message: "Please confirm the declaration",
		},
		{
			name:    "unknown referral source",
			mutate:  func(in *domain.SubmissionInput) { in.ReferralSource = "billboard" },
			field:   "referralSource",
			message: "Please select a valid option",
		},
		{
			name:    "unknown timezone code",
			mutate:  func(in *domain.SubmissionInput) { in.Timezone = "utc+14" },
			field:   "timezone",
			message: "Please select a valid timezone",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			errs := Validate(in)
			if errs == nil {
				t.Fatalf("expected an error for %s", tc.field)
			}
			// One broken field must yield exactly one keyed error.
			if len(errs) != 1 {
				t.Fatalf("error map = %v, want only %q", errs, tc.field)
			}
			got, ok := errs[tc.field]
			if !ok {
				t.Fatalf("no error keyed by %q, got %v", tc.field, errs)
			}
			if got != tc.message {
				t.Errorf("message = %q, want %q", got, tc.message)
			}
		})
	}
}

func TestValidateCollectsAllFields(t *testing.T) {
	errs := Validate(domain.SubmissionInput{})

	// Exactly the required fields, no others: the optional fields
	// (timezone, previousMadrasah, specialNeeds, referralSource, questions)
	// must not appear for zero-value input.
	want := []string{
		"fullName", "gender", "dateOfBirth", "country", "nativeLanguage",
		"guardianName", "relationship", "whatsappNumber", "email",
		"level", "quranReadingAbility", "tajweedKnowledge",
		"interestAreas", "preferredDays", "preferredTime", "classType",
		"declaration",
	}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for _, field := range want {
		msg, ok := errs[field]
		if !ok {
			t.Errorf("field %q not flagged", field)
			continue
		}
		if msg == "" {
			t.Errorf("field %q has empty message", field)
		}
	}
}
