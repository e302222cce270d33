package domain

import (
	"strings"
	"time"
	"unicode"
)

// Gender is the applicant's gender as captured on the form.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Relationship describes the guardian's relationship to the student.
type Relationship string

const (
	RelationshipFather   Relationship = "father"
	RelationshipMother   Relationship = "mother"
	RelationshipGuardian Relationship = "guardian"
	RelationshipOther    Relationship = "other"
)

// Level is the student's overall level of Islamic education.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// QuranAbility grades the student's current Quran reading ability.
type QuranAbility string

const (
	QuranCannotRead QuranAbility = "cannot_read"
	QuranBasic      QuranAbility = "basic"
	QuranFluent     QuranAbility = "fluent"
	QuranMemorizing QuranAbility = "memorizing"
)

// TajweedLevel grades the student's knowledge of Tajweed rules.
type TajweedLevel string

const (
	TajweedNone         TajweedLevel = "none"
	TajweedBasic        TajweedLevel = "basic"
	TajweedIntermediate TajweedLevel = "intermediate"
	TajweedAdvanced     TajweedLevel = "advanced"
)

// InterestArea is one of the programs a student can enroll for.
type InterestArea string

const (
	InterestSpelling       InterestArea = "spelling"
	InterestArabic         InterestArea = "arabic"
	InterestHifz           InterestArea = "hifz"
	InterestTajweed        InterestArea = "tajweed"
	InterestIslamicStudies InterestArea = "islamic_studies"
)

// Weekday is a preferred class day.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// ClassType selects between private and group tuition.
type ClassType string

const (
	ClassOneOnOne ClassType = "one_on_one"
	ClassGroup    ClassType = "group"
)

// ReferralSource records how the applicant heard about the madrasah.
// It is optional on the form; the empty value means "not answered".
type ReferralSource string

const (
	ReferralSocialMedia   ReferralSource = "social_media"
	ReferralFriendFamily  ReferralSource = "friend_family"
	ReferralSearchEngine  ReferralSource = "search_engine"
	ReferralMosque        ReferralSource = "mosque"
	ReferralAdvertisement ReferralSource = "advertisement"
	ReferralOther         ReferralSource = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

func (r Relationship) Valid() bool {
	switch r {
	case RelationshipFather, RelationshipMother, RelationshipGuardian, RelationshipOther:
		return true
	}
	return false
}

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func (q QuranAbility) Valid() bool {
	switch q {
	case QuranCannotRead, QuranBasic, QuranFluent, QuranMemorizing:
		return true
	}
	return false
}

func (t TajweedLevel) Valid() bool {
	switch t {
	case TajweedNone, TajweedBasic, TajweedIntermediate, TajweedAdvanced:
		return true
	}
	return false
}

func (a InterestArea) Valid() bool {
	switch a {
	case InterestSpelling, InterestArabic, InterestHifz, InterestTajweed, InterestIslamicStudies:
		return true
	}
	return false
}

func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

func (c ClassType) Valid() bool {
	switch c {
	case ClassOneOnOne, ClassGroup:
		return true
	}
	return false
}

func (r ReferralSource) Valid() bool {
	switch r {
	case ReferralSocialMedia, ReferralFriendFamily, ReferralSearchEngine,
		ReferralMosque, ReferralAdvertisement, ReferralOther:
		return true
	}
	return false
}

func (g Gender) Label() string         { return capitalize(string(g)) }
func (r Relationship) Label() string   { return capitalize(string(r)) }
func (l Level) Label() string          { return capitalize(string(l)) }
func (q QuranAbility) Label() string   { return Humanize(string(q)) }
func (t TajweedLevel) Label() string   { return Humanize(string(t)) }
func (a InterestArea) Label() string   { return Humanize(string(a)) }
func (d Weekday) Label() string        { return capitalize(string(d)) }
func (c ClassType) Label() string      { return Humanize(string(c)) }
func (r ReferralSource) Label() string { return Humanize(string(r)) }

// Humanize replaces underscore separators in an enum code with spaces,
// e.g. "cannot_read" -> "cannot read".
func Humanize(code string) string {
	return strings.ReplaceAll(code, "_", " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// JoinInterests renders an interest set as a comma-joined, humanized list
// for table cells and report columns.
func JoinInterests(areas []InterestArea) string {
	parts := make([]string, len(areas))
	for i, a := range areas {
		parts[i] = Humanize(string(a))
	}
	return strings.Join(parts, ", ")
}

// JoinDays renders a preferred-day set as a comma-joined list.
func JoinDays(days []Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}

// SubmissionInput carries the applicant-entered fields of one enrollment
// application, before the repository assigns identity and timestamp.
// The validate tags drive the validation package; json tags double as the
// field keys of the validation error map.
type SubmissionInput struct {
	// Student information
	FullName       string `json:"fullName" validate:"notblank"`
	Gender         Gender `json:"gender" validate:"enum"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required"`
	Country        string `json:"country" validate:"country"`
	Timezone       string `json:"timezone" validate:"omitempty,tzcode"`
	NativeLanguage string `json:"nativeLanguage" validate:"language"`

	// Parent/guardian information
	GuardianName   string       `json:"guardianName" validate:"notblank"`
	Relationship   Relationship `json:"relationship" validate:"enum"`
	WhatsappNumber string       `json:"whatsappNumber" validate:"notblank"`
	Email          string       `json:"email" validate:"notblank,email_basic"`

	// Academic background
	Level               Level        `json:"level" validate:"enum"`
	QuranReadingAbility QuranAbility `json:"quranReadingAbility" validate:"enum"`
	TajweedKnowledge    TajweedLevel `json:"tajweedKnowledge" validate:"enum"`
	PreviousMadrasah    string       `json:"previousMadrasah"`

	// Class preferences
	InterestAreas []InterestArea `json:"interestAreas" validate:"min=1,dive,enum"`
	PreferredDays []Weekday      `json:"preferredDays" validate:"min=1,dive,enum"`
	PreferredTime string         `json:"preferredTime" validate:"notblank"`
	ClassType     ClassType      `json:"classType" validate:"enum"`

	// Additional information (all optional)
	SpecialNeeds   string         `json:"specialNeeds"`
	ReferralSource ReferralSource `json:"referralSource" validate:"omitempty,enum"`
	Questions      string         `json:"questions"`

	// Accuracy acknowledgment checkbox.
	Declaration bool `json:"declaration" validate:"eq=true"`
}

// Submission is one persisted enrollment application. ID and SubmittedAt are
// assigned by the repository on insert and never change afterwards. The record
// itself is append-only: there is no update or delete path.
type Submission struct {
	ID          string
	SubmittedAt time.Time
	SubmissionInput
}

// AdminUser is one operator credential for the review panel.
//
// The secret is stored and compared as plain text. That mirrors the intake
// site this service replaced and keeps its observable login contract (a
// single secret, no username at login); see DESIGN.md before shipping this
// anywhere that matters.
type AdminUser struct {
	ID        string
	Username  string
	Secret    string
	CreatedAt time.Time
}
