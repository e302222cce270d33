package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

func sampleSubmission() *domain.Submission {
	s := &domain.Submission{
		ID:          "b2f1c9e0-3c55-4a0e-9f1d-0a6c2f9e8d71",
		SubmittedAt: time.Date(2026, time.February, 10, 9, 30, 0, 0, time.UTC),
	}
	s.FullName = "Aisha Rahman"
	s.Gender = domain.GenderFemale
	s.DateOfBirth = "2014-03-12"
	s.Country = "gb"
	s.Timezone = "utc+0"
	s.NativeLanguage = "english"
	s.GuardianName = "Omar Rahman"
	s.Relationship = domain.RelationshipFather
	s.WhatsappNumber = "+447700900123"
	s.Email = "omar@example.com"
	s.Level = domain.LevelBeginner
	s.QuranReadingAbility = domain.QuranCannotRead
	s.TajweedKnowledge = domain.TajweedNone
	s.InterestAreas = []domain.InterestArea{domain.InterestSpelling, domain.InterestIslamicStudies}
	s.PreferredDays = []domain.Weekday{domain.Saturday, domain.Sunday}
	s.PreferredTime = "Weekend mornings"
	s.ClassType = domain.ClassGroup
	s.Declaration = true
	return s
}

func TestApplicationProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Application(context.Background(), sampleSubmission(), &buf); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if buf.Len() < 1000 {
		t.Errorf("suspiciously small output: %d bytes", buf.Len())
	}
}

func TestApplicationWithAdditionalInfo(t *testing.T) {
	s := sampleSubmission()
	s.SpecialNeeds = "Needs a slower pace"
	s.ReferralSource = domain.ReferralFriendFamily
	s.Questions = "Are classes recorded?"

	var withExtra, without bytes.Buffer
	g := New()
	if err := g.Application(context.Background(), s, &withExtra); err != nil {
		t.Fatalf("generate with extras: %v", err)
	}
	if err := g.Application(context.Background(), sampleSubmission(), &without); err != nil {
		t.Fatalf("generate without extras: %v", err)
	}
	if withExtra.Len() <= without.Len() {
		t.Error("additional information section did not grow the document")
	}
}

func TestApplicationSectionLabels(t *testing.T) {
	s := sampleSubmission()
	s.Relationship = domain.RelationshipFather
	s.SpecialNeeds = "Needs a slower pace"

	rows := make(map[string]string)
	for _, sec := range applicationSections(s) {
		for _, row := range sec.rows {
			rows[row[0]] = row[1]
		}
	}

	// Gender and level capitalize; relationship stays verbatim.
	if got := rows["Gender"]; got != "Female" {
		t.Errorf("Gender = %q, want Female", got)
	}
	if got := rows["Level"]; got != "Beginner" {
		t.Errorf("Level = %q, want Beginner", got)
	}
	if got := rows["Relationship"]; got != "father" {
		t.Errorf("Relationship = %q, want father", got)
	}
	if got := rows["Quran Reading Ability"]; got != "cannot read" {
		t.Errorf("Quran Reading Ability = %q, want cannot read", got)
	}
	if got := rows["Previous Madrasah"]; got != "N/A" {
		t.Errorf("Previous Madrasah = %q, want N/A", got)
	}
	if got := rows["Special Needs"]; got != "Needs a slower pace" {
		t.Errorf("Special Needs = %q", got)
	}
}

func TestApplicationSectionsOmitEmptyExtras(t *testing.T) {
	secs := applicationSections(sampleSubmission())
	if len(secs) != 4 {
		t.Fatalf("expected 4 sections without extras, got %d", len(secs))
	}
	if secs[len(secs)-1].title == "Additional Information" {
		t.Error("additional section rendered with no answers")
	}
}

func TestReportProducesPDF(t *testing.T) {
	subs := []domain.Submission{*sampleSubmission(), *sampleSubmission()}
	var buf bytes.Buffer
	if err := New().Report(context.Background(), subs, &buf); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestReportEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Report(context.Background(), nil, &buf); err != nil {
		t.Fatalf("empty report should still render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestReportManyRowsPaginates(t *testing.T) {
	subs := make([]domain.Submission, 60)
	for i := range subs {
		subs[i] = *sampleSubmission()
	}
	var buf bytes.Buffer
	if err := New().Report(context.Background(), subs, &buf); err != nil {
		t.Fatalf("generate: %v", err)
	}
	// A 60-row table cannot fit one landscape letter page.
	if n := bytes.Count(buf.Bytes(), []byte("/Page")); n < 2 {
		t.Errorf("expected multiple pages, found %d page markers", n)
	}
}

func TestApplicationFilename(t *testing.T) {
	s := sampleSubmission()
	if got := ApplicationFilename(s); got != "enrollment-aisha-rahman.pdf" {
		t.Errorf("filename = %q", got)
	}

	s.FullName = "  Muhammad   Al  Amin "
	if got := ApplicationFilename(s); got != "enrollment-muhammad-al-amin.pdf" {
		t.Errorf("filename = %q", got)
	}
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC)
	got := ReportFilename(now)
	if got != "enrollment-report-2026-08-31.pdf" {
		t.Errorf("filename = %q", got)
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("missing extension: %q", got)
	}
}
