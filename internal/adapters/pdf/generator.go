// Package pdf renders enrollment documents. Two layouts exist: a portrait
// detail sheet for one application and a landscape table summarizing many.
package pdf

import (
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

// Generator implements the document export port with go-pdf/fpdf.
type Generator struct{}

func New() *Generator { return &Generator{} }

// Application writes a single-application detail sheet to w.
func (g *Generator) Application(ctx context.Context, s *domain.Submission, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Title ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(marginL, marginT)
	pdf.CellFormat(contentW, 10, "Student Enrollment Application", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Generated: "+time.Now().Format("Jan 2, 2006 3:04 PM"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, sec := range applicationSections(s) {
		drawSection(pdf, contentW, sec.title, sec.rows)
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetXY(marginL, pageH-24)
	pdf.CellFormat(contentW/2, 5, "Application ID: "+s.ID, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Submitted: "+s.SubmittedAt.Format("Jan 2, 2006 3:04 PM"), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}

type section struct {
	title string
	rows  [][2]string
}

// applicationSections lays out the detail sheet content. Gender and level are
// capitalized; relationship prints the stored value as-is; underscore-coded
// answers are humanized.
func applicationSections(s *domain.Submission) []section {
	sections := []section{
		{"Student Information", [][2]string{
			{"Full Name", s.FullName},
			{"Gender", s.Gender.Label()},
			{"Date of Birth", s.DateOfBirth},
			{"Country", domain.CountryLabel(s.Country)},
			{"Timezone", domain.TimezoneLabel(s.Timezone)},
			{"Native Language", domain.LanguageLabel(s.NativeLanguage)},
		}},
		{"Parent/Guardian Information", [][2]string{
			{"Guardian Name", s.GuardianName},
			{"Relationship", string(s.Relationship)},
			{"WhatsApp Number", s.WhatsappNumber},
			{"Email", s.Email},
		}},
		{"Academic Background", [][2]string{
			{"Level", s.Level.Label()},
			{"Quran Reading Ability", s.QuranReadingAbility.Label()},
			{"Tajweed Knowledge", s.TajweedKnowledge.Label()},
			{"Previous Madrasah", orNA(s.PreviousMadrasah)},
		}},
		{"Class Preferences", [][2]string{
			{"Interest Areas", domain.JoinInterests(s.InterestAreas)},
			{"Preferred Days", domain.JoinDays(s.PreferredDays)},
			{"Preferred Time", s.PreferredTime},
			{"Class Type", s.ClassType.Label()},
		}},
	}

	// The additional section only appears when at least one answer exists.
	var extra [][2]string
	if s.SpecialNeeds != "" {
		extra = append(extra, [2]string{"Special Needs", s.SpecialNeeds})
	}
	if s.ReferralSource != "" {
		extra = append(extra, [2]string{"Referral Source", s.ReferralSource.Label()})
	}
	if s.Questions != "" {
		extra = append(extra, [2]string{"Questions", s.Questions})
	}
	if len(extra) > 0 {
		sections = append(sections, section{"Additional Information", extra})
	}
	return sections
}

func drawSection(pdf *fpdf.Fpdf, contentW float64, title string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, title, "", 1, "L", false, 0, "")

	labelW := 50.0
	pdf.SetFontSize(9)
	for i, row := range rows {
		fill := i%2 == 0
		pdf.SetFillColor(244, 244, 244)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(labelW, 6, row[0], "", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW-labelW, 6, row[1], "", "L", fill)
	}
	pdf.Ln(4)
}

// Report writes a landscape table of submissions to w. Headers render even
// when the list is empty.
func (g *Generator) Report(ctx context.Context, subs []domain.Submission, w io.Writer) error {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(marginL, marginT)
	pdf.CellFormat(contentW, 9, "Student Enrollment Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6,
		"Generated: "+time.Now().Format("Jan 2, 2006 3:04 PM")+" | Total Students: "+strconv.Itoa(len(subs)),
		"", 1, "C", false, 0, "")
	pdf.Ln(3)

	headers := []string{"Date", "Student", "Gender", "Guardian", "Email", "WhatsApp", "Level", "Interests", "Class Type"}
	widths := []float64{22, 30, 18, 30, 45, 30, 20, 45, 25}

	drawReportHeader := func() {
		pdf.SetFillColor(34, 139, 34)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 8)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 8)
	}
	drawReportHeader()

	_, pageH := pdf.GetPageSize()
	for i := range subs {
		s := &subs[i]
		if pdf.GetY() > pageH-24 {
			pdf.AddPage()
			drawReportHeader()
		}
		cells := []string{
			s.SubmittedAt.Format("1/2/2006"),
			s.FullName,
			s.Gender.Label(),
			s.GuardianName,
			s.Email,
			s.WhatsappNumber,
			s.Level.Label(),
			domain.JoinInterests(s.InterestAreas),
			s.ClassType.Label(),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

var slugRe = regexp.MustCompile(`\s+`)

// ApplicationFilename names a detail-sheet download after the student,
// e.g. "enrollment-aisha-rahman.pdf".
func ApplicationFilename(s *domain.Submission) string {
	return "enrollment-" + strings.ToLower(slugRe.ReplaceAllString(strings.TrimSpace(s.FullName), "-")) + ".pdf"
}

// ReportFilename stamps a report download with the export date,
// e.g. "enrollment-report-2026-08-31.pdf".
func ReportFilename(now time.Time) string {
	return "enrollment-report-" + now.Format("2006-01-02") + ".pdf"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}