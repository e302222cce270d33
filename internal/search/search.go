// Package search filters submission lists for the review panel. Filtering is
// pure and order-preserving: it never touches storage and never re-sorts.
package search

import (
	"strings"
	"time"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

// Window restricts results to a trailing date range.
type Window string

const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

func (w Window) Valid() bool {
	switch w {
	case WindowAll, WindowToday, WindowWeek, WindowMonth:
		return true
	}
	return false
}

// Cutoff returns the earliest submission time the window admits, relative to
// now. The zero time means no restriction. All boundaries anchor on local
// midnight of the current day; week and month reach back 7 calendar days and
// 1 calendar month from there.
func (w Window) Cutoff(now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch w {
	case WindowToday:
		return today
	case WindowWeek:
		return today.AddDate(0, 0, -7)
	case WindowMonth:
		return today.AddDate(0, -1, 0)
	}
	return time.Time{}
}

// Filter returns the submissions matching both the text query and the date
// window, in their incoming order. An empty query matches everything;
// unrecognized windows behave as WindowAll.
func Filter(subs []domain.Submission, query string, window Window, now time.Time) []domain.Submission {
	cutoff := window.Cutoff(now)
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Submission, 0, len(subs))
	for _, s := range subs {
		if !cutoff.IsZero() && s.SubmittedAt.Before(cutoff) {
			continue
		}
		if q != "" && !matches(&s, q, query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// matches checks the text query against the searchable fields. Name and
// email fields compare case-insensitively; the WhatsApp number compares
// verbatim so "+44" only matches a stored "+44".
func matches(s *domain.Submission, lowered, raw string) bool {
	if strings.Contains(strings.ToLower(s.FullName), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Email), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(s.GuardianName), lowered) {
		return true
	}
	return strings.Contains(s.WhatsappNumber, strings.TrimSpace(raw))
}
