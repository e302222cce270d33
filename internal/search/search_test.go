package search

import (
	"testing"
	"time"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

func sub(id, name, guardian, email, whatsapp string, at time.Time) domain.Submission {
	s := domain.Submission{ID: id, SubmittedAt: at}
	s.FullName = name
	s.GuardianName = guardian
	s.Email = email
	s.WhatsappNumber = whatsapp
	return s
}

func ids(subs []domain.Submission) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterTextQuery(t *testing.T) {
	now := time.Now()
	subs := []domain.Submission{
		sub("1", "Aisha Rahman", "Omar Rahman", "omar@example.com", "+447700900123", now),
		sub("2", "Yusuf Khan", "Bilal Khan", "bilal@khan.net", "+92300111222", now),
		sub("3", "Maryam Ali", "Fatima Ali", "fatima.ali@mail.org", "+12025550101", now),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty matches all", "", []string{"1", "2", "3"}},
		{"whitespace matches all", "   ", []string{"1", "2", "3"}},
		{"name case-insensitive", "aisha", []string{"1"}},
		{"name uppercase query", "YUSUF", []string{"2"}},
		{"guardian name", "bilal", []string{"2"}},
		{"email substring", "mail.org", []string{"3"}},
		{"shared surname across fields", "khan", []string{"2"}},
		{"whatsapp digits", "7700900", []string{"1"}},
		{"whatsapp with plus", "+92300", []string{"2"}},
		{"no match", "nobody", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(subs, tc.query, WindowAll, now))
			if !equalIDs(got, tc.want) {
				t.Errorf("Filter(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestFilterWindows(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)
	subs := []domain.Submission{
		sub("old", "Old Entry", "", "old@example.com", "", now.AddDate(0, 0, -40)),
		sub("recent", "Recent Entry", "", "recent@example.com", "", now.AddDate(0, 0, -3)),
		sub("fresh", "Fresh Entry", "", "fresh@example.com", "", now.Add(-time.Hour)),
	}

	tests := []struct {
		window Window
		want   []string
	}{
		{WindowAll, []string{"old", "recent", "fresh"}},
		{WindowMonth, []string{"recent", "fresh"}},
		{WindowWeek, []string{"recent", "fresh"}},
		{WindowToday, []string{"fresh"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.window), func(t *testing.T) {
			got := ids(Filter(subs, "", tc.window, now))
			if !equalIDs(got, tc.want) {
				t.Errorf("window %s = %v, want %v", tc.window, got, tc.want)
			}
		})
	}
}

func TestFilterTodayStartsAtMidnight(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 30, 0, 0, time.UTC)
	subs := []domain.Submission{
		sub("yesterday", "A", "", "", "", now.Add(-time.Hour)),
		sub("today", "B", "", "", "", now.Add(-10*time.Minute)),
	}
	got := ids(Filter(subs, "", WindowToday, now))
	if !equalIDs(got, []string{"today"}) {
		t.Errorf("got %v, want [today]", got)
	}
}

func TestFilterPreservesOrderAndIsIdempotent(t *testing.T) {
	now := time.Now()
	subs := []domain.Submission{
		sub("c", "Zainab Musa", "", "z@example.com", "", now),
		sub("a", "Zaid Musa", "", "zaid@example.com", "", now),
		sub("b", "Musa Ibrahim", "", "musa@example.com", "", now),
	}

	once := Filter(subs, "musa", WindowAll, now)
	if !equalIDs(ids(once), []string{"c", "a", "b"}) {
		t.Fatalf("order not preserved: %v", ids(once))
	}

	twice := Filter(once, "musa", WindowAll, now)
	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("filter not idempotent: %v then %v", ids(once), ids(twice))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	subs := []domain.Submission{
		sub("1", "Aisha", "", "", "", now),
		sub("2", "Bilal", "", "", "", now),
	}
	_ = Filter(subs, "aisha", WindowAll, now)
	if subs[0].ID != "1" || subs[1].ID != "2" || len(subs) != 2 {
		t.Errorf("input slice mutated: %v", ids(subs))
	}
}

func TestWindowValid(t *testing.T) {
	for _, w := range []Window{WindowAll, WindowToday, WindowWeek, WindowMonth} {
		if !w.Valid() {
			t.Errorf("%s should be valid", w)
		}
	}
	if Window("fortnight").Valid() {
		t.Error("unknown window should be invalid")
	}
}
