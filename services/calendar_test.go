package services

import (
	"testing"
	"time"
)

func TestPrevious(t *testing.T) {
	cases := []struct {
		in   CalendarDate
		want CalendarDate
	}{
		{"2024-01-11", "2024-01-10"},
		{"2024-01-01", "2023-12-31"},
		{"2024-03-01", "2024-02-29"}, // leap year
		{"2023-03-01", "2023-02-28"},
		{"", ""},
		{"not-a-date", ""},
	}
	for _, tc := range cases {
		if got := tc.in.Previous(); got != tc.want {
			t.Errorf("Previous(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Two timestamps minutes apart across midnight are different calendar days,
// even across a DST transition where the civil day is not 24 hours long.
func TestDateOfMidnightBoundary(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 2024-03-10 is the US spring-forward date (23-hour day).
	before := time.Date(2024, 3, 9, 23, 59, 0, 0, loc)
	after := time.Date(2024, 3, 10, 0, 1, 0, 0, loc)

	d1, d2 := DateOf(before), DateOf(after)
	if d1 == d2 {
		t.Fatalf("expected distinct days, got %s twice", d1)
	}
	if d2.Previous() != d1 {
		t.Errorf("Previous(%s) = %s, want %s", d2, d2.Previous(), d1)
	}
}

func TestParseDate(t *testing.T) {
	if d, err := ParseDate("2024-01-10"); err != nil || d != "2024-01-10" {
		t.Errorf("ParseDate valid: got %q, %v", d, err)
	}
	if _, err := ParseDate("Jan 10 2024"); err == nil {
		t.Error("ParseDate must reject non-canonical forms")
	}
	if _, err := ParseDate("2024-1-10"); err == nil {
		t.Error("ParseDate must reject unpadded forms")
	}
}

func TestTodayUsesLocation(t *testing.T) {
	d := Today(time.UTC)
	if _, err := ParseDate(string(d)); err != nil {
		t.Fatalf("Today produced non-canonical date %q", d)
	}
}
