package services

import "time"

// DateLayout is the canonical form for calendar dates. Every place that
// stores or compares last_claim_date uses this single representation;
// mixing it with any other date-string form breaks same-day detection.
const DateLayout = "2006-01-02"

// CalendarDate is a date with no time-of-day or timezone component,
// expressed as a YYYY-MM-DD string. The empty value means "never".
type CalendarDate string

// Today returns the current calendar date in the given location.
func Today(loc *time.Location) CalendarDate {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(time.Now().In(loc))
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate(t.Format(DateLayout))
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return DateOf(t), nil
}

// Previous returns the calendar day immediately before d. The subtraction
// works on date components rather than a fixed 24h interval, so DST
// transitions never shift the day count. Invalid or empty dates yield "".
func (d CalendarDate) Previous() CalendarDate {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return ""
	}
	return DateOf(t.AddDate(0, 0, -1))
}

// IsZero reports whether d carries no date.
func (d CalendarDate) IsZero() bool {
	return d == ""
}

func (d CalendarDate) String() string {
	return string(d)
}
