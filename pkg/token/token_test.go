package token

import (
	"errors"
	"testing"
	"time"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return ts
}

func TestResolve_ReferenceGrid(t *testing.T) {
	now := at(t, "2024-03-27T10:00:00")
	cases := []struct {
		tok  string
		want string
	}{
		{"10:20", "2024-03-27T10:20:00"},  // later today stays today
		{"09:00", "2024-03-28T09:00:00"},  // more than 30 min past rolls to tomorrow
		{"09:30", "2024-03-27T09:30:00"},  // exactly 30 min past stays today
		{"10:00", "2024-03-27T10:00:00"},  // the current minute stays today
		{"10-20", "2024-03-27T10:20:00"},  // hyphen separator
		{"23", "2024-03-27T23:00:00"},     // bare hour, minute zero
		{"7", "2024-03-28T07:00:00"},      // bare hour in the past rolls
		{"30_10-00", "2024-03-30T10:00:00"}, // day still ahead this month
		{"5_16-00", "2024-04-05T16:00:00"},  // day already passed, next month
		{"5_16:00", "2024-04-05T16:00:00"},  // colon variant
		{"27_10-00", "2024-03-27T10:00:00"}, // exactly now stays
		{"27_09", "2024-04-27T09:00:00"},    // day-bearing has no grace period
		{"5_9-3", "2024-04-05T09:03:00"},    // single digits are zero-padded
		{"2_8", "2024-04-02T08:00:00"},
	}
	for _, c := range cases {
		got, err := Resolve(c.tok, now)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error %v", c.tok, err)
		}
		if want := at(t, c.want); !got.Equal(want) {
			t.Fatalf("Resolve(%q): got %v, want %v", c.tok, got, want)
		}
	}
}

func TestResolve_MonthRollAcrossFebruary(t *testing.T) {
	now := at(t, "2024-02-28T10:00:00")
	got, err := Resolve("1_15-00", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := at(t, "2024-03-01T15:00:00"); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolve_MonthRollAcrossYear(t *testing.T) {
	now := at(t, "2024-12-31T23:00:00")
	got, err := Resolve("10_09-15", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := at(t, "2025-01-10T09:15:00"); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolve_Day31SkipsShortMonths(t *testing.T) {
	// March 31 has passed; April has no 31st, so the token means May 31.
	now := at(t, "2024-03-31T12:00:00")
	got, err := Resolve("31_10-00", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := at(t, "2024-05-31T10:00:00"); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolve_DayBeyondCurrentMonthFails(t *testing.T) {
	// February 2024 has 29 days; "30" does not name a day of it.
	now := at(t, "2024-02-10T10:00:00")
	if _, err := Resolve("30_10-00", now); err == nil {
		t.Fatal("Resolve(30_10-00) in February: expected error")
	}
}

func TestResolve_Malformed(t *testing.T) {
	now := at(t, "2024-03-27T10:00:00")
	for _, tok := range []string{
		"",          // empty
		"   ",       // whitespace only
		"30",        // bare day reads as hour 30, out of range
		"incorrect", // not a token
		"XX_YY-ZZ",  // non-numeric fields
		"30_",       // day with no time part
		"_10-00",    // underscore with no day part
		"24:00",     // hour out of range
		"10:60",     // minute out of range
		"0_10-00",   // day zero
		"123",       // three digits never match
		"1_2_3",     // double underscore
	} {
		_, err := Resolve(tok, now)
		if err == nil {
			t.Fatalf("Resolve(%q): expected error, got none", tok)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Resolve(%q): error %v is not a *ParseError", tok, err)
		}
	}
}

func TestResolve_IncompleteTokenReason(t *testing.T) {
	now := at(t, "2024-03-27T10:00:00")
	_, err := Resolve("30_", now)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Reason != "incomplete token" {
		t.Fatalf("reason: got %q, want %q", perr.Reason, "incomplete token")
	}
}

func TestResolve_Deterministic(t *testing.T) {
	now := at(t, "2024-03-27T10:00:00")
	first, err := Resolve("09:00", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := Resolve("09:00", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !first.Equal(second) {
		t.Fatalf("same token and now gave %v then %v", first, second)
	}
}

func TestResolve_NeverStale(t *testing.T) {
	// Every successful resolution lands at or after now minus the grace
	// period, for day-bearing and time-only shapes alike.
	now := at(t, "2024-03-27T10:00:00")
	floor := now.Add(-gracePeriod)
	for _, tok := range []string{
		"0:00", "9:29", "9:30", "9:31", "10:00", "23:59",
		"1_0-0", "26_23-59", "27_9-59", "31_0-0", "15",
	} {
		got, err := Resolve(tok, now)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tok, err)
		}
		if got.Before(floor) {
			t.Fatalf("Resolve(%q) = %v, stale past %v", tok, got, floor)
		}
	}
}

func TestResolve_TimeOnlyNeverMoreThanTomorrow(t *testing.T) {
	now := at(t, "2024-03-27T10:00:00")
	for _, tok := range []string{"0:00", "9:00", "9:30", "12:00", "23:59", "5", "11"} {
		got, err := Resolve(tok, now)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tok, err)
		}
		day := got.YearDay() - now.YearDay()
		if day != 0 && day != 1 {
			t.Fatalf("Resolve(%q) = %v: neither today nor tomorrow", tok, got)
		}
	}
}

func TestResolve_DayBearingKeepsRequestedDay(t *testing.T) {
	now := at(t, "2024-03-27T10:00:00")
	for _, c := range []struct {
		tok string
		day int
	}{
		{"1_12-00", 1}, {"15_0-0", 15}, {"27_23-59", 27}, {"31_8-30", 31},
	} {
		got, err := Resolve(c.tok, now)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", c.tok, err)
		}
		if got.Day() != c.day {
			t.Fatalf("Resolve(%q): day %d, want %d", c.tok, got.Day(), c.day)
		}
	}
}

func TestResolve_SecondsAlwaysZero(t *testing.T) {
	now := at(t, "2024-03-27T10:00:00").Add(42 * time.Second)
	got, err := Resolve("11:30", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Second() != 0 {
		t.Fatalf("seconds: got %d, want 0", got.Second())
	}
}

func TestResolve_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	now := time.Date(2024, 3, 27, 10, 0, 0, 0, loc)
	got, err := Resolve("12:00", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Location() != loc {
		t.Fatalf("location: got %v, want %v", got.Location(), loc)
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := daysIn(c.year, c.month); got != c.want {
			t.Fatalf("daysIn(%d, %v): got %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"5_9-3", "05_09-03"},
		{"5_9:3", "05_09:03"},
		{"7", "07"},
		{"9:5", "09:05"},
		{"30_10-00", "30_10-00"},
		{"10:20", "10:20"},
	}
	for _, c := range cases {
		got, err := canonicalize(c.in)
		if err != nil {
			t.Fatalf("canonicalize(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("canonicalize(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}
