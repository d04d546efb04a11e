package timezone_test

import (
	"roomescape/shared/timezone"
	"testing"
	"time"
)

func TestGetLocation(t *testing.T) {
	if timezone.GetLocation() == nil {
		t.Fatal("expected a non-nil location")
	}
}

func TestNow(t *testing.T) {
	now := timezone.Now()

	if now.Location() != timezone.GetLocation() {
		t.Errorf("expected Now to be in the application location, got %v", now.Location())
	}

	if time.Since(now) > time.Minute {
		t.Error("expected Now to be close to the current time")
	}
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.Year() != 2026 || parsed.Month() != time.January || parsed.Day() != 2 {
		t.Errorf("unexpected parsed date: %v", parsed)
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Errorf("expected parsed time in the application location, got %v", parsed.Location())
	}

	if _, err := timezone.Parse("2006-01-02", "02/01/2026"); err == nil {
		t.Error("expected an error for mismatched layout")
	}
}

func TestFormat(t *testing.T) {
	moment := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)

	if got := timezone.Format(moment.In(timezone.GetLocation()), "2006-01-02"); got != "2026-01-02" {
		t.Errorf("expected '2026-01-02', got %q", got)
	}
}

func TestToAppTime(t *testing.T) {
	moment := time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)

	converted := timezone.ToAppTime(moment)

	if !converted.Equal(moment) {
		t.Error("expected conversion to preserve the instant")
	}

	if converted.Location() != timezone.GetLocation() {
		t.Errorf("expected application location, got %v", converted.Location())
	}
}
