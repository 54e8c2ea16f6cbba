package progress

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreakFirstActivity(t *testing.T) {
	var s Streak
	s = s.Mark(day("2026-03-01"))

	if s.Current != 1 || s.Longest != 1 || s.DaysActive != 1 {
		t.Errorf("first activity: %+v", s)
	}
}

func TestStreakSameDayUnchanged(t *testing.T) {
	var s Streak
	s = s.Mark(day("2026-03-01"))
	again := s.Mark(day("2026-03-01"))

	if again != s {
		t.Errorf("same-day mark changed streak: %+v -> %+v", s, again)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	var s Streak
	for _, d := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		s = s.Mark(day(d))
	}

	if s.Current != 3 || s.Longest != 3 || s.DaysActive != 3 {
		t.Errorf("three consecutive days: %+v", s)
	}
}

func TestStreakGapResets(t *testing.T) {
	var s Streak
	s = s.Mark(day("2026-03-01"))
	s = s.Mark(day("2026-03-02"))
	s = s.Mark(day("2026-03-05"))

	if s.Current != 1 {
		t.Errorf("Current = %d after gap, want 1", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("Longest = %d, want 2", s.Longest)
	}
	if s.DaysActive != 3 {
		t.Errorf("DaysActive = %d, want 3", s.DaysActive)
	}
}

func TestStreakMonthBoundary(t *testing.T) {
	var s Streak
	s = s.Mark(day("2026-02-28"))
	s = s.Mark(day("2026-03-01"))

	if s.Current != 2 {
		t.Errorf("Current = %d across month boundary, want 2", s.Current)
	}
}
