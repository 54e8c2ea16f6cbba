package progress

import "time"

// DayFormat is the calendar-day key used for streak bookkeeping.
const DayFormat = "2006-01-02"

// Streak tracks consecutive-day activity. A day counts once; a gap of
// more than one calendar day resets the current run.
type Streak struct {
	Current       int    `json:"currentStreak"`
	Longest       int    `json:"longestStreak"`
	DaysActive    int    `json:"daysActive"`
	LastActiveDay string `json:"lastActiveDay"`
}

// Mark records activity at the given time and returns the updated
// streak. Repeated activity on the same day leaves the streak
// unchanged.
func (s Streak) Mark(now time.Time) Streak {
	day := now.Format(DayFormat)
	if s.LastActiveDay == day {
		return s
	}

	yesterday := now.AddDate(0, 0, -1).Format(DayFormat)
	if s.LastActiveDay == yesterday {
		s.Current++
	} else {
		s.Current = 1
	}

	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.DaysActive++
	s.LastActiveDay = day
	return s
}
