// Package achievements defines the static achievement catalog and the
// read-only evaluator that checks a statistics snapshot against it.
// Nothing here mutates progress state; unlocked status is recomputed
// from raw stats on every evaluation.
package achievements

// Stat names a statistic that a requirement can threshold against.
type Stat string

const (
	StatLessonsCompleted  Stat = "lessons_completed"
	StatLabsCompleted     Stat = "labs_completed"
	StatBlogsRead         Stat = "blogs_read"
	StatTotalXP           Stat = "total_xp"
	StatCurrentStreak     Stat = "streak_days"
	StatProfileCompletion Stat = "profile_completion"
	StatLevel             Stat = "level"
	StatDaysActive        Stat = "days_active"
)

// Requirement is a single stat-threshold predicate. It is satisfied
// when the stat value is at least Threshold.
type Requirement struct {
	Stat      Stat `json:"stat"`
	Threshold int  `json:"threshold"`
}

// Rarity tags an achievement for display.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is an immutable catalog entry. Unlocked status is a
// derived fact computed by the evaluator, never stored here.
type Achievement struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Icon         string        `json:"icon"`
	Category     string        `json:"category"`
	Rarity       Rarity        `json:"rarity"`
	XPReward     int           `json:"xpReward"`
	Requirements []Requirement `json:"requirements"`
}

// Stats is the caller-supplied statistics snapshot evaluated against
// the catalog. It is not owned by this package.
type Stats struct {
	LessonsCompleted  int
	LabsCompleted     int
	BlogsRead         int
	TotalXP           int
	CurrentStreak     int
	ProfileCompletion int
	Level             int
	DaysActive        int
}

// Value returns the named statistic. Unknown stats read as zero, so a
// requirement against them never passes for positive thresholds.
func (s Stats) Value(st Stat) int {
	switch st {
	case StatLessonsCompleted:
		return s.LessonsCompleted
	case StatLabsCompleted:
		return s.LabsCompleted
	case StatBlogsRead:
		return s.BlogsRead
	case StatTotalXP:
		return s.TotalXP
	case StatCurrentStreak:
		return s.CurrentStreak
	case StatProfileCompletion:
		return s.ProfileCompletion
	case StatLevel:
		return s.Level
	case StatDaysActive:
		return s.DaysActive
	default:
		return 0
	}
}
