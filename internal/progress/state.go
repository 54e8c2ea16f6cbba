// Package progress owns the canonical student progress state: XP and
// level, streaks, credits, and the embedded profile. The Tracker is
// the single writer of persisted state; the pure reducers it delegates
// to live alongside it in this package.
package progress

import (
	"time"

	"github.com/arjunk/stemly/internal/profile"
)

// LevelState is the XP-bar slice of the progress state consumed by
// the ApplyXP reducer.
type LevelState struct {
	CurrentXP  int `json:"currentXP"`
	Level      int `json:"level"`
	RequiredXP int `json:"requiredXP"`
}

// State is the canonical progress snapshot for one student.
//
// Credits has two sources: the profile-completion tier (recomputed on
// every profile edit) and direct awards via AddCredits. The embedded
// profile is persisted under its own record key and excluded from the
// studentData document.
type State struct {
	LevelState
	Streak

	// TotalXP is the lifetime XP sum. CurrentXP above is relative to
	// the current level bar and resets on level-up.
	TotalXP int `json:"totalXP"`

	Badges  int `json:"badges"`
	Credits int `json:"credits"`

	ProfileCompletion int       `json:"profileCompletion"`
	LastUpdated       time.Time `json:"lastUpdated"`

	Profile profile.Snapshot `json:"-"`
}

// NewState returns the zero progress state for a first session.
func NewState() State {
	return State{
		LevelState: LevelState{
			CurrentXP:  0,
			Level:      1,
			RequiredXP: BaseXPPerLevel,
		},
	}
}
