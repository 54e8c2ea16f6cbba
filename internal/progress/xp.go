package progress

import "errors"

// BaseXPPerLevel is the per-level XP threshold multiplier: reaching
// level n requires n*100 XP on the bar.
const BaseXPPerLevel = 100

// ErrNegativeAmount is returned when a mutation is asked to award a
// negative quantity. Zero is a valid no-op; negative awards have no
// caller in this system and are rejected rather than guessed at.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ApplyXP folds an XP award into the level state.
//
// The bar resets modulo the threshold that was just crossed, not the
// new level's threshold. After a multi-level jump the bar fill is
// therefore lower than the overflow would suggest; this is the
// intended milestone behavior, kept as-is.
func ApplyXP(s LevelState, amount int) LevelState {
	if amount == 0 {
		return s
	}

	if s.Level < 1 {
		s.Level = 1
	}
	required := s.RequiredXP
	if required <= 0 {
		required = s.Level * BaseXPPerLevel
	}

	total := s.CurrentXP + amount
	level := s.Level + total/required
	return LevelState{
		CurrentXP:  total % required,
		Level:      level,
		RequiredXP: level * BaseXPPerLevel,
	}
}
