package profile

// creditTier maps a minimum completion percentage to a credit award.
type creditTier struct {
	minPct  int
	credits int
}

// Tiers are checked top-down; the first match wins. The stepped,
// non-linear awards are the gamified milestone design, not a scale.
var creditTiers = []creditTier{
	{100, 100},
	{90, 75},
	{80, 50},
	{70, 30},
	{50, 20},
	{30, 10},
}

// CreditsForCompletion returns the credit award for a completion
// percentage. Monotonically non-decreasing over [0,100].
func CreditsForCompletion(pct int) int {
	for _, t := range creditTiers {
		if pct >= t.minPct {
			return t.credits
		}
	}
	return 0
}
