package achievements

// Unlocked returns the catalog entries whose requirements are all
// satisfied by stats, in catalog order.
//
// An entry with no requirements is treated as not yet satisfiable
// rather than vacuously unlocked; the built-in catalog never produces
// this case, but a loaded catalog could.
func Unlocked(stats Stats, catalog []Achievement) []Achievement {
	var out []Achievement
	for _, a := range catalog {
		if len(a.Requirements) == 0 {
			continue
		}
		if met(stats, a.Requirements) {
			out = append(out, a)
		}
	}
	return out
}

func met(stats Stats, reqs []Requirement) bool {
	for _, r := range reqs {
		if stats.Value(r.Stat) < r.Threshold {
			return false
		}
	}
	return true
}

// Progress returns a display percentage in [0,100] toward unlocking
// the achievement, computed from the first requirement only. The
// catalog defines single-requirement achievements, so one ratio is
// what the progress bar shows; do not average across requirements.
func Progress(a Achievement, stats Stats) int {
	if len(a.Requirements) == 0 {
		return 0
	}
	r := a.Requirements[0]
	if r.Threshold <= 0 {
		return 100
	}
	pct := 100 * stats.Value(r.Stat) / r.Threshold
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
