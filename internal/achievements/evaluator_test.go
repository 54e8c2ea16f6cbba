package achievements

import "testing"

func lessonAchievement(id string, threshold int) Achievement {
	return Achievement{
		ID:     id,
		Name:   id,
		Rarity: RarityCommon,
		Requirements: []Requirement{
			{Stat: StatLessonsCompleted, Threshold: threshold},
		},
	}
}

func TestUnlockedThresholds(t *testing.T) {
	catalog := []Achievement{
		lessonAchievement("one", 1),
		lessonAchievement("ten", 10),
		lessonAchievement("twentyfive", 25),
	}
	stats := Stats{LessonsCompleted: 10}

	got := Unlocked(stats, catalog)
	if len(got) != 2 {
		t.Fatalf("unlocked %d achievements, want 2", len(got))
	}
	if got[0].ID != "one" || got[1].ID != "ten" {
		t.Errorf("unlocked = [%s, %s]", got[0].ID, got[1].ID)
	}
}

func TestUnlockedRequiresAllRequirements(t *testing.T) {
	a := Achievement{
		ID:     "combo",
		Rarity: RarityRare,
		Requirements: []Requirement{
			{Stat: StatLessonsCompleted, Threshold: 5},
			{Stat: StatCurrentStreak, Threshold: 7},
		},
	}

	if got := Unlocked(Stats{LessonsCompleted: 5, CurrentStreak: 3}, []Achievement{a}); len(got) != 0 {
		t.Error("unlocked with one requirement unmet")
	}
	if got := Unlocked(Stats{LessonsCompleted: 5, CurrentStreak: 7}, []Achievement{a}); len(got) != 1 {
		t.Error("not unlocked with all requirements met")
	}
}

func TestEmptyRequirementsNeverUnlock(t *testing.T) {
	a := Achievement{ID: "vacuous", Rarity: RarityCommon}
	if got := Unlocked(Stats{LessonsCompleted: 100}, []Achievement{a}); len(got) != 0 {
		t.Error("achievement with no requirements unlocked")
	}
}

func TestProgressUsesFirstRequirementOnly(t *testing.T) {
	a := Achievement{
		ID: "combo",
		Requirements: []Requirement{
			{Stat: StatLessonsCompleted, Threshold: 10},
			{Stat: StatCurrentStreak, Threshold: 100},
		},
	}

	// 5/10 lessons: 50%, regardless of the second requirement.
	if got := Progress(a, Stats{LessonsCompleted: 5}); got != 50 {
		t.Errorf("Progress = %d, want 50", got)
	}
}

func TestProgressCapsAtHundred(t *testing.T) {
	a := lessonAchievement("one", 10)
	if got := Progress(a, Stats{LessonsCompleted: 250}); got != 100 {
		t.Errorf("Progress = %d, want 100", got)
	}
}

func TestProgressEmptyRequirements(t *testing.T) {
	if got := Progress(Achievement{ID: "vacuous"}, Stats{}); got != 0 {
		t.Errorf("Progress = %d, want 0", got)
	}
}

func TestBuiltInCatalogIsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog() {
		if a.ID == "" {
			t.Error("catalog entry with empty id")
		}
		if seen[a.ID] {
			t.Errorf("duplicate catalog id %q", a.ID)
		}
		seen[a.ID] = true
		if len(a.Requirements) == 0 {
			t.Errorf("%s: no requirements, can never unlock", a.ID)
		}
		for _, r := range a.Requirements {
			if r.Threshold < 1 {
				t.Errorf("%s: non-positive threshold", a.ID)
			}
			if (Stats{}).Value(r.Stat) != 0 {
				t.Errorf("%s: zero stats satisfy %s", a.ID, r.Stat)
			}
		}
	}
}
