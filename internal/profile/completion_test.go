package profile

import "testing"

// fullSnapshot returns a snapshot with every tracked field filled.
func fullSnapshot() Snapshot {
	return Snapshot{
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         "asha@example.com",
		Phone:         "+1 555 0100",
		DateOfBirth:   "2010-04-12",
		Gender:        "female",
		SchoolName:    "Riverside Middle School",
		Grade:         "7",
		City:          "Austin",
		State:         "TX",
		Country:       "USA",
		Bio:           "I like robots.",
		Goals:         "Build a rover",
		LearningStyle: "visual",
		Subjects:      []string{"physics"},
		Interests:     []string{"robotics"},
	}
}

func TestTrackedFieldCount(t *testing.T) {
	if got := TrackedFieldCount(); got != 16 {
		t.Errorf("TrackedFieldCount() = %d, want 16", got)
	}
}

func TestComputeCompletionEmpty(t *testing.T) {
	var s Snapshot
	if got := ComputeCompletion(&s); got != 0 {
		t.Errorf("ComputeCompletion(empty) = %d, want 0", got)
	}
}

func TestComputeCompletionFull(t *testing.T) {
	s := fullSnapshot()
	if got := ComputeCompletion(&s); got != 100 {
		t.Errorf("ComputeCompletion(full) = %d, want 100", got)
	}
}

func TestComputeCompletionPartial(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   int
	}{
		{
			name:   "one scalar missing",
			mutate: func(s *Snapshot) { s.Bio = "" },
			want:   94, // round(100*15/16)
		},
		{
			name:   "whitespace-only scalar does not count",
			mutate: func(s *Snapshot) { s.Goals = "   \t" },
			want:   94,
		},
		{
			name:   "empty list does not count",
			mutate: func(s *Snapshot) { s.Subjects = nil },
			want:   94,
		},
		{
			name: "half the fields",
			mutate: func(s *Snapshot) {
				s.Phone = ""
				s.DateOfBirth = ""
				s.Gender = ""
				s.Grade = ""
				s.State = ""
				s.Bio = ""
				s.Goals = ""
				s.Interests = nil
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fullSnapshot()
			tt.mutate(&s)
			if got := ComputeCompletion(&s); got != tt.want {
				t.Errorf("ComputeCompletion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeCompletionBounds(t *testing.T) {
	// Single field filled at a time always stays within [0,100].
	s := Snapshot{FirstName: "A"}
	got := ComputeCompletion(&s)
	if got < 0 || got > 100 {
		t.Fatalf("ComputeCompletion out of bounds: %d", got)
	}
	if got != 6 { // round(100*1/16)
		t.Errorf("ComputeCompletion(one field) = %d, want 6", got)
	}
}

func TestListContentNotValidated(t *testing.T) {
	// A list with any entry counts, even a blank one; entry content
	// is the tracker's concern, not the calculator's.
	s := Snapshot{Subjects: []string{"  "}}
	if got := ComputeCompletion(&s); got != 6 {
		t.Errorf("ComputeCompletion(blank list entry) = %d, want 6", got)
	}
}
