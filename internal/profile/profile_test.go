package profile

import (
	"reflect"
	"testing"
)

func TestApplyLeavesAbsentFields(t *testing.T) {
	s := Snapshot{FirstName: "Asha", City: "Austin"}
	email := "asha@example.com"
	s.Apply(Patch{Email: &email})

	if s.FirstName != "Asha" || s.City != "Austin" {
		t.Error("Apply modified fields the patch did not set")
	}
	if s.Email != email {
		t.Errorf("Email = %q, want %q", s.Email, email)
	}
}

func TestApplyOverwritesWithEmpty(t *testing.T) {
	// Setting a field to "" is a legitimate edit, distinct from an
	// absent (nil) patch field.
	s := Snapshot{Bio: "old"}
	empty := ""
	s.Apply(Patch{Bio: &empty})
	if s.Bio != "" {
		t.Errorf("Bio = %q, want empty", s.Bio)
	}
}

func TestApplyReplacesLists(t *testing.T) {
	s := Snapshot{Subjects: []string{"math", "physics"}}
	repl := []string{"chemistry"}
	s.Apply(Patch{Subjects: &repl})

	if !reflect.DeepEqual(s.Subjects, []string{"chemistry"}) {
		t.Errorf("Subjects = %v, want [chemistry]", s.Subjects)
	}

	// The snapshot owns its copy; mutating the patch slice afterward
	// must not reach the snapshot.
	repl[0] = "mutated"
	if s.Subjects[0] != "chemistry" {
		t.Error("Apply aliased the patch slice instead of copying")
	}
}

func TestListField(t *testing.T) {
	s := Snapshot{
		Subjects:  []string{"math"},
		Interests: []string{"rockets", "chess"},
	}
	if got := s.List(FieldSubjects); len(got) != 1 {
		t.Errorf("List(subjects) = %v", got)
	}
	if got := s.List(FieldInterests); len(got) != 2 {
		t.Errorf("List(interests) = %v", got)
	}
}
