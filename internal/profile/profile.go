// Package profile holds the student profile snapshot and the pure
// calculators derived from it: completion percentage and the credit
// award for reaching a completion tier.
package profile

import "strings"

// Snapshot is the flat record of student-entered profile fields.
// It is created empty on first run and mutated field by field; fields
// are only ever overwritten, never deleted.
type Snapshot struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	SchoolName    string `json:"schoolName"`
	Grade         string `json:"grade"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Bio           string `json:"bio"`
	Goals         string `json:"goals"`
	LearningStyle string `json:"learningStyle"`

	// Duplicates are permitted in both lists; the tracker appends
	// whatever the student enters.
	Subjects  []string `json:"subjects"`
	Interests []string `json:"interests"`
}

// Patch is a partial profile edit. Nil fields are left untouched;
// list fields are replaced wholesale, not appended (append/remove
// semantics live in the progress tracker).
type Patch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	DateOfBirth   *string
	Gender        *string
	SchoolName    *string
	Grade         *string
	City          *string
	State         *string
	Country       *string
	Bio           *string
	Goals         *string
	LearningStyle *string

	Subjects  *[]string
	Interests *[]string
}

// Apply merges the patch into the snapshot. Absent (nil) fields are
// left as they were.
func (s *Snapshot) Apply(p Patch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.FirstName, p.FirstName)
	set(&s.LastName, p.LastName)
	set(&s.Email, p.Email)
	set(&s.Phone, p.Phone)
	set(&s.DateOfBirth, p.DateOfBirth)
	set(&s.Gender, p.Gender)
	set(&s.SchoolName, p.SchoolName)
	set(&s.Grade, p.Grade)
	set(&s.City, p.City)
	set(&s.State, p.State)
	set(&s.Country, p.Country)
	set(&s.Bio, p.Bio)
	set(&s.Goals, p.Goals)
	set(&s.LearningStyle, p.LearningStyle)

	if p.Subjects != nil {
		s.Subjects = append([]string(nil), (*p.Subjects)...)
	}
	if p.Interests != nil {
		s.Interests = append([]string(nil), (*p.Interests)...)
	}
}

// ListField names one of the two list-valued profile fields.
type ListField string

const (
	FieldSubjects  ListField = "subjects"
	FieldInterests ListField = "interests"
)

// List returns the current value of the named list field.
func (s *Snapshot) List(f ListField) []string {
	if f == FieldInterests {
		return s.Interests
	}
	return s.Subjects
}

// IsComplete reports whether a scalar field value counts toward
// completion: non-empty after trimming whitespace.
func IsComplete(v string) bool {
	return strings.TrimSpace(v) != ""
}
