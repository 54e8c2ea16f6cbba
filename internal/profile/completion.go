package profile

// trackedScalars returns the scalar fields that count toward profile
// completion, in display order. The completion denominator is derived
// from this table plus trackedLists; never hard-code the field count
// anywhere else.
func trackedScalars(s *Snapshot) []string {
	return []string{
		s.FirstName,
		s.LastName,
		s.Email,
		s.Phone,
		s.DateOfBirth,
		s.Gender,
		s.SchoolName,
		s.Grade,
		s.City,
		s.State,
		s.Country,
		s.Bio,
		s.Goals,
		s.LearningStyle,
	}
}

// trackedLists returns the list fields that count toward completion.
// A list counts as complete when it has at least one entry; entry
// content is not validated here.
func trackedLists(s *Snapshot) [][]string {
	return [][]string{
		s.Subjects,
		s.Interests,
	}
}

// TrackedFieldCount is the completion denominator.
func TrackedFieldCount() int {
	var empty Snapshot
	return len(trackedScalars(&empty)) + len(trackedLists(&empty))
}

// ComputeCompletion returns the profile completion percentage in
// [0,100]. A scalar field is complete when non-empty after trimming;
// a list field when non-empty. No partial credit within a field.
func ComputeCompletion(s *Snapshot) int {
	done := 0
	scalars := trackedScalars(s)
	for _, v := range scalars {
		if IsComplete(v) {
			done++
		}
	}
	lists := trackedLists(s)
	for _, l := range lists {
		if len(l) >= 1 {
			done++
		}
	}

	total := len(scalars) + len(lists)
	// Round to nearest integer percentage.
	return (100*done + total/2) / total
}
