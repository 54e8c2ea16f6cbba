package app

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/arjunk/stemly/internal/profile"
	"github.com/arjunk/stemly/internal/progress"
	"github.com/arjunk/stemly/internal/ui/components"
	"github.com/arjunk/stemly/internal/ui/theme"
)

type formField struct {
	label string
	get   func(profile.Snapshot) string
	// set builds a patch for scalar fields; nil for list fields.
	set func(string) profile.Patch
	// list names the list field when set is nil.
	list profile.ListField
}

func strp(v string) *string { return &v }

func formFields() []formField {
	scalar := func(label string, get func(profile.Snapshot) string, set func(string) profile.Patch) formField {
		return formField{label: label, get: get, set: set}
	}
	return []formField{
		scalar("First name", func(s profile.Snapshot) string { return s.FirstName },
			func(v string) profile.Patch { return profile.Patch{FirstName: strp(v)} }),
		scalar("Last name", func(s profile.Snapshot) string { return s.LastName },
			func(v string) profile.Patch { return profile.Patch{LastName: strp(v)} }),
		scalar("Email", func(s profile.Snapshot) string { return s.Email },
			func(v string) profile.Patch { return profile.Patch{Email: strp(v)} }),
		scalar("Phone", func(s profile.Snapshot) string { return s.Phone },
			func(v string) profile.Patch { return profile.Patch{Phone: strp(v)} }),
		scalar("Date of birth", func(s profile.Snapshot) string { return s.DateOfBirth },
			func(v string) profile.Patch { return profile.Patch{DateOfBirth: strp(v)} }),
		scalar("Gender", func(s profile.Snapshot) string { return s.Gender },
			func(v string) profile.Patch { return profile.Patch{Gender: strp(v)} }),
		scalar("School", func(s profile.Snapshot) string { return s.SchoolName },
			func(v string) profile.Patch { return profile.Patch{SchoolName: strp(v)} }),
		scalar("Grade", func(s profile.Snapshot) string { return s.Grade },
			func(v string) profile.Patch { return profile.Patch{Grade: strp(v)} }),
		scalar("City", func(s profile.Snapshot) string { return s.City },
			func(v string) profile.Patch { return profile.Patch{City: strp(v)} }),
		scalar("State", func(s profile.Snapshot) string { return s.State },
			func(v string) profile.Patch { return profile.Patch{State: strp(v)} }),
		scalar("Country", func(s profile.Snapshot) string { return s.Country },
			func(v string) profile.Patch { return profile.Patch{Country: strp(v)} }),
		scalar("Bio", func(s profile.Snapshot) string { return s.Bio },
			func(v string) profile.Patch { return profile.Patch{Bio: strp(v)} }),
		scalar("Goals", func(s profile.Snapshot) string { return s.Goals },
			func(v string) profile.Patch { return profile.Patch{Goals: strp(v)} }),
		scalar("Learning style", func(s profile.Snapshot) string { return s.LearningStyle },
			func(v string) profile.Patch { return profile.Patch{LearningStyle: strp(v)} }),
		{label: "Add subject", list: profile.FieldSubjects},
		{label: "Add interest", list: profile.FieldInterests},
	}
}

// profileForm is the profile tab: a vertical field list with one
// text input for the field under edit.
type profileForm struct {
	fields  []formField
	index   int
	editing bool
	input   textinput.Model
}

func newProfileForm() profileForm {
	ti := textinput.New()
	ti.CharLimit = 120
	return profileForm{
		fields: formFields(),
		input:  ti,
	}
}

func (f profileForm) Update(msg tea.KeyMsg, tracker *progress.Tracker) (profileForm, tea.Cmd) {
	if f.editing {
		switch msg.String() {
		case "esc":
			f.editing = false
			f.input.Blur()
			return f, nil
		case "enter":
			f.editing = false
			f.input.Blur()
			value := f.input.Value()
			field := f.fields[f.index]
			ctx := context.Background()
			if field.set != nil {
				tracker.UpdateProfile(ctx, field.set(value))
			} else {
				tracker.AppendToListField(ctx, field.list, value)
			}
			return f, nil
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}

	switch msg.String() {
	case "up", "k":
		if f.index > 0 {
			f.index--
		}
	case "down", "j":
		if f.index < len(f.fields)-1 {
			f.index++
		}
	case "enter":
		field := f.fields[f.index]
		f.editing = true
		if field.set != nil {
			f.input.SetValue(field.get(tracker.State().Profile))
		} else {
			f.input.SetValue("")
			f.input.Placeholder = "new entry"
		}
		return f, f.input.Focus()
	case "backspace", "delete":
		// On a list row, delete removes the last entry.
		field := f.fields[f.index]
		if field.set == nil {
			snap := tracker.State().Profile
			n := len(snap.List(field.list))
			if n > 0 {
				tracker.RemoveFromListField(context.Background(), field.list, n-1)
			}
		}
	}
	return f, nil
}

func (f profileForm) View(tracker *progress.Tracker, width int) string {
	st := tracker.State()
	snap := st.Profile

	bar := components.ProgressBar{
		Label:       "Completion",
		Percent:     float64(st.ProfileCompletion) / 100,
		ShowPercent: true,
		Width:       width - 8,
	}

	var b strings.Builder
	b.WriteString("\n  " + bar.View() + "\n\n")

	for i, field := range f.fields {
		var value string
		if field.set != nil {
			value = field.get(snap)
			if value == "" {
				value = theme.Hint.Render("(empty)")
			} else {
				value = theme.Value.Render(value)
			}
		} else {
			entries := snap.List(field.list)
			if len(entries) == 0 {
				value = theme.Hint.Render("(none)")
			} else {
				value = theme.Value.Render(strings.Join(entries, ", "))
			}
		}

		cursor := "  "
		label := theme.Label.Render(field.label)
		if i == f.index {
			cursor = theme.Selected.Render("> ")
			label = theme.Selected.Render(fmt.Sprintf("%-16s", field.label))
			if f.editing {
				value = f.input.View()
			}
		}

		b.WriteString("  " + cursor + label + " " + value + "\n")
	}

	return b.String()
}
