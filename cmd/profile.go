package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunk/stemly/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit the student profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile and its completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := tracker.State()
		snap := state.Profile

		print := func(label, value string) {
			if value == "" {
				value = "-"
			}
			fmt.Printf("  %-16s %s\n", label, value)
		}
		print("First name", snap.FirstName)
		print("Last name", snap.LastName)
		print("Email", snap.Email)
		print("Phone", snap.Phone)
		print("Date of birth", snap.DateOfBirth)
		print("Gender", snap.Gender)
		print("School", snap.SchoolName)
		print("Grade", snap.Grade)
		print("City", snap.City)
		print("State", snap.State)
		print("Country", snap.Country)
		print("Bio", snap.Bio)
		print("Goals", snap.Goals)
		print("Learning style", snap.LearningStyle)
		print("Subjects", strings.Join(snap.Subjects, ", "))
		print("Interests", strings.Join(snap.Interests, ", "))
		fmt.Printf("\n  Completion: %d%%   Credits: %d\n", state.ProfileCompletion, state.Credits)
		return nil
	},
}

// scalarPatches maps a field name as typed on the command line to a
// patch builder for it.
var scalarPatches = map[string]func(string) profile.Patch{
	"first-name":     func(v string) profile.Patch { return profile.Patch{FirstName: &v} },
	"last-name":      func(v string) profile.Patch { return profile.Patch{LastName: &v} },
	"email":          func(v string) profile.Patch { return profile.Patch{Email: &v} },
	"phone":          func(v string) profile.Patch { return profile.Patch{Phone: &v} },
	"date-of-birth":  func(v string) profile.Patch { return profile.Patch{DateOfBirth: &v} },
	"gender":         func(v string) profile.Patch { return profile.Patch{Gender: &v} },
	"school":         func(v string) profile.Patch { return profile.Patch{SchoolName: &v} },
	"grade":          func(v string) profile.Patch { return profile.Patch{Grade: &v} },
	"city":           func(v string) profile.Patch { return profile.Patch{City: &v} },
	"state":          func(v string) profile.Patch { return profile.Patch{State: &v} },
	"country":        func(v string) profile.Patch { return profile.Patch{Country: &v} },
	"bio":            func(v string) profile.Patch { return profile.Patch{Bio: &v} },
	"goals":          func(v string) profile.Patch { return profile.Patch{Goals: &v} },
	"learning-style": func(v string) profile.Patch { return profile.Patch{LearningStyle: &v} },
}

var profileSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a scalar profile field",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		build, ok := scalarPatches[args[0]]
		if !ok {
			return fmt.Errorf("unknown field %q (fields: %s)", args[0], strings.Join(scalarFieldNames(), ", "))
		}

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := tracker.UpdateProfile(contextOf(cmd), build(args[1]))
		fmt.Printf("Profile %d%% complete, %d credits.\n", state.ProfileCompletion, state.Credits)
		return nil
	},
}

func scalarFieldNames() []string {
	names := make([]string, 0, len(scalarPatches))
	for name := range scalarPatches {
		names = append(names, name)
	}
	return names
}

func parseListField(name string) (profile.ListField, error) {
	switch name {
	case "subjects":
		return profile.FieldSubjects, nil
	case "interests":
		return profile.FieldInterests, nil
	}
	return "", fmt.Errorf("unknown list field %q (subjects or interests)", name)
}

var profileAddCmd = &cobra.Command{
	Use:   "add <subjects|interests> <value>",
	Short: "Append an entry to a profile list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := parseListField(args[0])
		if err != nil {
			return err
		}

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := tracker.AppendToListField(contextOf(cmd), field, args[1])
		fmt.Printf("%s: %s\n", args[0], strings.Join(state.Profile.List(field), ", "))
		return nil
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <subjects|interests> <index>",
	Short: "Remove the entry at a zero-based index from a profile list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := parseListField(args[0])
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("index must be a number: %w", err)
		}

		st, tracker, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := tracker.RemoveFromListField(contextOf(cmd), field, index)
		fmt.Printf("%s: %s\n", args[0], strings.Join(state.Profile.List(field), ", "))
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileRemoveCmd)
}
