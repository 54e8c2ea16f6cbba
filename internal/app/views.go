package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arjunk/stemly/internal/achievements"
	"github.com/arjunk/stemly/internal/progress"
	"github.com/arjunk/stemly/internal/ui/components"
	"github.com/arjunk/stemly/internal/ui/theme"
)

func renderDashboard(st progress.State, width int) string {
	cardWidth := width - 6
	if cardWidth < 30 {
		cardWidth = 30
	}
	innerWidth := cardWidth - 6 // card padding + border

	xpBar := components.ProgressBar{
		Label:       "Level " + fmt.Sprint(st.Level),
		Percent:     float64(st.CurrentXP) / float64(st.RequiredXP),
		ShowPercent: true,
		Width:       innerWidth,
	}
	profileBar := components.ProgressBar{
		Label:       "Profile",
		Percent:     float64(st.ProfileCompletion) / 100,
		ShowPercent: true,
		Width:       innerWidth,
	}

	progressCard := theme.Card.Width(cardWidth).Render(
		theme.Subtitle.Render("Progress") + "\n\n" +
			xpBar.View() + "\n" +
			theme.Hint.Render(fmt.Sprintf("%*s", innerWidth, fmt.Sprintf("%d / %d XP", st.CurrentXP, st.RequiredXP))) + "\n" +
			profileBar.View())

	row := func(label, value string) string {
		return theme.Label.Render(label) + " " + theme.Value.Render(value)
	}

	statsCard := theme.Card.Width(cardWidth).Render(
		theme.Subtitle.Render("Stats") + "\n\n" +
			row("Total XP", fmt.Sprintf("⚡ %d", st.TotalXP)) + "\n" +
			row("Streak", fmt.Sprintf("🔥 %d days (best %d)", st.Current, st.Longest)) + "\n" +
			row("Days active", fmt.Sprint(st.DaysActive)) + "\n" +
			row("Credits", fmt.Sprintf("🪙 %d", st.Credits)) + "\n" +
			row("Badges", fmt.Sprintf("🏅 %d", st.Badges)))

	return "\n" + lipgloss.NewStyle().PaddingLeft(2).Render(
		progressCard + "\n" + statsCard)
}

func renderTrophies(tracker *progress.Tracker, catalog []achievements.Achievement, width int) string {
	stats := tracker.Stats()
	unlocked := make(map[string]bool)
	for _, a := range achievements.Unlocked(stats, catalog) {
		unlocked[a.ID] = true
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, a := range catalog {
		var line string
		if unlocked[a.ID] {
			line = theme.Unlocked.Render(fmt.Sprintf("  %s %s", a.Icon, a.Name)) +
				theme.Hint.Render(fmt.Sprintf("  +%d XP", a.XPReward))
		} else {
			pct := achievements.Progress(a, stats)
			line = theme.Locked.Render(fmt.Sprintf("  🔒 %s", a.Name)) +
				theme.Hint.Render(fmt.Sprintf("  %d%%", pct))
		}
		b.WriteString(line + "\n")
		b.WriteString(theme.Subtitle.Render("     "+a.Description) + "\n")
	}

	total := len(catalog)
	count := len(achievements.Unlocked(stats, catalog))
	b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("  %d of %d unlocked", count, total)))

	return b.String()
}
