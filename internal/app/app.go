// Package app is the Bubble Tea front-end: a tabbed dashboard over
// the progress tracker. All mutations go through the tracker; the UI
// re-renders from the state each operation returns.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunk/stemly/internal/achievements"
	"github.com/arjunk/stemly/internal/progress"
	"github.com/arjunk/stemly/internal/ui/theme"
)

// Tab identifies one of the top-level screens.
type Tab int

const (
	TabDashboard Tab = iota
	TabProfile
	TabTrophies
)

var tabNames = []string{"Dashboard", "Profile", "Trophies"}

// Options carries the app's dependencies.
type Options struct {
	Tracker *progress.Tracker
	Catalog []achievements.Achievement
}

// Model is the root Bubble Tea model.
type Model struct {
	tracker *progress.Tracker
	catalog []achievements.Achievement

	tab    Tab
	form   profileForm
	width  int
	height int
}

func newModel(opts Options) Model {
	return Model{
		tracker: opts.Tracker,
		catalog: opts.Catalog,
		form:    newProfileForm(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// While a profile field is being edited, the form owns every
		// key except ctrl+c.
		if m.tab == TabProfile && m.form.editing && msg.String() != "ctrl+c" {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg, m.tracker)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "right":
			m.tab = (m.tab + 1) % Tab(len(tabNames))
			return m, nil
		case "shift+tab", "left":
			m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		case "1":
			m.tab = TabDashboard
			return m, nil
		case "2":
			m.tab = TabProfile
			return m, nil
		case "3":
			m.tab = TabTrophies
			return m, nil
		}

		if m.tab == TabProfile {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg, m.tracker)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	header := m.renderHeader()

	var body string
	switch m.tab {
	case TabProfile:
		body = m.form.View(m.tracker, m.width)
	case TabTrophies:
		body = renderTrophies(m.tracker, m.catalog, m.width)
	default:
		body = renderDashboard(m.tracker.State(), m.width)
	}

	footer := m.renderFooter()

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	body = lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Render(body)

	v.SetContent(header + "\n" + body + "\n" + footer)
	return v
}

func (m Model) renderHeader() string {
	st := m.tracker.State()

	brand := theme.Title.Render(" Stemly")
	stats := theme.Subtitle.Render(fmt.Sprintf(
		"Lv %d   ⚡ %d/%d XP   🔥 %d day streak   🪙 %d credits ",
		st.Level, st.CurrentXP, st.RequiredXP, st.Current, st.Credits))

	var tabs string
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs += theme.TabActive.Render(name)
		} else {
			tabs += theme.TabInactive.Render(name)
		}
	}

	gap := m.width - lipgloss.Width(brand) - lipgloss.Width(stats)
	if gap < 1 {
		gap = 1
	}
	top := brand + lipgloss.NewStyle().Width(gap).Render("") + stats

	return top + "\n" + tabs + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(repeatRune('─', m.width))
}

func (m Model) renderFooter() string {
	hints := "tab switch · q quit"
	if m.tab == TabProfile {
		if m.form.editing {
			hints = "enter save · esc cancel"
		} else {
			hints = "↑↓ field · enter edit · tab switch · q quit"
		}
	}
	return theme.Hint.Render(" " + hints)
}

func repeatRune(r rune, n int) string {
	if n < 0 {
		n = 0
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
