// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aditsuru-git/rpomodoro/internal/config"
	"github.com/aditsuru-git/rpomodoro/internal/domain"
	"github.com/aditsuru-git/rpomodoro/internal/theme"
)

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// tickInterval governs the redraw cadence. Countdown accuracy comes from
// wall-clock elapsed time in the domain timer, not from the tick rate.
const tickInterval = 250 * time.Millisecond

// configFieldCount is the number of rows on the config screen.
const configFieldCount = 5

// Model represents the TUI state: the timer itself plus the display state
// for the two render modes, Normal and ConfigEdit.
type Model struct {
	cfg     *config.Config
	cfgPath string
	timer   *domain.Timer
	theme   theme.Theme

	progress progress.Model
	width    int
	height   int

	configMode   bool
	configCursor int

	// err defers an I/O failure (config save) until after program exit so
	// the alternate screen is torn down before it is reported.
	err error
}

// NewModel creates a TUI model for the given preferences. The timer starts
// at a paused work phase.
func NewModel(cfg *config.Config, cfgPath string) Model {
	th := theme.FromName(cfg.Theme)
	return Model{
		cfg:      cfg,
		cfgPath:  cfgPath,
		timer:    domain.New(cfg.Durations(), time.Now()),
		theme:    th,
		progress: newProgressBar(th),
	}
}

func newProgressBar(th theme.Theme) progress.Model {
	p := progress.New(progress.WithGradient(string(th.Primary), string(th.Dim)))
	p.ShowPercentage = false
	return p
}

// Err returns the deferred error, if any, after the program has finished.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.configMode {
			return m.updateConfig(msg)
		}
		return m.updateNormal(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = barWidth(msg.Width)

	case tickMsg:
		// The countdown is frozen while the config screen is open.
		if !m.configMode {
			m.timer.Advance(m.cfg.Durations(), time.Time(msg))
		}
		return m, tickCmd()
	}

	return m, nil
}

// updateNormal dispatches keys on the countdown screen.
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q":
		return m, tea.Quit
	case " ":
		m.timer.TogglePause(time.Now())
	case "r", "R":
		m.timer.Reset(m.cfg.Durations(), time.Now())
	case "s", "S":
		m.timer.AdvancePhase(m.cfg.Durations())
	case "c", "C":
		m.configMode = true
		m.configCursor = 0
	}
	return m, nil
}

// updateConfig dispatches keys on the config screen.
func (m Model) updateConfig(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.configMode = false
		if err := config.Save(m.cfgPath, m.cfg); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.refreshTheme()
		// Time spent editing is never charged against the countdown.
		m.timer.Touch(time.Now())
	case "j", "down":
		if m.configCursor < configFieldCount-1 {
			m.configCursor++
		}
	case "k", "up":
		if m.configCursor > 0 {
			m.configCursor--
		}
	case "h", "left":
		m.editField(-1)
	case "l", "right":
		m.editField(+1)
	}
	return m, nil
}

// editField applies a decrement (-1) or increment (+1) to the field under
// the cursor. The theme cycles with wrap-around and takes effect
// immediately; numeric fields saturate at their bounds.
func (m *Model) editField(delta int) {
	switch m.configCursor {
	case 0:
		if delta < 0 {
			m.cfg.Theme = theme.Prev(m.cfg.Theme)
		} else {
			m.cfg.Theme = theme.Next(m.cfg.Theme)
		}
		m.refreshTheme()
	case 1:
		m.cfg.WorkDuration = config.Clamp(m.cfg.WorkDuration+delta, config.MaxWork)
	case 2:
		m.cfg.ShortBreak = config.Clamp(m.cfg.ShortBreak+delta, config.MaxShort)
	case 3:
		m.cfg.LongBreak = config.Clamp(m.cfg.LongBreak+delta, config.MaxLong)
	case 4:
		m.cfg.CyclesBeforeLong = config.Clamp(m.cfg.CyclesBeforeLong+delta, config.MaxCycles)
	}
}

// refreshTheme re-derives the active colors from the configured theme name.
func (m *Model) refreshTheme() {
	m.theme = theme.FromName(m.cfg.Theme)
	width := m.progress.Width
	m.progress = newProgressBar(m.theme)
	m.progress.Width = width
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.configMode {
		return m.viewConfig()
	}
	return m.viewTimer()
}

// viewTimer renders the big countdown clock, the phase progress bar, and
// the status line.
func (m Model) viewTimer() string {
	clock := renderBigClock(formatClock(m.timer.Remaining), m.theme.Primary, m.width)
	bar := m.progress.ViewAs(m.timer.Progress(m.cfg.Durations()))

	body := lipgloss.JoinVertical(lipgloss.Center, clock, "", bar)
	placed := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, body)

	return placed + "\n" + m.statusLine()
}

// statusLine renders phase/run-state on the left, cycle progress in the
// center, and key hints on the right.
func (m Model) statusLine() string {
	primaryStyle := lipgloss.NewStyle().Foreground(m.theme.Primary)
	dimStyle := lipgloss.NewStyle().Foreground(m.theme.Dim)

	runState := "running"
	if m.timer.Paused {
		runState = "paused"
	}

	left := primaryStyle.Render(fmt.Sprintf(" %s | %s ", m.timer.Phase.Label(), runState))
	center := dimStyle.Render(fmt.Sprintf("cycles: %d/%d", m.timer.CyclesCompleted, m.cfg.CyclesBeforeLong))
	right := dimStyle.Render(" space:start/pause  r:reset  s:skip  c:config  q:quit ")

	return composeStatusLine(m.width, left, center, right)
}

// composeStatusLine spaces three pre-styled segments across the given
// width: left-aligned, centered, right-aligned. Segments that no longer
// fit are dropped from the right.
func composeStatusLine(width int, left, center, right string) string {
	lw := lipgloss.Width(left)
	cw := lipgloss.Width(center)
	rw := lipgloss.Width(right)

	if lw+cw+rw+2 > width {
		right = ""
		rw = 0
	}
	if lw+cw+2 > width {
		return left
	}

	gap1 := (width-cw)/2 - lw
	if gap1 < 1 {
		gap1 = 1
	}
	gap2 := width - lw - gap1 - cw - rw
	if gap2 < 1 {
		gap2 = 1
	}

	return left + strings.Repeat(" ", gap1) + center + strings.Repeat(" ", gap2) + right
}

// viewConfig renders the 5-field editor with a cursor marker and a help
// line at the bottom.
func (m Model) viewConfig() string {
	primaryStyle := lipgloss.NewStyle().Foreground(m.theme.Primary)
	dimStyle := lipgloss.NewStyle().Foreground(m.theme.Dim)

	fields := []struct {
		label string
		value string
	}{
		{"theme", m.cfg.Theme},
		{"work_duration", fmt.Sprintf("%d", m.cfg.WorkDuration)},
		{"short_break", fmt.Sprintf("%d", m.cfg.ShortBreak)},
		{"long_break", fmt.Sprintf("%d", m.cfg.LongBreak)},
		{"cycles_before_long", fmt.Sprintf("%d", m.cfg.CyclesBeforeLong)},
	}

	rows := make([]string, 0, len(fields)*2-1)
	for i, f := range fields {
		style := dimStyle
		pointer := "  "
		if i == m.configCursor {
			style = primaryStyle
			pointer = "> "
		}
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s: %s", pointer, f.label, f.value)))
	}

	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	placed := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, list)

	help := primaryStyle.Render(" config | j/k:navigate  h/l:change  q/esc:save&exit ")
	return placed + "\n" + centerLine(m.width, help)
}

// centerLine centers a pre-styled segment within the given width.
func centerLine(width int, s string) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

// barWidth sizes the progress bar to the clock, capped for wide terminals.
func barWidth(termWidth int) int {
	w := termWidth - 4
	if w > 34 {
		w = 34
	}
	if w < 10 {
		w = 10
	}
	return w
}

// tickCmd creates a command that sends a tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// formatClock formats a countdown as MM:SS.
func formatClock(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
