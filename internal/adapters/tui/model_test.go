package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aditsuru-git/rpomodoro/internal/config"
	"github.com/aditsuru-git/rpomodoro/internal/domain"
	"github.com/aditsuru-git/rpomodoro/internal/theme"
)

func testModel(t *testing.T) Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	m := NewModel(config.DefaultConfig(), path)
	m.width = 80
	m.height = 24
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	updated, ok := result.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", result)
	}
	return updated, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{25 * time.Minute, "25:00"},
		{5 * time.Minute, "05:00"},
		{1*time.Minute + 30*time.Second, "01:30"},
		{0, "00:00"},
		{90 * time.Second, "01:30"},
		{120 * time.Minute, "120:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatClock(tt.duration)
			if got != tt.want {
				t.Errorf("formatClock(%v) = %v, want %v", tt.duration, got, tt.want)
			}
		})
	}
}

func TestNewModel(t *testing.T) {
	m := testModel(t)

	if m.timer == nil {
		t.Fatal("NewModel() should create a timer")
	}
	if m.timer.Phase != domain.PhaseWork {
		t.Errorf("Phase = %v, want %v", m.timer.Phase, domain.PhaseWork)
	}
	if !m.timer.Paused {
		t.Error("timer should start paused")
	}
	if m.configMode {
		t.Error("config mode should start off")
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, k := range []tea.Msg{key("q"), key("Q"), tea.KeyMsg{Type: tea.KeyCtrlC}} {
		m := testModel(t)
		_, cmd := update(t, m, k)
		if !isQuit(cmd) {
			t.Errorf("%v should quit", k)
		}
	}
}

func TestUpdate_CtrlCQuitsInConfigMode(t *testing.T) {
	m := testModel(t)
	m.configMode = true

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit regardless of mode")
	}
}

func TestUpdate_SpaceTogglesPause(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.timer.Paused {
		t.Error("space should resume a paused timer")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.timer.Paused {
		t.Error("space should pause a running timer")
	}
}

func TestUpdate_ResetKey(t *testing.T) {
	m := testModel(t)
	d := m.cfg.Durations()
	m.timer.Phase = domain.PhaseLongBreak
	m.timer.CyclesCompleted = 3
	m.timer.Remaining = time.Second
	m.timer.Paused = false

	m, _ = update(t, m, key("r"))

	if m.timer.Phase != domain.PhaseWork || m.timer.CyclesCompleted != 0 ||
		m.timer.Remaining != d.Work || !m.timer.Paused {
		t.Errorf("reset left timer at {%v %d %v paused=%v}",
			m.timer.Phase, m.timer.CyclesCompleted, m.timer.Remaining, m.timer.Paused)
	}
}

func TestUpdate_SkipKey(t *testing.T) {
	m := testModel(t)
	d := m.cfg.Durations()

	m, _ = update(t, m, key("s"))

	if m.timer.Phase != domain.PhaseShortBreak {
		t.Errorf("Phase = %v, want %v", m.timer.Phase, domain.PhaseShortBreak)
	}
	if m.timer.Remaining != d.ShortBreak {
		t.Errorf("Remaining = %v, want %v", m.timer.Remaining, d.ShortBreak)
	}
	if m.timer.CyclesCompleted != 1 {
		t.Errorf("CyclesCompleted = %d, want 1", m.timer.CyclesCompleted)
	}
}

func TestUpdate_ConfigModeEntry(t *testing.T) {
	m := testModel(t)
	m.configCursor = 3

	m, _ = update(t, m, key("c"))

	if !m.configMode {
		t.Error("c should enter config mode")
	}
	if m.configCursor != 0 {
		t.Errorf("configCursor = %d, want 0 on entry", m.configCursor)
	}
}

func TestUpdate_TickAdvancesTimer(t *testing.T) {
	m := testModel(t)
	d := m.cfg.Durations()
	t0 := time.Now()
	m.timer = domain.New(d, t0)
	m.timer.TogglePause(t0)

	m, _ = update(t, m, tickMsg(t0.Add(3*time.Second)))

	if m.timer.Remaining != d.Work-3*time.Second {
		t.Errorf("Remaining = %v, want %v", m.timer.Remaining, d.Work-3*time.Second)
	}
}

func TestUpdate_TickSchedulesNextTick(t *testing.T) {
	m := testModel(t)
	_, cmd := update(t, m, tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestUpdate_TickFrozenInConfigMode(t *testing.T) {
	m := testModel(t)
	d := m.cfg.Durations()
	t0 := time.Now()
	m.timer = domain.New(d, t0)
	m.timer.TogglePause(t0)
	m.configMode = true

	m, _ = update(t, m, tickMsg(t0.Add(time.Hour)))

	if m.timer.Remaining != d.Work {
		t.Errorf("Remaining = %v, want %v (timer must be frozen while editing)", m.timer.Remaining, d.Work)
	}
}

func TestUpdate_ConfigNavigationClamps(t *testing.T) {
	m := testModel(t)
	m.configMode = true

	for i := 0; i < 8; i++ {
		m, _ = update(t, m, key("j"))
	}
	if m.configCursor != configFieldCount-1 {
		t.Errorf("configCursor = %d, want %d after over-navigating down", m.configCursor, configFieldCount-1)
	}

	for i := 0; i < 8; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.configCursor != 0 {
		t.Errorf("configCursor = %d, want 0 after over-navigating up", m.configCursor)
	}
}

func TestUpdate_ConfigEditsSaturate(t *testing.T) {
	m := testModel(t)
	m.configMode = true
	m.configCursor = 1 // work_duration
	m.cfg.WorkDuration = 1

	m, _ = update(t, m, key("h"))
	if m.cfg.WorkDuration != 1 {
		t.Errorf("WorkDuration = %d, decrement from 1 must stay at 1", m.cfg.WorkDuration)
	}

	m.cfg.WorkDuration = config.MaxWork
	m, _ = update(t, m, key("l"))
	if m.cfg.WorkDuration != config.MaxWork {
		t.Errorf("WorkDuration = %d, increment from max must stay at %d", m.cfg.WorkDuration, config.MaxWork)
	}

	m.configCursor = 4 // cycles_before_long
	m.cfg.CyclesBeforeLong = config.MaxCycles
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cfg.CyclesBeforeLong != config.MaxCycles {
		t.Errorf("CyclesBeforeLong = %d, want %d", m.cfg.CyclesBeforeLong, config.MaxCycles)
	}
}

func TestUpdate_ThemeCyclesWithLivePreview(t *testing.T) {
	m := testModel(t)
	m.configMode = true
	m.configCursor = 0

	m, _ = update(t, m, key("h"))
	if m.cfg.Theme != "cyan" {
		t.Errorf("Theme = %q, decrement from first should wrap to last", m.cfg.Theme)
	}
	if m.theme != theme.FromName("cyan") {
		t.Error("active colors should update immediately while cycling")
	}

	m, _ = update(t, m, key("l"))
	if m.cfg.Theme != "blue" {
		t.Errorf("Theme = %q, increment from last should wrap to first", m.cfg.Theme)
	}
}

func TestUpdate_ConfigExitSavesAndRefreshes(t *testing.T) {
	m := testModel(t)
	m.configMode = true
	m.cfg.Theme = "green"
	m.cfg.WorkDuration = 30

	m, cmd := update(t, m, key("q"))

	if m.configMode {
		t.Error("q should leave config mode")
	}
	if isQuit(cmd) {
		t.Error("leaving config mode should not quit")
	}
	if m.theme != theme.FromName("green") {
		t.Error("exit should re-derive the theme")
	}

	loaded, err := config.Load(m.cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Theme != "green" || loaded.WorkDuration != 30 {
		t.Errorf("persisted config = %+v", loaded)
	}
}

func TestUpdate_ConfigExitWithEscape(t *testing.T) {
	m := testModel(t)
	m.configMode = true

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.configMode {
		t.Error("esc should leave config mode")
	}
}

func TestUpdate_ConfigSaveFailureQuits(t *testing.T) {
	m := testModel(t)
	m.cfgPath = t.TempDir() // a directory: the write must fail
	m.configMode = true

	m, cmd := update(t, m, key("q"))

	if m.Err() == nil {
		t.Error("save failure should be recorded")
	}
	if !isQuit(cmd) {
		t.Error("save failure should end the program")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := testModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestUpdate_ResizeKeepsModes(t *testing.T) {
	m := testModel(t)
	m.configMode = true
	m.configCursor = 2

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if !m.configMode || m.configCursor != 2 {
		t.Error("resize must not change mode or cursor")
	}
}

func TestView_Loading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := NewModel(config.DefaultConfig(), path)

	if m.View() != "Loading..." {
		t.Error("View() before the first resize should show loading")
	}
}

func TestView_Timer(t *testing.T) {
	m := testModel(t)

	view := m.View()

	if !strings.Contains(view, "work | paused") {
		t.Error("timer view should show phase and run state")
	}
	if !strings.Contains(view, "cycles: 0/4") {
		t.Error("timer view should show cycle progress")
	}
	if !strings.Contains(view, "q:quit") {
		t.Error("timer view should show key hints")
	}
	if !strings.Contains(view, "██") {
		t.Error("timer view should render the block clock")
	}
}

func TestView_TimerRunning(t *testing.T) {
	m := testModel(t)
	m.timer.TogglePause(time.Now())

	if !strings.Contains(m.View(), "work | running") {
		t.Error("timer view should show running state")
	}
}

func TestView_Config(t *testing.T) {
	m := testModel(t)
	m.configMode = true
	m.configCursor = 1

	view := m.View()

	if !strings.Contains(view, "> work_duration: 25") {
		t.Error("config view should mark the selected field")
	}
	if !strings.Contains(view, "theme: blue") {
		t.Error("config view should list the theme field")
	}
	if !strings.Contains(view, "cycles_before_long: 4") {
		t.Error("config view should list the cycle count field")
	}
	if !strings.Contains(view, "q/esc:save&exit") {
		t.Error("config view should show the help line")
	}
}

func TestComposeStatusLine(t *testing.T) {
	line := composeStatusLine(80, "LEFT", "MID", "RIGHT")

	if len(line) != 80 {
		t.Errorf("status line length = %d, want 80", len(line))
	}
	if !strings.HasPrefix(line, "LEFT") {
		t.Error("left segment should be left-aligned")
	}
	if !strings.HasSuffix(line, "RIGHT") {
		t.Error("right segment should be right-aligned")
	}
	mid := strings.Index(line, "MID")
	if mid < 35 || mid > 42 {
		t.Errorf("center segment at %d, want roughly centered", mid)
	}
}

func TestComposeStatusLine_Narrow(t *testing.T) {
	line := composeStatusLine(20, "LEFT", "MID", "a very long right segment")
	if strings.Contains(line, "right segment") {
		t.Error("right segment should be dropped when it does not fit")
	}
}
