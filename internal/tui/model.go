package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ecoquest/internal/engine"
	"ecoquest/internal/ui"
)

type boardModel struct {
	ctx  context.Context
	svc  *engine.Service
	tips *engine.TipProvider
	rng  *rand.Rand

	keys keyMap
	help help.Model
	bar  progress.Model

	width  int
	height int

	state    engine.GameState
	selected int
	tip      string

	lastLog string
	loading bool
	busy    bool
}

type loadedMsg struct {
	state engine.GameState
	err   error
}

type completedMsg struct {
	id    int
	res   *engine.CompleteResult
	state engine.GameState
	err   error
}

type removedMsg struct {
	id      int
	removed bool
	state   engine.GameState
	err     error
}

func newBoardModel(ctx context.Context, svc *engine.Service, tips *engine.TipProvider) boardModel {
	if tips == nil {
		tips = engine.NewTipProvider(nil)
	}
	m := boardModel{
		ctx:     ctx,
		svc:     svc,
		tips:    tips,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		keys:    defaultKeyMap(),
		help:    help.New(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		state:   engine.NewGameState(),
		loading: true,
		lastLog: "Loaded.",
	}
	m.tip = tips.ForDay(time.Now().Weekday())
	if svc != nil {
		m.tip = tips.ForDay(svc.Today().Weekday())
	}
	return m
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Load(m.ctx)
		return loadedMsg{state: m.svc.State(), err: err}
	}
}

// refreshCmd keeps unsaved work: a dirty service retries its save instead of reloading.
func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Refresh(m.ctx)
		return loadedMsg{state: m.svc.State(), err: err}
	}
}

func (m boardModel) completeCmd(id int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteHabit(m.ctx, id)
		return completedMsg{id: id, res: res, state: m.svc.State(), err: err}
	}
}

func (m boardModel) removeCmd(id int) tea.Cmd {
	return func() tea.Msg {
		removed, err := m.svc.RemoveHabit(m.ctx, id)
		return removedMsg{id: id, removed: removed, state: m.svc.State(), err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case loadedMsg:
		m.loading = false
		m.busy = false
		m.state = msg.state
		m.clampSelection()
		if msg.err != nil {
			m.lastLog = loadLog(msg.err)
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		m.busy = false
		if msg.res != nil {
			m.state = msg.state
		}
		m.lastLog = completionLog(msg)
		return m, nil
	case removedMsg:
		m.busy = false
		m.state = msg.state
		m.clampSelection()
		switch {
		case msg.err != nil && !msg.removed:
			m.lastLog = "Remove failed: " + msg.err.Error()
		case msg.err != nil:
			m.lastLog = fmt.Sprintf("Removed %d, but not saved: %v", msg.id, msg.err)
		case msg.removed:
			m.lastLog = fmt.Sprintf("Removed %d.", msg.id)
		default:
			m.lastLog = "Nothing to remove."
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.state.ActiveHabits)-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.Tip):
		m.tip = m.tips.Random(m.rng)
		return m, nil
	}

	if m.busy || m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.Complete):
		h, ok := m.selectedHabit()
		if !ok {
			m.lastLog = "Adopt a habit first: eq adopt <id>."
			return m, nil
		}
		if h.CompletedToday {
			m.lastLog = "Already completed today!"
			return m, nil
		}
		m.busy = true
		m.lastLog = fmt.Sprintf("Completing %s…", h.Name)
		return m, m.completeCmd(h.ID)
	case key.Matches(msg, m.keys.Remove):
		h, ok := m.selectedHabit()
		if !ok {
			return m, nil
		}
		m.busy = true
		m.lastLog = fmt.Sprintf("Removing %s…", h.Name)
		return m, m.removeCmd(h.ID)
	}
	return m, nil
}

func (m boardModel) selectedHabit() (engine.TrackedHabit, bool) {
	if m.selected < 0 || m.selected >= len(m.state.ActiveHabits) {
		return engine.TrackedHabit{}, false
	}
	return m.state.ActiveHabits[m.selected], true
}

func (m *boardModel) clampSelection() {
	if m.selected >= len(m.state.ActiveHabits) {
		m.selected = len(m.state.ActiveHabits) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func loadLog(err error) string {
	var perr *engine.PersistenceError
	if errors.As(err, &perr) && perr.Op == "save" {
		return "Changes kept in memory, still not saved: " + perr.Err.Error()
	}
	return "Could not read the saved game, changes are disabled: " + err.Error()
}

func completionLog(msg completedMsg) string {
	if msg.res == nil {
		return "Complete failed: " + msg.err.Error()
	}
	if msg.res.Status == engine.CompletionAlreadyDone {
		return "Already completed today!"
	}
	line := fmt.Sprintf("+%d points, %.1f kg CO₂ saved (streak %d)", msg.res.PointsAwarded, msg.res.CarbonKg, msg.res.Streak)
	if msg.res.LevelUp {
		line += fmt.Sprintf(" %s %s", ui.BadgeLevelUp, engine.LevelName(msg.res.LevelAfter))
	}
	var perr *engine.PersistenceError
	if errors.As(msg.err, &perr) {
		line += " (not saved: " + perr.Err.Error() + ")"
	}
	return line
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.loading {
		return ui.Heading(ui.IconLeaf, "EcoQuest") + " " + ui.Muted.Render("loading…")
	}
	st := m.state
	return fmt.Sprintf("%s  %s  %s %d  %s",
		ui.Heading(ui.IconLeaf, "EcoQuest"),
		ui.LevelBadge(st.Level, engine.LevelName(st.Level)),
		ui.Key.Render("Points"), st.Points,
		m.bar.ViewAs(levelProgress(st.Points)),
	)
}

func (m boardModel) renderSidebar() string {
	st := m.state
	imp := engine.ImpactFor(st)
	lines := []string{
		ui.PanelTitle.Render("Stats"),
		ui.LabelValue(ui.IconCloud+" CO₂ saved", ui.Kg(st.CarbonSaved)),
		ui.LabelValue(ui.IconDone+" Completed", st.HabitsCompleted),
		ui.LabelValue(ui.IconFire+" Best streak", st.LongestStreak),
		ui.LabelValue(ui.IconTarget+" This week", fmt.Sprintf("%d/%d", st.WeeklyProgress, engine.MaxWeeklyProgress)),
		"",
		ui.PanelTitle.Render("Today's impact"),
		ui.LabelValue("Today", ui.Kg(imp.TodayKg)),
		ui.LabelValue("Per month", ui.Kg(imp.MonthlyKg)),
		ui.LabelValue(ui.IconTree+" Trees", imp.TreesEquivalent),
		ui.LabelValue(ui.IconCar+" Miles", imp.MilesEquivalent),
		"",
		ui.PanelTitle.Render(ui.IconBulb + " Tip"),
	}
	lines = append(lines, wrap(m.tip, 28)...)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	out := []string{ui.PanelTitle.Render("Habits")}
	lines := habitLines(m.state.ActiveHabits, m.selected)
	if len(lines) == 0 {
		out = append(out, ui.Muted.Render("(no habits yet: run eq catalog, then eq adopt <id>)"))
		return strings.Join(out, "\n")
	}
	return strings.Join(append(out, lines...), "\n")
}

func (m boardModel) renderFooter() string {
	return m.lastLog + "\n" + m.help.View(m.keys)
}

func habitLines(habits []engine.TrackedHabit, selected int) []string {
	out := make([]string, 0, len(habits))
	for i, h := range habits {
		cursor := "  "
		if i == selected {
			cursor = "> "
		}
		row := fmt.Sprintf("%s%s %s  %s  %s %d  week %s %d/%d",
			cursor,
			ui.HabitIcon(h.Icon, h.IsCustom),
			h.Name,
			ui.DoneMark(h.CompletedToday),
			ui.IconFire, h.Streak,
			ui.Bar(h.WeeklyProgress, h.WeeklyGoal, 7), h.WeeklyProgress, h.WeeklyGoal,
		)
		out = append(out, row)
	}
	return out
}

// levelProgress is the fraction of the current level earned so far.
func levelProgress(points int) float64 {
	lvl := engine.LevelForPoints(points)
	cur := engine.PointsForLevel(lvl)
	next := engine.PointsForLevel(lvl + 1)
	if next <= cur {
		return 0
	}
	return float64(points-cur) / float64(next-cur)
}

func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
