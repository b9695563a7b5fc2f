package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/engine"
	"ecoquest/internal/storage"
)

func loadedBoard(t *testing.T, ids ...int) boardModel {
	t.Helper()
	st := engine.NewGameState()
	var err error
	for _, id := range ids {
		st, err = engine.AdoptHabit(st, id)
		require.NoError(t, err)
	}
	m := newBoardModel(context.Background(), nil, engine.NewTipProvider([]string{"Carry a tote bag"}))
	next, _ := m.Update(loadedMsg{state: st})
	return next.(boardModel)
}

func press(t *testing.T, m boardModel, k tea.KeyMsg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(boardModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardNavigationStaysInRange(t *testing.T) {
	m := loadedBoard(t, 1, 2, 3)
	assert.False(t, m.loading)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.selected)

	for i := 0; i < 5; i++ {
		m, _ = press(t, m, runes("j"))
	}
	assert.Equal(t, 2, m.selected)
}

func TestBoardCompleteSchedulesCommand(t *testing.T) {
	m := loadedBoard(t, 1)

	m, cmd := press(t, m, runes("c"))
	assert.NotNil(t, cmd)
	assert.True(t, m.busy)

	// A second press while busy is ignored.
	_, cmd = press(t, m, runes("c"))
	assert.Nil(t, cmd)
}

func TestBoardCompleteSkipsDoneHabits(t *testing.T) {
	m := loadedBoard(t, 1)
	m.state.ActiveHabits[0].CompletedToday = true

	m, cmd := press(t, m, runes("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Already completed today!", m.lastLog)
}

func TestBoardCompleteWithoutHabits(t *testing.T) {
	m := loadedBoard(t)
	m, cmd := press(t, m, runes("c"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.lastLog, "eq adopt")
}

func TestBoardRemovedClampsSelection(t *testing.T) {
	m := loadedBoard(t, 1, 2)
	m, _ = press(t, m, runes("j"))
	require.Equal(t, 1, m.selected)

	st, _ := engine.RemoveHabit(m.state, 2)
	next, _ := m.Update(removedMsg{id: 2, removed: true, state: st})
	m = next.(boardModel)
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, "Removed 2.", m.lastLog)
}

func TestCompletionLog(t *testing.T) {
	res := &engine.CompleteResult{
		Status:        engine.CompletionApplied,
		PointsAwarded: 25,
		CarbonKg:      2.3,
		Streak:        3,
		LevelUp:       true,
		LevelAfter:    2,
	}
	line := completionLog(completedMsg{res: res})
	assert.Contains(t, line, "+25 points")
	assert.Contains(t, line, "2.3 kg")
	assert.Contains(t, line, "Green Warrior")

	line = completionLog(completedMsg{res: res, err: &engine.PersistenceError{Op: "save", Err: errors.New("disk full")}})
	assert.Contains(t, line, "not saved: disk full")

	line = completionLog(completedMsg{err: engine.NotFoundError{Kind: "habit", ID: 9}})
	assert.Equal(t, "Complete failed: habit 9 not found", line)

	line = completionLog(completedMsg{res: &engine.CompleteResult{Status: engine.CompletionAlreadyDone}})
	assert.Equal(t, "Already completed today!", line)
}

func TestLevelProgress(t *testing.T) {
	assert.InDelta(t, 0.0, levelProgress(0), 1e-9)
	assert.InDelta(t, 0.45, levelProgress(145), 1e-9)
	assert.InDelta(t, 0.99, levelProgress(599), 1e-9)
}

func TestWrap(t *testing.T) {
	lines := wrap("Turn off the tap while brushing your teeth", 16)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 16, l)
	}
	assert.Equal(t, "Turn off the tap while brushing your teeth", strings.Join(lines, " "))
	assert.Nil(t, wrap("   ", 10))
}

func TestViewListsHabits(t *testing.T) {
	m := loadedBoard(t, 7)
	view := m.View()
	assert.Contains(t, view, "Eat one plant-based meal")
	assert.Contains(t, view, "Carry a tote bag")
}

func TestRefreshKeepsUnsavedCompletions(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "eco.db"))
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	svc := engine.NewService(db, engine.WithClock(func() time.Time { return now }))
	require.NoError(t, svc.Load(ctx))
	_, err = svc.AdoptHabit(ctx, 2)
	require.NoError(t, err)

	m := newBoardModel(ctx, svc, nil)
	next, _ := m.Update(m.Init()())
	m = next.(boardModel)

	_, err = db.ExecContext(ctx, `ALTER TABLE slots RENAME TO slots_off`)
	require.NoError(t, err)

	m, cmd := press(t, m, runes("c"))
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	m = next.(boardModel)
	assert.Contains(t, m.lastLog, "not saved")
	assert.Equal(t, 25, m.state.Points)

	// Past midnight, refresh rolls the day over without dropping the completion.
	now = now.AddDate(0, 0, 1)
	m, cmd = press(t, m, runes("r"))
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	m = next.(boardModel)
	assert.Equal(t, 25, m.state.Points)
	assert.False(t, m.state.ActiveHabits[0].CompletedToday)
	assert.Contains(t, m.lastLog, "still not saved")
	assert.True(t, svc.Dirty())

	_, err = db.ExecContext(ctx, `ALTER TABLE slots_off RENAME TO slots`)
	require.NoError(t, err)
	m, cmd = press(t, m, runes("r"))
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	m = next.(boardModel)
	assert.Contains(t, m.lastLog, "Refreshed")
	assert.False(t, svc.Dirty())
	assert.Equal(t, 25, m.state.Points)
}
