package engine

import "ecoquest/internal/catalog"

const (
	// DefaultWeeklyGoal is the per-habit completion target for a fresh or legacy habit.
	DefaultWeeklyGoal = 7

	// MaxWeeklyProgress caps the global "days this week" counter.
	MaxWeeklyProgress = 7

	// FirstCustomHabitID keeps custom ids clear of the catalog range.
	FirstCustomHabitID = 1000

	DefaultCustomImpactKg   = 1.0
	DefaultCustomBasePoints = 15

	CustomHabitIcon        = "🌱"
	CustomHabitDescription = "Custom eco-friendly habit"
)

// GameState is the whole progress record of one player.
type GameState struct {
	Points            int
	Level             int
	LongestStreak     int
	HabitsCompleted   int
	CarbonSaved       float64
	ActiveHabits      []TrackedHabit
	WeeklyProgress    int
	NextCustomHabitID int
}

// TrackedHabit is an adopted habit. Template fields are copied at adoption time
// so later catalog edits do not affect it.
type TrackedHabit struct {
	catalog.HabitTemplate

	Streak         int
	LastCompleted  Day // zero when never completed
	CompletedToday bool
	WeeklyGoal     int
	WeeklyProgress int
	IsCustom       bool
}

// NewGameState returns the state of a player who has never played.
func NewGameState() GameState {
	return GameState{
		Level:             1,
		NextCustomHabitID: FirstCustomHabitID,
	}
}

// Clone returns a deep copy. TrackedHabit holds only values, so copying the slice is enough.
func (s GameState) Clone() GameState {
	out := s
	if s.ActiveHabits != nil {
		out.ActiveHabits = make([]TrackedHabit, len(s.ActiveHabits))
		copy(out.ActiveHabits, s.ActiveHabits)
	}
	return out
}

func (s GameState) habitIndex(id int) int {
	for i := range s.ActiveHabits {
		if s.ActiveHabits[i].ID == id {
			return i
		}
	}
	return -1
}

// Habit returns the tracked habit with the given id.
func (s GameState) Habit(id int) (TrackedHabit, bool) {
	i := s.habitIndex(id)
	if i < 0 {
		return TrackedHabit{}, false
	}
	return s.ActiveHabits[i], true
}

// IsAdopted reports whether a habit with this id is being tracked.
func (s GameState) IsAdopted(id int) bool {
	return s.habitIndex(id) >= 0
}

func newTrackedHabit(t catalog.HabitTemplate, custom bool) TrackedHabit {
	return TrackedHabit{
		HabitTemplate: t,
		WeeklyGoal:    DefaultWeeklyGoal,
		IsCustom:      custom,
	}
}
