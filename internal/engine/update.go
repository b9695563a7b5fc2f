package engine

// RemoveHabit stops tracking a habit and drops its progress. Unknown ids are a no-op.
func RemoveHabit(st GameState, id int) (GameState, bool) {
	i := st.habitIndex(id)
	if i < 0 {
		return st, false
	}
	next := st.Clone()
	next.ActiveHabits = append(next.ActiveHabits[:i], next.ActiveHabits[i+1:]...)
	return next, true
}

// SetWeeklyGoal changes how many completions a habit targets per week.
// Progress above the new goal is clamped down to it.
func SetWeeklyGoal(st GameState, id int, goal int) (GameState, error) {
	if goal < 1 || goal > MaxWeeklyProgress {
		return st, ValidationError{Field: "weekly goal", Reason: "must be between 1 and 7"}
	}
	i := st.habitIndex(id)
	if i < 0 {
		return st, NotFoundError{Kind: "habit", ID: id}
	}
	next := st.Clone()
	h := &next.ActiveHabits[i]
	h.WeeklyGoal = goal
	if h.WeeklyProgress > goal {
		h.WeeklyProgress = goal
	}
	return next, nil
}

// ResetWeeklyProgress starts a new week: every habit's weekly count and
// today flag are cleared, as is the global counter.
func ResetWeeklyProgress(st GameState) GameState {
	next := st.Clone()
	for i := range next.ActiveHabits {
		next.ActiveHabits[i].WeeklyProgress = 0
		next.ActiveHabits[i].CompletedToday = false
	}
	next.WeeklyProgress = 0
	return next
}

// RolloverDay clears CompletedToday on habits not completed on today.
// Streaks and weekly counts are left alone.
func RolloverDay(st GameState, today Day) GameState {
	next := st.Clone()
	for i := range next.ActiveHabits {
		h := &next.ActiveHabits[i]
		if h.LastCompleted != today {
			h.CompletedToday = false
		}
	}
	return next
}
