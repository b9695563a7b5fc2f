package engine

// CompletionStatus tells a real completion apart from a repeated click on the same day.
type CompletionStatus int

const (
	CompletionApplied CompletionStatus = iota
	CompletionAlreadyDone
)

func (c CompletionStatus) String() string {
	switch c {
	case CompletionApplied:
		return "applied"
	case CompletionAlreadyDone:
		return "already_completed"
	default:
		return "unknown"
	}
}

type CompleteResult struct {
	HabitID        int
	Status         CompletionStatus
	PointsAwarded  int
	CarbonKg       float64
	LevelBefore    int
	LevelAfter     int
	LevelUp        bool
	Streak         int
	WeeklyProgress int
	WeeklyGoal     int
}

// CompleteHabit marks a habit done for today and credits points, carbon and
// streaks. A habit already completed today yields CompletionAlreadyDone and
// leaves the state untouched.
func CompleteHabit(st GameState, id int, today Day) (GameState, CompleteResult, error) {
	i := st.habitIndex(id)
	if i < 0 {
		return st, CompleteResult{}, NotFoundError{Kind: "habit", ID: id}
	}

	cur := st.ActiveHabits[i]
	if cur.CompletedToday {
		return st, CompleteResult{
			HabitID:        id,
			Status:         CompletionAlreadyDone,
			LevelBefore:    st.Level,
			LevelAfter:     st.Level,
			Streak:         cur.Streak,
			WeeklyProgress: cur.WeeklyProgress,
			WeeklyGoal:     cur.WeeklyGoal,
		}, nil
	}

	next := st.Clone()
	h := &next.ActiveHabits[i]
	h.CompletedToday = true
	h.LastCompleted = today
	h.Streak++
	h.WeeklyProgress = min(h.WeeklyProgress+1, h.WeeklyGoal)

	next.Points += h.BasePoints
	next.HabitsCompleted++
	next.CarbonSaved += h.ImpactKg
	next.WeeklyProgress = min(next.WeeklyProgress+1, MaxWeeklyProgress)
	if h.Streak > next.LongestStreak {
		next.LongestStreak = h.Streak
	}

	levelBefore := st.Level
	next.Level = LevelForPoints(next.Points)

	return next, CompleteResult{
		HabitID:        id,
		Status:         CompletionApplied,
		PointsAwarded:  h.BasePoints,
		CarbonKg:       h.ImpactKg,
		LevelBefore:    levelBefore,
		LevelAfter:     next.Level,
		LevelUp:        next.Level > levelBefore,
		Streak:         h.Streak,
		WeeklyProgress: h.WeeklyProgress,
		WeeklyGoal:     h.WeeklyGoal,
	}, nil
}
