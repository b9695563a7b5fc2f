package engine

import (
	"fmt"
	"math"

	"ecoquest/internal/catalog"
	"ecoquest/internal/storage"
)

// EncodeState serializes the state in the persisted document layout.
func EncodeState(st GameState) ([]byte, error) {
	return storage.MarshalDocument(toDoc(st))
}

// DecodeState parses a persisted document and reconciles it against defaults.
// CompletedToday flags are taken as stored; callers run RolloverDay before use.
func DecodeState(data []byte) (GameState, error) {
	doc, err := storage.UnmarshalDocument(data)
	if err != nil {
		return GameState{}, err
	}
	return reconcile(doc)
}

func toDoc(st GameState) storage.StateDoc {
	next := st.NextCustomHabitID
	doc := storage.StateDoc{
		Version:           storage.DocumentVersion,
		Points:            st.Points,
		Level:             st.Level,
		LongestStreak:     st.LongestStreak,
		HabitsCompleted:   st.HabitsCompleted,
		CarbonSaved:       st.CarbonSaved,
		WeeklyProgress:    st.WeeklyProgress,
		NextCustomHabitID: &next,
		ActiveHabits:      make([]storage.HabitDoc, 0, len(st.ActiveHabits)),
	}
	for _, h := range st.ActiveHabits {
		impact := h.ImpactKg
		points := h.BasePoints
		goal := h.WeeklyGoal
		progress := h.WeeklyProgress
		custom := h.IsCustom
		var last *string
		if !h.LastCompleted.IsZero() {
			s := h.LastCompleted.String()
			last = &s
		}
		doc.ActiveHabits = append(doc.ActiveHabits, storage.HabitDoc{
			ID:                h.ID,
			Name:              h.Name,
			Icon:              h.Icon,
			ImpactKg:          &impact,
			Description:       h.Description,
			BasePoints:        &points,
			Streak:            h.Streak,
			LastCompletedDate: last,
			CompletedToday:    h.CompletedToday,
			WeeklyGoal:        &goal,
			WeeklyProgress:    &progress,
			IsCustom:          &custom,
		})
	}
	return doc
}

// reconcile maps a decoded document onto a GameState field by field, applying
// the default for every field that is absent or out of range.
func reconcile(doc storage.StateDoc) (GameState, error) {
	st := NewGameState()
	st.Points = nonNegative(doc.Points)
	st.Level = LevelForPoints(st.Points)
	st.LongestStreak = nonNegative(doc.LongestStreak)
	st.HabitsCompleted = nonNegative(doc.HabitsCompleted)
	if !math.IsNaN(doc.CarbonSaved) && doc.CarbonSaved > 0 {
		st.CarbonSaved = doc.CarbonSaved
	}
	st.WeeklyProgress = clamp(doc.WeeklyProgress, 0, MaxWeeklyProgress)

	switch {
	case doc.NextCustomHabitID != nil:
		st.NextCustomHabitID = *doc.NextCustomHabitID
	case doc.LegacyCustomHabitID != nil:
		st.NextCustomHabitID = *doc.LegacyCustomHabitID
	}

	seen := make(map[int]bool, len(doc.ActiveHabits))
	for i, hd := range doc.ActiveHabits {
		if seen[hd.ID] {
			continue
		}
		h, err := reconcileHabit(hd)
		if err != nil {
			return GameState{}, fmt.Errorf("habit %d (index %d): %w", hd.ID, i, err)
		}
		seen[hd.ID] = true
		st.ActiveHabits = append(st.ActiveHabits, h)

		if h.IsCustom && h.ID >= st.NextCustomHabitID {
			st.NextCustomHabitID = h.ID + 1
		}
	}
	if st.NextCustomHabitID < FirstCustomHabitID {
		st.NextCustomHabitID = FirstCustomHabitID
	}
	return st, nil
}

func reconcileHabit(hd storage.HabitDoc) (TrackedHabit, error) {
	h := TrackedHabit{
		HabitTemplate: catalog.HabitTemplate{
			ID:          hd.ID,
			Name:        hd.Name,
			Icon:        hd.Icon,
			Description: hd.Description,
		},
		Streak:         nonNegative(hd.Streak),
		CompletedToday: hd.CompletedToday,
		WeeklyGoal:     DefaultWeeklyGoal,
	}

	switch {
	case hd.ImpactKg != nil:
		h.ImpactKg = *hd.ImpactKg
	case hd.LegacyImpact != nil:
		h.ImpactKg = *hd.LegacyImpact
	}
	switch {
	case hd.BasePoints != nil:
		h.BasePoints = *hd.BasePoints
	case hd.LegacyPoints != nil:
		h.BasePoints = *hd.LegacyPoints
	}
	if hd.IsCustom != nil {
		h.IsCustom = *hd.IsCustom
	}

	// Catalog habits saved before a field existed take it from the template.
	if tpl, ok := catalog.Find(hd.ID); ok && !h.IsCustom {
		if h.Name == "" {
			h.Name = tpl.Name
		}
		if h.Icon == "" {
			h.Icon = tpl.Icon
		}
		if h.Description == "" {
			h.Description = tpl.Description
		}
		if h.ImpactKg <= 0 {
			h.ImpactKg = tpl.ImpactKg
		}
		if h.BasePoints <= 0 {
			h.BasePoints = tpl.BasePoints
		}
	}
	if math.IsNaN(h.ImpactKg) || h.ImpactKg <= 0 {
		h.ImpactKg = DefaultCustomImpactKg
	}
	if h.BasePoints <= 0 {
		h.BasePoints = DefaultCustomBasePoints
	}
	if h.Icon == "" {
		h.Icon = CustomHabitIcon
	}

	if hd.WeeklyGoal != nil && *hd.WeeklyGoal > 0 {
		h.WeeklyGoal = *hd.WeeklyGoal
	}
	if hd.WeeklyProgress != nil {
		h.WeeklyProgress = clamp(*hd.WeeklyProgress, 0, h.WeeklyGoal)
	}

	raw := hd.LastCompletedDate
	if raw == nil {
		raw = hd.LegacyLastCompleted
	}
	if raw != nil {
		day, err := ParseDay(*raw)
		if err != nil {
			return TrackedHabit{}, err
		}
		h.LastCompleted = day
	}
	if h.LastCompleted.IsZero() {
		h.CompletedToday = false
	}
	return h, nil
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
