package engine

import (
	"math"
	"strings"

	"ecoquest/internal/catalog"
)

// CustomHabitInput describes a user-authored habit. Zero, negative or NaN
// values mean "not supplied" and fall back to the defaults.
type CustomHabitInput struct {
	Name       string
	ImpactKg   float64
	BasePoints int
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ValidationError{Field: "name", Reason: "habit name is required"}
	}
	return n, nil
}

// AdoptHabit starts tracking a catalog habit. Adopting an already tracked
// habit returns the state unchanged.
func AdoptHabit(st GameState, templateID int) (GameState, error) {
	tpl, ok := catalog.Find(templateID)
	if !ok {
		return st, NotFoundError{Kind: "template", ID: templateID}
	}
	if st.IsAdopted(templateID) {
		return st, nil
	}

	next := st.Clone()
	next.ActiveHabits = append(next.ActiveHabits, newTrackedHabit(tpl, false))
	return next, nil
}

// AdoptCustomHabit appends a user-authored habit and returns its id.
func AdoptCustomHabit(st GameState, in CustomHabitInput) (GameState, int, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return st, 0, err
	}

	impact := in.ImpactKg
	if math.IsNaN(impact) || math.IsInf(impact, 0) || impact <= 0 {
		impact = DefaultCustomImpactKg
	}
	points := in.BasePoints
	if points <= 0 {
		points = DefaultCustomBasePoints
	}

	next := st.Clone()
	id := next.NextCustomHabitID
	if id < FirstCustomHabitID {
		id = FirstCustomHabitID
	}
	// Hand-edited saves may already use the counter value.
	for next.IsAdopted(id) {
		id++
	}
	next.NextCustomHabitID = id + 1

	next.ActiveHabits = append(next.ActiveHabits, newTrackedHabit(catalog.HabitTemplate{
		ID:          id,
		Name:        name,
		Icon:        CustomHabitIcon,
		ImpactKg:    impact,
		Description: CustomHabitDescription,
		BasePoints:  points,
	}, true))
	return next, id, nil
}
