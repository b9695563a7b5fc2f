package engine

import "math"

const (
	daysPerMonth = 30

	// KgCO2PerTree is roughly what one tree absorbs in a month of growth.
	KgCO2PerTree = 21.8

	// MilesPerKgCO2 is the car-miles equivalent of one kg of CO2.
	MilesPerKgCO2 = 2.4
)

// Impact projects today's completions over a month.
type Impact struct {
	TodayKg         float64
	MonthlyKg       float64
	TreesEquivalent int
	MilesEquivalent int
}

// ImpactFor sums the impact of the habits completed today.
func ImpactFor(st GameState) Impact {
	var today float64
	for _, h := range st.ActiveHabits {
		if h.CompletedToday {
			today += h.ImpactKg
		}
	}
	monthly := today * daysPerMonth
	return Impact{
		TodayKg:         today,
		MonthlyKg:       monthly,
		TreesEquivalent: int(math.Floor(monthly / KgCO2PerTree)),
		MilesEquivalent: int(math.Floor(monthly * MilesPerKgCO2)),
	}
}
