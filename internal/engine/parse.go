package engine

import (
	"strconv"
	"strings"
)

// ParseCustomHabitInput converts raw form values. Unparseable numbers are treated as not supplied.
func ParseCustomHabitInput(name, impact, points string) CustomHabitInput {
	in := CustomHabitInput{Name: name}
	if v, err := strconv.ParseFloat(strings.TrimSpace(impact), 64); err == nil {
		in.ImpactKg = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(points)); err == nil {
		in.BasePoints = v
	}
	return in
}
