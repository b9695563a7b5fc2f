package storage

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentVersion is written into every saved document.
const DocumentVersion = 1

type Slot struct {
	Key       string
	Value     []byte
	PrevValue []byte
	UpdatedAt time.Time
}

// StateDoc is the persisted layout of the game state. Fields that were added
// after the first release are pointers so the decoder can tell "absent" from zero.
type StateDoc struct {
	Version           int        `json:"version,omitempty"`
	Points            int        `json:"points"`
	Level             int        `json:"level"`
	LongestStreak     int        `json:"longestStreak"`
	HabitsCompleted   int        `json:"habitsCompleted"`
	CarbonSaved       float64    `json:"carbonSaved"`
	WeeklyProgress    int        `json:"weeklyProgress"`
	NextCustomHabitID *int       `json:"nextCustomHabitId,omitempty"`
	ActiveHabits      []HabitDoc `json:"activeHabits"`

	// Browser saves used this name for the custom id counter.
	LegacyCustomHabitID *int `json:"customHabitId,omitempty"`
}

type HabitDoc struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Icon              string   `json:"icon,omitempty"`
	ImpactKg          *float64 `json:"impactKg,omitempty"`
	Description       string   `json:"description,omitempty"`
	BasePoints        *int     `json:"basePoints,omitempty"`
	Streak            int      `json:"streak"`
	LastCompletedDate *string  `json:"lastCompletedDate"`
	CompletedToday    bool     `json:"completedToday"`
	WeeklyGoal        *int     `json:"weeklyGoal,omitempty"`
	WeeklyProgress    *int     `json:"weeklyProgress,omitempty"`
	IsCustom          *bool    `json:"isCustom,omitempty"`

	// Browser save field names.
	LegacyImpact        *float64 `json:"impact,omitempty"`
	LegacyPoints        *int     `json:"points,omitempty"`
	LegacyLastCompleted *string  `json:"lastCompleted,omitempty"`
}

func MarshalDocument(doc StateDoc) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return data, nil
}

func UnmarshalDocument(data []byte) (StateDoc, error) {
	var doc StateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return StateDoc{}, fmt.Errorf("unmarshal state: %w", err)
	}
	return doc, nil
}
