package engine

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/storage"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	st := mustAdopt(t, NewGameState(), 1, 4, 8)
	var err error
	st, _, err = AdoptCustomHabit(st, CustomHabitInput{Name: "Bike to the market", ImpactKg: 1.7, BasePoints: 22})
	require.NoError(t, err)
	st, err = SetWeeklyGoal(st, 4, 3)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(11))
	start := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		today := DayOf(start.AddDate(0, 0, i))
		st = RolloverDay(st, today)
		for _, h := range st.ActiveHabits {
			if r.Intn(2) == 0 {
				st, _, err = CompleteHabit(st, h.ID, today)
				require.NoError(t, err)
			}
		}
	}
	st, _ = RemoveHabit(st, 8)

	data, err := EncodeState(st)
	require.NoError(t, err)
	require.NoError(t, storage.ValidateDocument(data))

	got, err := DecodeState(data)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(st, got, equateEmpty))
}

func TestRoundTripFreshState(t *testing.T) {
	data, err := EncodeState(NewGameState())
	require.NoError(t, err)

	got, err := DecodeState(data)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(NewGameState(), got, equateEmpty))
}

func TestEncodeUsesNormalizedLayout(t *testing.T) {
	st := mustAdopt(t, NewGameState(), 1)
	st, _, _ = CompleteHabit(st, 1, day1)

	data, err := EncodeState(st)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"points", "level", "longestStreak", "habitsCompleted", "carbonSaved", "weeklyProgress", "nextCustomHabitId", "activeHabits"} {
		assert.Contains(t, raw, key)
	}
	habits := raw["activeHabits"].([]any)
	require.Len(t, habits, 1)
	h := habits[0].(map[string]any)
	assert.Equal(t, "2026-10-12", h["lastCompletedDate"])
	for _, key := range []string{"id", "name", "icon", "impactKg", "description", "basePoints", "streak", "completedToday", "weeklyGoal", "weeklyProgress", "isCustom"} {
		assert.Contains(t, h, key)
	}
	assert.NotContains(t, h, "impact")
}

func TestDecodeAppliesDefaults(t *testing.T) {
	doc := `{
		"points": 230,
		"level": 1,
		"longestStreak": -2,
		"weeklyProgress": 12,
		"activeHabits": [
			{"id": 3, "name": "Turn off lights when leaving room", "streak": 2,
			 "lastCompletedDate": null, "completedToday": true},
			{"id": 1005, "name": "Homemade lunch", "basePoints": 0, "impactKg": -1,
			 "weeklyGoal": 2, "weeklyProgress": 9, "isCustom": true},
			{"id": 3, "name": "duplicate", "streak": 99}
		]
	}`
	st, err := DecodeState([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 3, st.Level, "level is derived from points")
	assert.Equal(t, 0, st.LongestStreak)
	assert.Equal(t, MaxWeeklyProgress, st.WeeklyProgress)
	assert.Equal(t, 1006, st.NextCustomHabitID)
	require.Len(t, st.ActiveHabits, 2)

	lights := st.ActiveHabits[0]
	assert.Equal(t, 2, lights.Streak)
	assert.Equal(t, 0, lights.WeeklyProgress)
	assert.Equal(t, DefaultWeeklyGoal, lights.WeeklyGoal)
	assert.False(t, lights.IsCustom)
	assert.False(t, lights.CompletedToday, "no completion date means not completed today")
	assert.Equal(t, 0.3, lights.ImpactKg, "catalog values fill missing fields")
	assert.Equal(t, 5, lights.BasePoints)
	assert.Equal(t, "💡", lights.Icon)

	lunch := st.ActiveHabits[1]
	assert.Equal(t, DefaultCustomBasePoints, lunch.BasePoints)
	assert.Equal(t, DefaultCustomImpactKg, lunch.ImpactKg)
	assert.Equal(t, 2, lunch.WeeklyProgress, "progress is clamped to the goal")
}

func TestDecodeLegacyCounterAndDates(t *testing.T) {
	doc := `{"customHabitId": 1004, "activeHabits": [
		{"id": 1, "name": "Use reusable water bottle", "impact": 0.5, "points": 10,
		 "lastCompleted": "Mon Oct 12 2026", "completedToday": true}
	]}`
	st, err := DecodeState([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1004, st.NextCustomHabitID)
	h := st.ActiveHabits[0]
	assert.Equal(t, day1, h.LastCompleted)
	assert.True(t, h.CompletedToday)

	rolled := RolloverDay(st, day2)
	assert.False(t, rolled.ActiveHabits[0].CompletedToday)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, doc := range []string{
		`{not json`,
		`{"activeHabits": [{"id": 1, "name": "x", "lastCompletedDate": "yesterday"}]}`,
		`{"points": "ten"}`,
	} {
		_, err := DecodeState([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, Day{Year: 2026, Month: time.October, Day: 17}, d)
	assert.Equal(t, "2026-10-17", d.String())
	assert.Equal(t, time.Saturday, d.Weekday())

	d, err = ParseDay("Sat Oct 17 2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17", d.String())

	d, err = ParseDay("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())

	_, err = ParseDay("17/10/2026")
	assert.Error(t, err)
}
