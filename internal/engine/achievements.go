package engine

// Achievement represents a badge the player can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements the player has earned.
type AchievementChecker struct {
	state GameState
}

func NewAchievementChecker(st GameState) *AchievementChecker {
	return &AchievementChecker{state: st}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		c.levelAchievement("green_warrior", "Green Warrior", "Reach level 2", "🌿", 2),
		c.levelAchievement("sustainability_hero", "Sustainability Hero", "Reach level 3", "🦸", 3),
		c.levelAchievement("eco_legend", "Eco Legend", "Reach level 6", "🌍", 6),

		// Completion milestones
		c.completionAchievement("first_step", "First Step", "Complete 1 habit", "✓", 1),
		c.completionAchievement("committed", "Committed", "Complete 10 habits", "📋", 10),
		c.completionAchievement("dedicated", "Dedicated", "Complete 50 habits", "🏅", 50),
		c.completionAchievement("unstoppable", "Unstoppable", "Complete 100 habits", "🏆", 100),

		// Carbon milestones
		c.carbonAchievement("carbon_cutter", "Carbon Cutter", "Save 10 kg CO₂", "🍃", 10),
		c.carbonAchievement("climate_ally", "Climate Ally", "Save 100 kg CO₂", "🌳", 100),

		// Streaks
		c.streakAchievement("week_streak", "Full Week", "Reach a 7-day streak", "🔥", 7),
		c.streakAchievement("month_streak", "Habit Formed", "Reach a 30-day streak", "💫", 30),

		c.customAchievement("inventor", "Inventor", "Track a custom habit", "🌱"),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	earned := LevelForPoints(c.state.Points) >= level
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) completionAchievement(id, name, desc, icon string, count int) Achievement {
	earned := c.state.HabitsCompleted >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) carbonAchievement(id, name, desc, icon string, kg float64) Achievement {
	earned := c.state.CarbonSaved >= kg
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	earned := c.state.LongestStreak >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) customAchievement(id, name, desc, icon string) Achievement {
	earned := false
	for _, h := range c.state.ActiveHabits {
		if h.IsCustom {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

// Achievements is a convenience function.
func Achievements(st GameState) []Achievement {
	return NewAchievementChecker(st).GetAchievements()
}
