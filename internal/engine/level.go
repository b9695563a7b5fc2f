package engine

// PointsPerLevel is the width of every level band.
const PointsPerLevel = 100

var levelNames = []string{
	"Eco Beginner",
	"Green Warrior",
	"Sustainability Hero",
	"Earth Guardian",
	"Climate Champion",
	"Eco Legend",
}

// LevelForPoints is floor(points/100) + 1. Negative points count as zero.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// PointsForLevel returns the points at which level starts.
func PointsForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * PointsPerLevel
}

// LevelName returns the title for a level. Levels past the last name keep the last name.
func LevelName(level int) string {
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i > len(levelNames)-1 {
		i = len(levelNames) - 1
	}
	return levelNames[i]
}

// LevelNames returns the ordered tier titles.
func LevelNames() []string {
	out := make([]string, len(levelNames))
	copy(out, levelNames)
	return out
}
