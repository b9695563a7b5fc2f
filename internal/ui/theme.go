package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EcoQuest theme (CLI + TUI).

const (
	IconLeaf     = "🌿"
	IconSeedling = "🌱"
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconFire     = "🔥"
	IconCloud    = "☁️"
	IconTree     = "🌳"
	IconCar      = "🚗"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconTarget   = "🎯"
	IconBulb     = "💡"
	IconLoop     = "🔁"
)

var (
	cPrimary = lipgloss.Color("35")  // green
	cAccent  = lipgloss.Color("42")  // bright green
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cSky     = lipgloss.Color("39")  // blue
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Sky   = lipgloss.NewStyle().Bold(true).Foreground(cSky)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// LevelBadge renders "Lv N · Name".
func LevelBadge(level int, name string) string {
	return Gold.Render(fmt.Sprintf("Lv %d", level)) + " " + Muted.Render("·") + " " + H2.Render(name)
}

// Kg formats a CO2 amount with one decimal.
func Kg(v float64) string {
	return fmt.Sprintf("%.1f kg", v)
}

// Bar renders a fixed-width text progress bar for cur/max.
func Bar(cur, max, width int) string {
	if width <= 0 {
		return ""
	}
	if max <= 0 {
		return Muted.Render(strings.Repeat("░", width))
	}
	if cur < 0 {
		cur = 0
	}
	if cur > max {
		cur = max
	}
	filled := cur * width / max
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// DoneMark renders the today status of a habit.
func DoneMark(done bool) string {
	if done {
		return Good.Render("done")
	}
	return Warn.Render("todo")
}

func HabitIcon(icon string, custom bool) string {
	if strings.TrimSpace(icon) != "" {
		return icon
	}
	if custom {
		return IconSeedling
	}
	return IconLeaf
}
