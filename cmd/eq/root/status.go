package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecoquest/internal/engine"
	"ecoquest/internal/ui"
)

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, totals, tracked habits and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()
			nextAt := engine.PointsForLevel(st.Level + 1)

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Eco Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", ui.LevelBadge(st.Level, engine.LevelName(st.Level))))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d (next level at %d, %d to go)", st.Points, nextAt, nextAt-st.Points)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconCloud+" CO₂ saved", ui.Kg(st.CarbonSaved)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconDone+" Habits completed", st.HabitsCompleted))
			fmt.Fprintln(out, ui.LabelValue(ui.IconFire+" Longest streak", st.LongestStreak))
			fmt.Fprintln(out, ui.LabelValue(ui.IconTarget+" This week", fmt.Sprintf("%s %d/%d", ui.Bar(st.WeeklyProgress, engine.MaxWeeklyProgress, 7), st.WeeklyProgress, engine.MaxWeeklyProgress)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconLoop+" Habits"))
			if len(st.ActiveHabits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none yet: eq catalog, then eq adopt <id>)"))
			}
			for _, h := range st.ActiveHabits {
				fmt.Fprintf(out, "- %s %s %s %s %s %s\n",
					ui.Key.Render(fmt.Sprintf("#%d", h.ID)),
					ui.HabitIcon(h.Icon, h.IsCustom), h.Name,
					ui.DoneMark(h.CompletedToday),
					ui.Muted.Render(fmt.Sprintf("%s %d", ui.IconFire, h.Streak)),
					ui.Muted.Render(fmt.Sprintf("week %d/%d", h.WeeklyProgress, h.WeeklyGoal)),
				)
			}
			fmt.Fprintln(out, "")

			checker := engine.NewAchievementChecker(st)
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			for _, ach := range checker.GetAchievements() {
				if ach.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", ach.Icon, ui.Gold.Render(ach.Name), ui.Muted.Render(ach.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
