package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecoquest/internal/engine"
	"ecoquest/internal/ui"
)

func newDoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a habit for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			_, err := intArg(args, 0, "id")
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := intArg(args, 0, "id")
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteHabit(cmd.Context(), id)
			if res == nil {
				return err
			}
			out := cmd.OutOrStdout()
			h, _ := svc.State().Habit(id)
			if res.Status == engine.CompletionAlreadyDone {
				fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render("Already completed today!"), h.Icon, h.Name)
				return nil
			}

			fmt.Fprintf(out, "%s %s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), h.Icon, h.Name,
				ui.Muted.Render(fmt.Sprintf("(+%d pts · %.1f kg CO₂)", res.PointsAwarded, res.CarbonKg)))
			fmt.Fprintf(out, "%s %s\n", ui.LabelValue(ui.IconFire+" Streak", res.Streak),
				ui.LabelValue("Week", fmt.Sprintf("%d/%d", res.WeeklyProgress, res.WeeklyGoal)))
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.LevelBadge(res.LevelAfter, engine.LevelName(res.LevelAfter)))
			}
			return warnPersistence(cmd.ErrOrStderr(), err)
		},
	}

	return cmd
}
