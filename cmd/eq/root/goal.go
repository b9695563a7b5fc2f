package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecoquest/internal/engine"
	"ecoquest/internal/ui"
)

func newGoalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal <id> <days>",
		Short: "Set a habit's weekly goal (1-7 days)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("id and days are required")
			}
			if _, err := intArg(args, 0, "id"); err != nil {
				return err
			}
			_, err := intArg(args, 1, "days")
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := intArg(args, 0, "id")
			goal, _ := intArg(args, 1, "days")
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			err = svc.SetWeeklyGoal(cmd.Context(), id, goal)
			var perr *engine.PersistenceError
			if err != nil && !errors.As(err, &perr) {
				return err
			}
			h, _ := svc.State().Habit(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render(ui.IconTarget+" Goal set"), h.Icon, h.Name,
				ui.Muted.Render(fmt.Sprintf("(%d/%d this week)", h.WeeklyProgress, h.WeeklyGoal)))
			return warnPersistence(cmd.ErrOrStderr(), err)
		},
	}

	return cmd
}
