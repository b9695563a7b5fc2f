package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecoquest/internal/ui"
)

func newRemoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Stop tracking a habit",
		Long: `Stop tracking a habit.

Points, CO₂ savings and completion counts already earned are kept.
Removing a habit that is not tracked does nothing.`,
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

			before, _ := svc.State().Habit(id)
			removed, err := svc.RemoveHabit(cmd.Context(), id)
			if !removed {
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Not tracking habit #%d", id)))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render("Removed"), before.Icon, before.Name)
			return warnPersistence(cmd.ErrOrStderr(), err)
		},
	}

	return cmd
}
