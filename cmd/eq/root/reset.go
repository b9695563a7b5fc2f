package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecoquest/internal/ui"
)

func newWeekResetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week-reset",
		Short: "Start a new week (zero all weekly progress)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			err = svc.ResetWeeklyProgress(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconLoop+" New week started"))
			return warnPersistence(cmd.ErrOrStderr(), err)
		},
	}

	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all habits and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases all progress; re-run with --yes to confirm")
			}
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			err = svc.ResetAll(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render("Progress erased."), ui.Muted.Render("The previous save is kept as a backup until the next change."))
			return warnPersistence(cmd.ErrOrStderr(), err)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
