package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ecoquest/internal/ui"
)

func intArg(args []string, i int, name string) (int, error) {
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func newAdoptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adopt <template_id>",
		Short: "Start tracking a habit from the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("template_id is required")
			}
			_, err := intArg(args, 0, "template_id")
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := intArg(args, 0, "template_id")
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if h, ok := svc.State().Habit(id); ok && !h.IsCustom {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Muted.Render("Already tracking"), h.Icon, h.Name)
				return nil
			}

			h, err := svc.AdoptHabit(cmd.Context(), id)
			if h.ID == 0 {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render(ui.IconPlus+" Adopted"), h.Icon, h.Name, ui.Muted.Render(fmt.Sprintf("(#%d)", h.ID)))
			return warnPersistence(cmd.ErrOrStderr(), err)
		},
	}

	return cmd
}
