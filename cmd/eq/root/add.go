package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ecoquest/internal/engine"
	"ecoquest/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	var impact string
	var points string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom habit",
		Long: `Add a custom habit and start tracking it.

Impact (kg CO₂ per completion) and points are optional. Missing, zero,
negative or unparseable values fall back to 1.0 kg and 15 points.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.ParseCustomHabitInput(strings.Join(args, " "), impact, points)
			h, err := svc.AdoptCustomHabit(cmd.Context(), in)
			if h.ID == 0 {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), h.Icon, h.Name,
				ui.Muted.Render(fmt.Sprintf("(#%d · %.1f kg CO₂ · %d pts)", h.ID, h.ImpactKg, h.BasePoints)))
			return warnPersistence(cmd.ErrOrStderr(), err)
		},
	}

	cmd.Flags().StringVarP(&impact, "impact", "i", "", "CO₂ saved per completion in kg (default 1.0)")
	cmd.Flags().StringVarP(&points, "points", "p", "", "Points per completion (default 15)")

	return cmd
}
