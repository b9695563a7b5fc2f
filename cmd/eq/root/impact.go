package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecoquest/internal/engine"
	"ecoquest/internal/ui"
)

func newImpactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Project today's completions over a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			imp := engine.ImpactFor(svc.State())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCloud, "Your Impact"))
			fmt.Fprintln(out, ui.LabelValue("Today", ui.Kg(imp.TodayKg)))
			fmt.Fprintln(out, ui.LabelValue("Per month at this pace", ui.Kg(imp.MonthlyKg)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconTree+" Trees", fmt.Sprintf("%d trees' monthly absorption", imp.TreesEquivalent)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconCar+" Driving", fmt.Sprintf("%d miles not driven", imp.MilesEquivalent)))
			return nil
		},
	}

	return cmd
}
