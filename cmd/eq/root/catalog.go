package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecoquest/internal/catalog"
	"ecoquest/internal/ui"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"list"},
		Short:   "List the habits you can adopt",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconLeaf, "Habit Catalog"))
			for _, t := range catalog.List() {
				mark := ""
				if st.IsAdopted(t.ID) {
					mark = " " + ui.Good.Render("[tracking]")
				}
				fmt.Fprintf(out, "%s %s %s%s\n", ui.Key.Render(fmt.Sprintf("#%d", t.ID)), t.Icon, t.Name, mark)
				fmt.Fprintf(out, "   %s\n", ui.Muted.Render(fmt.Sprintf("%s · %.1f kg CO₂ · %d pts", t.Description, t.ImpactKg, t.BasePoints)))
			}
			fmt.Fprintln(out, ui.Muted.Render("Adopt one with: eq adopt <id>"))
			return nil
		},
	}

	return cmd
}
