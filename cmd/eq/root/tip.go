package root

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"ecoquest/internal/engine"
	"ecoquest/internal/ui"
)

func (a *app) tipProvider() (*engine.TipProvider, error) {
	return engine.LoadTipProvider(a.cfg.TipsFile)
}

func newTipCmd(a *app) *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Show the eco tip of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			tips, err := a.tipProvider()
			if err != nil {
				return err
			}
			tip := tips.ForDay(a.now().Weekday())
			if random {
				tip = tips.Random(rand.New(rand.NewSource(a.now().UnixNano())))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Sky.Render(ui.IconBulb+" Tip:"), tip)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&random, "random", "r", false, "Pick a random tip instead of today's")

	return cmd
}
