package root

import (
	"github.com/spf13/cobra"

	"ecoquest/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			tips, err := a.tipProvider()
			if err != nil {
				return err
			}
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(cmd.Context(), svc, tips, cmd.OutOrStdout())
		},
	}

	return cmd
}
