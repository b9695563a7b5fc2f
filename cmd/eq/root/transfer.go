package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecoquest/internal/storage"
	"ecoquest/internal/ui"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the saved game to a file (plain JSON for .json, zstd otherwise)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := svc.Export()
			if err != nil {
				return err
			}
			if err := storage.WriteArchiveFile(args[0], data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Exported to"), args[0])
			return nil
		},
	}

	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the saved game with an archive or a plain .json save",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := storage.ReadArchiveFile(args[0])
			if err != nil {
				return err
			}
			svc, cleanup, err := a.openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			err = svc.Import(cmd.Context(), data)
			if err := warnPersistence(cmd.ErrOrStderr(), err); err != nil {
				return err
			}
			st := svc.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Imported"),
				ui.Muted.Render(fmt.Sprintf("(%d habits, %d points)", len(st.ActiveHabits), st.Points)))
			return nil
		},
	}

	return cmd
}
