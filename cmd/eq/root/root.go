package root

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ecoquest/internal/config"
	"ecoquest/internal/logging"
	"ecoquest/internal/ui"
)

const Version = "0.1.0"

// app carries the global flags and what PersistentPreRunE builds from them.
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
	now func() time.Time
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "eq",
		Short:         "EcoQuest, a local-first eco habit tracker",
		Long:          "EcoQuest turns sustainable habits into a game: adopt habits, complete them daily, and watch your points, streaks and CO₂ savings grow.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.ecoquest/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite database path (default ~/.ecoquest.db)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newCatalogCmd(a),
		newAdoptCmd(a),
		newAddCmd(a),
		newRemoveCmd(a),
		newDoCmd(a),
		newGoalCmd(a),
		newStatusCmd(a),
		newImpactCmd(a),
		newTipCmd(a),
		newWeekResetCmd(a),
		newResetCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newBoardCmd(a),
	)
	return rootCmd
}

func (a *app) setup() error {
	path := a.configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("config loaded", zap.String("path", path), zap.String("slot", cfg.SlotKey))
	return nil
}

func Execute() {
	a := &app{now: time.Now}
	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
