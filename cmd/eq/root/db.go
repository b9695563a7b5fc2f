package root

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ecoquest/internal/engine"
	"ecoquest/internal/storage"
	"ecoquest/internal/ui"
)

func (a *app) openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug("database opened", zap.String("path", path))
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService opens the database and loads the saved game. A slot that
// cannot be read stops the command so nothing is written over it.
func (a *app) openService(cmd *cobra.Command) (*engine.Service, func(), error) {
	ctx := cmd.Context()
	db, cleanup, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db,
		engine.WithLogger(a.log),
		engine.WithSlotKey(a.cfg.SlotKey),
		engine.WithClock(a.now),
	)
	if err := svc.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("cannot read saved game (nothing was changed): %w", err)
	}
	return svc, cleanup, nil
}

// warnPersistence prints a failed save as a warning and swallows it. The
// command's change already happened in memory. Other errors are returned unchanged.
func warnPersistence(w io.Writer, err error) error {
	var perr *engine.PersistenceError
	if !errors.As(err, &perr) || errors.Is(err, engine.ErrSlotUnreadable) {
		return err
	}
	fmt.Fprintf(w, "%s %s\n", ui.Warn.Render(ui.IconWarn+" Progress not saved:"), perr.Err)
	return nil
}
