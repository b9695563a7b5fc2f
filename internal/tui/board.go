package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"ecoquest/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, tips *engine.TipProvider, out io.Writer) error {
	m := newBoardModel(ctx, svc, tips)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
