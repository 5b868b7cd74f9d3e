package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

// Options configures the terminal program.
type Options struct {
	AltScreen bool
}

// Run shows the quiz until the user quits and returns the final model.
func Run(ctx context.Context, m *Model, opts Options) (*Model, error) {
	// Seed a size so the first frame renders before WindowSizeMsg arrives.
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		m.resize(w, h)
	} else {
		m.resize(80, 24)
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return m, fmt.Errorf("run quiz: %w", err)
	}
	fm, ok := final.(*Model)
	if !ok {
		return m, fmt.Errorf("unexpected final model %T", final)
	}
	return fm, nil
}
