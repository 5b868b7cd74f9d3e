package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"

	appI18n "github.com/pavelanni/sharkquiz/internal/i18n"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Toggle key.Binding
	Next   key.Binding
	Quit   key.Binding
	Scroll key.Binding

	multi   bool
	summary bool
}

func newKeyMap(ctx context.Context) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", appI18n.T(ctx, "HelpMove")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", appI18n.T(ctx, "HelpSelect")),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", appI18n.T(ctx, "HelpToggle")),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", appI18n.T(ctx, "HelpNext")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", appI18n.T(ctx, "HelpQuit")),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", appI18n.T(ctx, "HelpScroll")),
		),
	}
}

// ShortHelp implements help.KeyMap for the current screen.
func (k keyMap) ShortHelp() []key.Binding {
	if k.summary {
		return []key.Binding{k.Scroll, k.Quit}
	}
	pick := k.Select
	if k.multi {
		pick = k.Toggle
	}
	return []key.Binding{k.Up, pick, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
