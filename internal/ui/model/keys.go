package model

import "charm.land/bubbles/v2/key"

type KeyMap struct {
	List struct {
		UpDown   key.Binding
		Up       key.Binding
		Down     key.Binding
		PageUp   key.Binding
		PageDown key.Binding
		Home     key.Binding
		End      key.Binding

		// Jumps far enough to make the whole pool move at once.
		JumpBack    key.Binding
		JumpForward key.Binding
	}

	Scroller struct {
		ToggleLoop      key.Binding
		ToggleDirection key.Binding
		Initialize      key.Binding
		Reinitialize    key.Binding
		Refresh         key.Binding
		Clear           key.Binding
		Copy            key.Binding
	}

	// Global key maps
	Quit key.Binding
	Help key.Binding
}

func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g", "?"),
			key.WithHelp("?", "more"),
		),
	}

	km.List.UpDown = key.NewBinding(
		key.WithKeys("up", "down"),
		key.WithHelp("↑↓", "scroll"),
	)
	km.List.Up = key.NewBinding(
		key.WithKeys("up", "k", "left", "h"),
		key.WithHelp("↑/k", "scroll back"),
	)
	km.List.Down = key.NewBinding(
		key.WithKeys("down", "j", "right", "l"),
		key.WithHelp("↓/j", "scroll forward"),
	)
	km.List.PageUp = key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("b/pgup", "page back"),
	)
	km.List.PageDown = key.NewBinding(
		key.WithKeys("pgdown", "space", "f"),
		key.WithHelp("f/pgdn", "page forward"),
	)
	km.List.Home = key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first item"),
	)
	km.List.End = key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last item"),
	)
	km.List.JumpBack = key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "jump back"),
	)
	km.List.JumpForward = key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "jump forward"),
	)

	km.Scroller.ToggleLoop = key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "toggle loop"),
	)
	km.Scroller.ToggleDirection = key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle direction"),
	)
	km.Scroller.Initialize = key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "initialize"),
	)
	km.Scroller.Reinitialize = key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reinitialize"),
	)
	km.Scroller.Refresh = key.NewBinding(
		key.WithKeys("r", "ctrl+r"),
		key.WithHelp("r", "refresh"),
	)
	km.Scroller.Clear = key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear"),
	)
	km.Scroller.Copy = key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy clicked"),
	)

	return km
}
