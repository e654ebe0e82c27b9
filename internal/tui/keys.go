package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	login   key.Binding
	logout  key.Binding
	copy    key.Binding
	fav     key.Binding
	inquiry key.Binding
	newItem key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	login:   key.NewBinding(key.WithKeys("p")),
	logout:  key.NewBinding(key.WithKeys("o")),
	copy:    key.NewBinding(key.WithKeys("c")),
	fav:     key.NewBinding(key.WithKeys("f")),
	inquiry: key.NewBinding(key.WithKeys("i")),
	newItem: key.NewBinding(key.WithKeys("n")),
}
