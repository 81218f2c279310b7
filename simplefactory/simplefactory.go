// Package simplefactory demonstrates the Simple Factory pattern: one
// function keyed by a string picks the concrete product.
//
// Unlike the factory method and abstract factory demos, the creation
// operation here can fail: an unknown kind is an UnknownKind error,
// and an unknown platform an ui.UnsupportedPlatform.
package simplefactory

import (
	"io"

	"github.com/BolisettySujith/Design-Patterns/ui"
)

// Control is anything the factory can make.  Both ui.Button and
// ui.Checkbox satisfy it.
type Control interface {
	Render(w io.Writer) error
}

// Kinds the factory knows about.
const (
	KindButton   = "button"
	KindCheckbox = "checkbox"
)

// UnknownKind occurs when NewControl is asked for a kind of control
// that doesn't exist.
type UnknownKind struct {
	Kind string
}

func (e *UnknownKind) Error() string {
	return `unknown control kind "` + e.Kind + `"`
}

// NewControl makes the platform's rendition of the given kind of
// control.
func NewControl(p ui.Platform, kind string) (Control, error) {
	switch kind {
	case KindButton, KindCheckbox:
	default:
		return nil, &UnknownKind{Kind: kind}
	}

	switch p {
	case ui.Android:
		if kind == KindButton {
			return ui.AndroidButton{}, nil
		}
		return ui.AndroidCheckbox{}, nil
	case ui.IOS:
		if kind == KindButton {
			return ui.IOSButton{}, nil
		}
		return ui.IOSCheckbox{}, nil
	}

	return nil, &ui.UnsupportedPlatform{Name: string(p)}
}
