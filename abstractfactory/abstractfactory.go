/* Copyright 2024 BolisettySujith
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package abstractfactory demonstrates the Abstract Factory pattern.
//
// A UIFactory manufactures a family of products.  The family
// invariant is the entire point: a concrete factory's CreateButton
// and CreateCheckbox always return products tagged with the same
// platform, so a caller holding a UIFactory can never end up with a
// mixed Android/iOS pair.  Nothing in the type system enforces the
// invariant; the tests do.
package abstractfactory

import (
	"io"

	"github.com/BolisettySujith/Design-Patterns/ui"
)

// UIFactory manufactures one platform's product family.
//
// Both operations are total: no inputs, no failures.
type UIFactory interface {
	CreateButton() ui.Button
	CreateCheckbox() ui.Checkbox
}

// AndroidUIFactory produces the Android family.
type AndroidUIFactory struct{}

func (f AndroidUIFactory) CreateButton() ui.Button {
	return ui.AndroidButton{}
}

func (f AndroidUIFactory) CreateCheckbox() ui.Checkbox {
	return ui.AndroidCheckbox{}
}

// IOSUIFactory produces the iOS family.
type IOSUIFactory struct{}

func (f IOSUIFactory) CreateButton() ui.Button {
	return ui.IOSButton{}
}

func (f IOSUIFactory) CreateCheckbox() ui.Checkbox {
	return ui.IOSCheckbox{}
}

// For picks the concrete factory for a platform.
func For(p ui.Platform) (UIFactory, error) {
	switch p {
	case ui.Android:
		return AndroidUIFactory{}, nil
	case ui.IOS:
		return IOSUIFactory{}, nil
	}
	return nil, &ui.UnsupportedPlatform{Name: string(p)}
}

// RenderAll renders one of each product in the factory's family.
//
// Each product appears exactly once.  The button-before-checkbox
// order is this function's choice, not part of the pattern.
func RenderAll(f UIFactory, w io.Writer) error {
	if err := f.CreateButton().Render(w); err != nil {
		return err
	}
	return f.CreateCheckbox().Render(w)
}
