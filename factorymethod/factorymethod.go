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

// Package factorymethod demonstrates the Factory Method pattern.
//
// A Dialog declares one creation operation, CreateButton.  The shared
// template operation, Render, is defined once over the abstraction:
// it asks the Dialog for its Button and then drives that Button
// through a fixed click-then-render sequence.  Concrete dialogs
// contribute nothing except the binding of CreateButton to their
// platform's Button.
package factorymethod

import (
	"io"

	"github.com/BolisettySujith/Design-Patterns/ui"
)

// Dialog declares the factory method.
//
// CreateButton is total: it has no inputs and cannot fail.
type Dialog interface {
	CreateButton() ui.Button
}

// Render is the template operation, written once for every Dialog.
//
// It performs exactly two observable actions, in this order: the
// button's click notification, then its render.
func Render(d Dialog, w io.Writer) error {
	b := d.CreateButton()
	if err := b.OnClick(w); err != nil {
		return err
	}
	return b.Render(w)
}

// AndroidDialog binds CreateButton to Android's Button.
type AndroidDialog struct{}

func (d AndroidDialog) CreateButton() ui.Button {
	return ui.AndroidButton{}
}

// IOSDialog binds CreateButton to iOS's Button.
type IOSDialog struct{}

func (d IOSDialog) CreateButton() ui.Button {
	return ui.IOSButton{}
}

// DialogFor picks the concrete Dialog for a platform.
func DialogFor(p ui.Platform) (Dialog, error) {
	switch p {
	case ui.Android:
		return AndroidDialog{}, nil
	case ui.IOS:
		return IOSDialog{}, nil
	}
	return nil, &ui.UnsupportedPlatform{Name: string(p)}
}
