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

// Package ui provides the product abstractions that the creational
// pattern packages manufacture.
//
// Products here are deliberately thin: they hold no state, and each
// operation writes exactly one descriptive line naming the platform
// and the product kind.  That line is the entire observable behavior,
// so writing it to a caller-supplied io.Writer keeps every pattern
// demo testable.
package ui

import (
	"io"
)

// Button is a clickable control.
//
// Every Button produced by a concrete factory in this collection is
// tagged with that factory's platform, and its output lines say so.
type Button interface {
	// OnClick reports a click on the button.
	OnClick(w io.Writer) error

	// Render draws the button.
	Render(w io.Writer) error
}

// Checkbox is a togglable control.
type Checkbox interface {
	// Render draws the checkbox.
	Render(w io.Writer) error
}
