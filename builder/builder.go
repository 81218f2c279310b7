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

// Package builder demonstrates the Builder pattern.
//
// A Director runs the same fixed construction sequence against any
// Builder; the Builder decides what each step contributes.  Here the
// product is a login Form whose wording differs per platform.
package builder

import (
	"fmt"
	"io"

	"github.com/BolisettySujith/Design-Patterns/ui"
)

// Form is the product under construction.
type Form struct {
	Platform ui.Platform
	Title    string
	Body     string
	Submit   string
}

// Render writes a one-line description of the form.
func (f *Form) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s form: %s / %s [%s]\n", f.Platform, f.Title, f.Body, f.Submit)
	return err
}

// Builder contributes one construction step at a time.  Form returns
// the accumulated product.
type Builder interface {
	Title()
	Body()
	Submit()
	Form() *Form
}

// Director drives a Builder through the fixed build sequence.
type Director struct {
	B Builder
}

// Construct runs title, body, submit, in that order, and collects the
// result.
func (d *Director) Construct() *Form {
	d.B.Title()
	d.B.Body()
	d.B.Submit()
	return d.B.Form()
}

// AndroidFormBuilder builds the Android login form.
type AndroidFormBuilder struct {
	form *Form
}

func NewAndroidFormBuilder() *AndroidFormBuilder {
	return &AndroidFormBuilder{form: &Form{Platform: ui.Android}}
}

func (b *AndroidFormBuilder) Title() {
	b.form.Title = "Sign in with Google"
}

func (b *AndroidFormBuilder) Body() {
	b.form.Body = "Use your Google Account"
}

func (b *AndroidFormBuilder) Submit() {
	b.form.Submit = "NEXT"
}

func (b *AndroidFormBuilder) Form() *Form {
	return b.form
}

// IOSFormBuilder builds the iOS login form.
type IOSFormBuilder struct {
	form *Form
}

func NewIOSFormBuilder() *IOSFormBuilder {
	return &IOSFormBuilder{form: &Form{Platform: ui.IOS}}
}

func (b *IOSFormBuilder) Title() {
	b.form.Title = "Sign in with Apple"
}

func (b *IOSFormBuilder) Body() {
	b.form.Body = "Use your Apple ID"
}

func (b *IOSFormBuilder) Submit() {
	b.form.Submit = "Continue"
}

func (b *IOSFormBuilder) Form() *Form {
	return b.form
}

// BuilderFor picks the concrete Builder for a platform.
func BuilderFor(p ui.Platform) (Builder, error) {
	switch p {
	case ui.Android:
		return NewAndroidFormBuilder(), nil
	case ui.IOS:
		return NewIOSFormBuilder(), nil
	}
	return nil, &ui.UnsupportedPlatform{Name: string(p)}
}
