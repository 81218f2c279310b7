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

// Package demo is the registry of runnable pattern demos.
//
// Each demo is a single linear sequence of calls against one
// platform's factory, writing its observable behavior to the given
// io.Writer.  No demo keeps state between runs.
package demo

import (
	"io"

	"github.com/BolisettySujith/Design-Patterns/abstractfactory"
	"github.com/BolisettySujith/Design-Patterns/builder"
	"github.com/BolisettySujith/Design-Patterns/factorymethod"
	"github.com/BolisettySujith/Design-Patterns/simplefactory"
	"github.com/BolisettySujith/Design-Patterns/ui"
	"github.com/BolisettySujith/Design-Patterns/util"
)

// Demo is one runnable pattern demonstration.
type Demo struct {
	// Name is the demo's catalog slug.
	Name string

	// Run executes the demo for the given platform.
	Run func(p ui.Platform, w io.Writer) error
}

var demos = []Demo{
	{
		Name: "factory-method",
		Run: func(p ui.Platform, w io.Writer) error {
			d, err := factorymethod.DialogFor(p)
			if err != nil {
				return err
			}
			util.Logf("factory-method: using %T", d)
			return factorymethod.Render(d, w)
		},
	},
	{
		Name: "abstract-factory",
		Run: func(p ui.Platform, w io.Writer) error {
			f, err := abstractfactory.For(p)
			if err != nil {
				return err
			}
			util.Logf("abstract-factory: using %T", f)
			return abstractfactory.RenderAll(f, w)
		},
	},
	{
		Name: "builder",
		Run: func(p ui.Platform, w io.Writer) error {
			b, err := builder.BuilderFor(p)
			if err != nil {
				return err
			}
			d := &builder.Director{B: b}
			return d.Construct().Render(w)
		},
	},
	{
		Name: "simple-factory",
		Run: func(p ui.Platform, w io.Writer) error {
			for _, kind := range []string{simplefactory.KindButton, simplefactory.KindCheckbox} {
				c, err := simplefactory.NewControl(p, kind)
				if err != nil {
					return err
				}
				if err := c.Render(w); err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// Demos returns every registered demo, in a fixed order.
func Demos() []Demo {
	ds := make([]Demo, len(demos))
	copy(ds, demos)
	return ds
}

// Find returns the demo with the given name, if any.
func Find(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
