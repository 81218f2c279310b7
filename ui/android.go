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

package ui

import (
	"fmt"
	"io"
)

// AndroidButton is the Android rendition of a Button.
type AndroidButton struct{}

func (b AndroidButton) OnClick(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s button: click\n", Android)
	return err
}

func (b AndroidButton) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s button: render\n", Android)
	return err
}

// AndroidCheckbox is the Android rendition of a Checkbox.
type AndroidCheckbox struct{}

func (c AndroidCheckbox) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s checkbox: render\n", Android)
	return err
}
