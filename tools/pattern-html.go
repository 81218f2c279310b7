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

// Package tools renders the collection's catalog and write-ups as
// HTML.
package tools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BolisettySujith/Design-Patterns/catalog"

	md "github.com/russross/blackfriday/v2"
)

// RenderPatternHTML writes one pattern's section: heading, metadata,
// summary, and the markdown write-up (if any) rendered to HTML.
func RenderPatternHTML(p *catalog.Pattern, docDir string, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<div class="pattern" id="%s">`, p.Slug)
	f(`<h2>%s</h2>`, p.Name)
	f(`<div class="meta"><span class="category">%s</span> <span class="status">%s</span></div>`,
		p.Category, p.Status)
	if p.Summary != "" {
		f(`<p class="summary">%s</p>`, p.Summary)
	}
	if p.Doc != "" {
		bs, err := os.ReadFile(filepath.Join(docDir, p.Doc))
		if err != nil {
			return err
		}
		f(`<div class="patternDoc doc">%s</div>`, md.Run(bs))
	}
	f(`</div>`)

	return nil
}

// RenderCatalogPage writes a complete HTML page for the whole
// catalog: a table of contents, then one section per pattern.
func RenderCatalogPage(c *catalog.Catalog, docDir string, out io.Writer, cssFiles []string) error {

	if cssFiles == nil {
		cssFiles = []string{"/static/patterns.css"}
	}

	fmt.Fprintf(out, `<!DOCTYPE html>
<meta charset="utf-8">
<html>
  <head>
  <title>Design Patterns</title>
`)

	for _, cssFile := range cssFiles {
		fmt.Fprintf(out, "  <link href=\"%s\" rel=\"stylesheet\">\n", cssFile)
	}

	fmt.Fprintf(out, `
  </head>
  <body>
    <h1>Design Patterns</h1>
`)

	{ // Table of contents
		fmt.Fprintf(out, `<ul class="toc">`+"\n")
		for _, p := range c.Patterns {
			fmt.Fprintf(out, `  <li><a href="#%s">%s</a> (%s)</li>`+"\n", p.Slug, p.Name, p.Status)
		}
		fmt.Fprintf(out, `</ul>`+"\n")
	}

	for _, p := range c.Patterns {
		if err := RenderPatternHTML(p, docDir, out); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, `
  </body>
</html>
`)

	return nil
}

// ReadAndRenderCatalogPage loads a catalog file and renders the whole
// page.
func ReadAndRenderCatalogPage(filename, docDir string, cssFiles []string, out io.Writer) error {
	c, err := catalog.Read(filename)
	if err != nil {
		return err
	}
	return RenderCatalogPage(c, docDir, out, cssFiles)
}
