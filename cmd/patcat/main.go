// Package main is a command-line utility for the pattern catalog.
//
//	patcat list
//	patcat html > patterns.html
//	patcat html factory-method
//	patcat yamltojson -p < catalog/patterns.yaml
//
// The PATTERNS_CATALOG and PATTERNS_DOCS environment variables
// override the default catalog/patterns.yaml and docs locations.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BolisettySujith/Design-Patterns/catalog"
	"github.com/BolisettySujith/Design-Patterns/tools"

	"github.com/jsccast/yaml"
)

func main() {

	if len(os.Args) < 2 {
		Usage()
		os.Exit(1)
	}

	catalogFile := os.Getenv("PATTERNS_CATALOG")
	if catalogFile == "" {
		catalogFile = "catalog/patterns.yaml"
	}
	docDir := os.Getenv("PATTERNS_DOCS")
	if docDir == "" {
		docDir = "docs"
	}

	switch os.Args[1] {
	case "list":
		c, err := catalog.Read(catalogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		for _, p := range c.Patterns {
			fmt.Printf("%-16s %-10s %-11s %s\n", p.Slug, p.Category, p.Status, p.Summary)
		}

	case "html":
		c, err := catalog.Read(catalogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		switch len(os.Args) {
		case 2:
			err = tools.RenderCatalogPage(c, docDir, os.Stdout, nil)
		case 3:
			p, have := c.Find(os.Args[2])
			if !have {
				fmt.Fprintf(os.Stderr, "error: unknown pattern \"%s\"\n", os.Args[2])
				os.Exit(1)
			}
			err = tools.RenderPatternHTML(p, docDir, os.Stdout)
		default:
			panic(fmt.Sprintf("unsupported args: %v", os.Args[1:]))
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	case "yamltojson":
		pretty := false

		switch len(os.Args) {
		case 2:
		case 3:
			switch os.Args[2] {
			case "-p":
				pretty = true
			default:
				panic(fmt.Sprintf("unsupported args: %v", os.Args[1:]))
			}
		default:
			panic(fmt.Sprintf("unsupported args: %v", os.Args[1:]))
		}

		bs, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		var c *catalog.Catalog
		if err = yaml.Unmarshal(bs, &c); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if pretty {
			bs, err = json.MarshalIndent(&c, "", "  ")
		} else {
			bs, err = json.Marshal(&c)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s\n", bs)

	default:
		Usage()
		os.Exit(1)
	}
}

func Usage() {
	fmt.Fprintf(os.Stderr, `patcat subcommands:

  list               print the catalog as a table
  html [SLUG]        render the catalog (or one pattern) as HTML
  yamltojson [-p]    convert catalog YAML on stdin to JSON

`)
}
