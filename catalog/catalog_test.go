package catalog

import (
	"testing"
)

func TestReadCatalog(t *testing.T) {
	c, err := Read("patterns.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Patterns) < 4 {
		t.Fatalf("only %d patterns", len(c.Patterns))
	}

	p, have := c.Find("factory-method")
	if !have {
		t.Fatal("no factory-method entry")
	}
	if p.Status != Implemented {
		t.Fatalf("factory-method status %s", p.Status)
	}
	if p.Doc == "" {
		t.Fatal("factory-method has no doc")
	}

	for _, p := range c.Implemented() {
		if p.Status != Implemented {
			t.Fatalf("Implemented() returned %s (%s)", p.Slug, p.Status)
		}
	}
}

func TestValidate(t *testing.T) {
	parse := func(t *testing.T, yml string) error {
		t.Helper()
		_, err := Parse([]byte(yml))
		return err
	}

	t.Run("unknownCategory", func(t *testing.T) {
		err := parse(t, `
patterns:
  - {name: X, slug: x, category: magical, status: planned}
`)
		if _, is := err.(*UnknownCategory); !is {
			t.Fatalf("wanted *UnknownCategory; got %#v", err)
		}
	})

	t.Run("unknownStatus", func(t *testing.T) {
		err := parse(t, `
patterns:
  - {name: X, slug: x, category: creational, status: someday}
`)
		if _, is := err.(*UnknownStatus); !is {
			t.Fatalf("wanted *UnknownStatus; got %#v", err)
		}
	})

	t.Run("duplicateSlug", func(t *testing.T) {
		err := parse(t, `
patterns:
  - {name: X, slug: x, category: creational, status: planned}
  - {name: Y, slug: x, category: creational, status: planned}
`)
		if _, is := err.(*DuplicateSlug); !is {
			t.Fatalf("wanted *DuplicateSlug; got %#v", err)
		}
	})

	t.Run("incomplete", func(t *testing.T) {
		err := parse(t, `
patterns:
  - {name: X, category: creational, status: planned}
`)
		if _, is := err.(*IncompletePattern); !is {
			t.Fatalf("wanted *IncompletePattern; got %#v", err)
		}
	})
}
