package abstractfactory

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BolisettySujith/Design-Patterns/ui"
)

func TestFamilyConsistency(t *testing.T) {
	// Every product out of one factory carries that factory's
	// platform tag; a family is never mixed.
	for _, p := range ui.Platforms {
		p := p
		t.Run(string(p), func(t *testing.T) {
			f, err := For(p)
			if err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			if err := RenderAll(f, &buf); err != nil {
				t.Fatal(err)
			}

			other := ui.Android
			if p == ui.Android {
				other = ui.IOS
			}
			for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
				if !strings.HasPrefix(line, string(p)+" ") {
					t.Fatalf("line %q isn't tagged %s", line, p)
				}
				if strings.Contains(line, string(other)) {
					t.Fatalf("line %q mixes in %s", line, other)
				}
			}
		})
	}
}

func TestRenderAllIOS(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderAll(IOSUIFactory{}, &buf); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	for _, want := range []string{"ios button: render\n", "ios checkbox: render\n"} {
		if strings.Count(got, want) != 1 {
			t.Fatalf("%q appears %d times in %q", want, strings.Count(got, want), got)
		}
	}
}

func TestForUnsupported(t *testing.T) {
	if _, err := For(ui.Platform("webos")); err == nil {
		t.Fatal("expected an error")
	} else if _, is := err.(*ui.UnsupportedPlatform); !is {
		t.Fatalf("wanted *ui.UnsupportedPlatform; got %T", err)
	}
}
