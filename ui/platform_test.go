package ui

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestParsePlatform(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		for _, name := range []string{"android", "Android", "ios", "iOS", "IOS"} {
			p, err := ParsePlatform(name)
			if err != nil {
				t.Fatal(err)
			}
			if p != Android && p != IOS {
				t.Fatalf("parsed %s to %s", name, p)
			}
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := ParsePlatform("symbian")
		if err == nil {
			t.Fatal("expected an error")
		}
		up, is := err.(*UnsupportedPlatform)
		if !is {
			t.Fatalf("wanted *UnsupportedPlatform; got %T", err)
		}
		if !strings.Contains(up.Error(), "symbian") {
			t.Fatalf("error %s doesn't name the platform", up.Error())
		}
	})
}

func TestRandomPlatform(t *testing.T) {
	// A two-outcome draw should hit both platforms and nothing
	// else.
	r := rand.New(rand.NewSource(42))
	seen := make(map[Platform]int)
	for i := 0; i < 100; i++ {
		seen[RandomPlatform(r)]++
	}
	if len(seen) != 2 {
		t.Fatalf("saw %d platforms", len(seen))
	}
	if seen[Android] == 0 || seen[IOS] == 0 {
		t.Fatalf("lopsided draws: %v", seen)
	}
}

func TestProductOutput(t *testing.T) {
	var buf bytes.Buffer

	if err := (AndroidButton{}).OnClick(&buf); err != nil {
		t.Fatal(err)
	}
	if err := (AndroidButton{}).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if err := (IOSCheckbox{}).Render(&buf); err != nil {
		t.Fatal(err)
	}

	want := "android button: click\nandroid button: render\nios checkbox: render\n"
	if buf.String() != want {
		t.Fatalf("got %q; wanted %q", buf.String(), want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	// Rendering twice must produce the same line twice: products
	// are stateless, so nothing accumulates.
	var buf bytes.Buffer
	b := IOSButton{}
	if err := b.Render(&buf); err != nil {
		t.Fatal(err)
	}
	first := buf.String()
	if err := b.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != first+first {
		t.Fatalf("second render changed the output: %q", buf.String())
	}
}
