package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BolisettySujith/Design-Patterns/trace"

	json "github.com/goccy/go-json"
)

func TestRunAll(t *testing.T) {
	opts := &Opts{
		demoName: "all",
		platform: "android",
	}

	var out bytes.Buffer
	if err := opts.run(&out); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{
		"# factory-method on android\n",
		"android button: click\nandroid button: render\n",
		"# abstract-factory on android\n",
		"android checkbox: render\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunRecords(t *testing.T) {
	dir := t.TempDir()
	opts := &Opts{
		demoName: "factory-method",
		platform: "ios",
		record:   filepath.Join(dir, "runs.json"),
	}

	var out bytes.Buffer
	if err := opts.run(&out); err != nil {
		t.Fatal(err)
	}

	// Recording must not change what the demo prints.
	if !strings.Contains(out.String(), "ios button: click\nios button: render\n") {
		t.Fatalf("output:\n%s", out.String())
	}

	f, err := os.Open(opts.record)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines := 0
	in := bufio.NewScanner(f)
	for in.Scan() {
		var run trace.Run
		if err := json.Unmarshal(in.Bytes(), &run); err != nil {
			t.Fatal(err)
		}
		if run.Demo != "factory-method" || run.Platform != "ios" {
			t.Fatalf("bad record: %#v", run)
		}
		if len(run.Steps) != 2 {
			t.Fatalf("steps: %#v", run.Steps)
		}
		lines++
	}
	if err := in.Err(); err != nil {
		t.Fatal(err)
	}
	if lines != 1 {
		t.Fatalf("%d records", lines)
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("unknownDemo", func(t *testing.T) {
		opts := &Opts{demoName: "flyweight", platform: "ios"}
		if err := opts.run(&bytes.Buffer{}); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("unsupportedPlatform", func(t *testing.T) {
		opts := &Opts{demoName: "all", platform: "symbian"}
		if err := opts.run(&bytes.Buffer{}); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestPickSeeded(t *testing.T) {
	// Same seed, same pick.
	a := &Opts{seed: 17}
	b := &Opts{seed: 17}
	pa, err := a.pick()
	if err != nil {
		t.Fatal(err)
	}
	pb, err := b.pick()
	if err != nil {
		t.Fatal(err)
	}
	if pa != pb {
		t.Fatalf("%s != %s", pa, pb)
	}
}
