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

// Package main is a little command-line utility to run the pattern
// demos.
//
//	uidemo -demo factory-method -platform android
//	uidemo -demo all -seed 7 -record runs.json
//
// The platform comes from the -platform flag, or the PLATFORM
// environment variable (a .env file works too), or a seedable random
// two-way pick.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/BolisettySujith/Design-Patterns/demo"
	"github.com/BolisettySujith/Design-Patterns/trace"
	"github.com/BolisettySujith/Design-Patterns/ui"
	"github.com/BolisettySujith/Design-Patterns/util"

	"github.com/joho/godotenv"
)

type Opts struct {
	demoName string
	platform string
	seed     int64
	record   string
}

func main() {

	opts := &Opts{}
	flag.StringVar(&opts.demoName, "demo", "all", "demo to run (or 'all')")
	flag.StringVar(&opts.platform, "platform", "", "platform (android|ios); default: PLATFORM env or a random pick")
	flag.Int64Var(&opts.seed, "seed", 0, "seed for the random platform pick (0: current time)")
	flag.StringVar(&opts.record, "record", "", "append JSON run transcripts to this file")
	flag.BoolVar(&util.Verbose, "v", false, "verbosity")
	flag.Parse()

	if err := opts.run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (opts *Opts) run(out io.Writer) error {

	p, err := opts.pick()
	if err != nil {
		return err
	}

	var ds []demo.Demo
	if opts.demoName == "all" {
		ds = demo.Demos()
	} else {
		d, have := demo.Find(opts.demoName)
		if !have {
			return fmt.Errorf(`unknown demo "%s"`, opts.demoName)
		}
		ds = []demo.Demo{d}
	}

	var records io.WriteCloser
	if opts.record != "" {
		f, err := os.OpenFile(opts.record, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		records = f
		defer f.Close()
	}

	for _, d := range ds {
		fmt.Fprintf(out, "# %s on %s\n", d.Name, p)

		var w io.Writer = out
		var rec *trace.Recorder
		if records != nil {
			rec = trace.NewRecorder(d.Name, string(p), out)
			w = rec
		}

		if err := d.Run(p, w); err != nil {
			return err
		}

		if rec != nil {
			if err := rec.WriteJSON(records); err != nil {
				return err
			}
		}
	}

	return nil
}

// pick resolves the platform selection: flag, then environment, then
// a uniform two-way random draw.
func (opts *Opts) pick() (ui.Platform, error) {
	name := opts.platform
	if name == "" {
		// A .env file can supply PLATFORM.
		_ = godotenv.Load()
		name = os.Getenv("PLATFORM")
	}
	if name != "" {
		return ui.ParsePlatform(name)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	p := ui.RandomPlatform(r)
	util.Logf("random pick (seed %d): %s", seed, p)
	return p, nil
}
