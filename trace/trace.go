// Package trace records demo runs.
//
// A Recorder sits between a demo and its output: bytes pass through
// untouched while each completed line is kept as an ordered step.
// The resulting Run is the record of what a demo did, which is how
// the tests check ordering properties without scraping stdout.
//
// Recording is observational only.  A Recorder must never change
// what the demo writes.
package trace

import (
	"bytes"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Run is the transcript of one demo run.
type Run struct {
	// ID is a fresh identifier for this run.
	ID string `json:"id"`

	// Demo is the demo's registry name.
	Demo string `json:"demo"`

	// Platform is the platform the selection picked.
	Platform string `json:"platform"`

	// At is when the run started.
	At time.Time `json:"at"`

	// Steps are the demo's output lines, in the order they were
	// written, without their trailing newlines.
	Steps []string `json:"steps,omitempty"`
}

// Recorder tees demo output into a Run.
//
// Not safe for concurrent writers, which is fine: a demo is a single
// linear sequence of calls.
type Recorder struct {
	run     *Run
	out     io.Writer
	partial bytes.Buffer
}

// NewRecorder makes a Recorder for one run.  Output is passed through
// to out; a nil out discards it.
func NewRecorder(demo, platform string, out io.Writer) *Recorder {
	if out == nil {
		out = io.Discard
	}
	return &Recorder{
		run: &Run{
			ID:       uuid.NewString(),
			Demo:     demo,
			Platform: platform,
			At:       time.Now().UTC(),
		},
		out: out,
	}
}

// Write implements io.Writer.  Completed lines become steps.
func (r *Recorder) Write(p []byte) (int, error) {
	n, err := r.out.Write(p)

	rest := p[:n]
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			r.partial.Write(rest)
			break
		}
		r.partial.Write(rest[:i])
		r.run.Steps = append(r.run.Steps, r.partial.String())
		r.partial.Reset()
		rest = rest[i+1:]
	}

	return n, err
}

// Run finalizes and returns the transcript.  A trailing partial line
// becomes the last step.
func (r *Recorder) Run() *Run {
	if 0 < r.partial.Len() {
		r.run.Steps = append(r.run.Steps, r.partial.String())
		r.partial.Reset()
	}
	return r.run
}

// WriteJSON writes the finalized Run as one line of JSON.
func (r *Recorder) WriteJSON(w io.Writer) error {
	bs, err := json.Marshal(r.Run())
	if err != nil {
		return err
	}
	bs = append(bs, '\n')
	_, err = w.Write(bs)
	return err
}
