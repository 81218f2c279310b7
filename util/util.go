package util

import "log"

// Verbose is a blunt switch that affects what Logf does.
//
// The demos themselves write their observable output to an io.Writer;
// Logf is only for commentary about what a tool is doing.
var Verbose = false

// Logf calls log.Printf if Verbose is true.
func Logf(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	log.Printf(format, args...)
}
