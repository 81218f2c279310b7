package ui

// These errors are user errors, not internal errors.

import (
	"math/rand"
	"strings"
)

// Platform tags a product family.  A concrete factory always returns
// products carrying its own Platform.
type Platform string

const (
	Android Platform = "android"
	IOS     Platform = "ios"
)

// Platforms lists the platforms this collection knows about, in a
// fixed order.
var Platforms = []Platform{Android, IOS}

// ParsePlatform maps a (case-insensitive) name to a known Platform.
//
// Anything other than "android" or "ios" gets an UnsupportedPlatform
// error.
func ParsePlatform(name string) (Platform, error) {
	switch Platform(strings.ToLower(name)) {
	case Android:
		return Android, nil
	case IOS:
		return IOS, nil
	}
	return "", &UnsupportedPlatform{Name: name}
}

// RandomPlatform draws one of the two known platforms uniformly.
//
// The caller supplies the *rand.Rand so that the selection is
// seedable and therefore deterministic in tests.  A two-outcome draw
// can never produce an unsupported platform.
func RandomPlatform(r *rand.Rand) Platform {
	if r.Intn(2) == 0 {
		return Android
	}
	return IOS
}

// UnsupportedPlatform occurs when a selection names a platform that
// no factory in this collection can serve.
type UnsupportedPlatform struct {
	Name string
}

func (e *UnsupportedPlatform) Error() string {
	return `unsupported platform "` + e.Name + `"`
}
