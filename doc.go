// Package patterns is a collection of classic design patterns
// implemented as small, testable Go packages.
//
// Each pattern lives in its own package ('factorymethod',
// 'abstractfactory', 'builder', 'simplefactory'), and some
// command-line tools are in `cmd`.  The catalog of implemented and
// planned patterns is in 'catalog'.
//
// See https://github.com/BolisettySujith/Design-Patterns/blob/master/README.md for more.
package patterns
