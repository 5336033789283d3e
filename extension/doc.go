// Package extension provides run-time registries that allow counsel to work
// with user-defined allocation strategies and Go types.
//
// The registries are normally modified through the public APIs under the
// root counsel package, therefore most applications do not need to import
// this package directly.
package extension
