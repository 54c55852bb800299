// Package registry provides a generic, thread-safe, name-keyed registry.
// The formatter package keeps its dialects in one.
package registry
