// Package memory provides in-memory implementations of the driven store
// ports. They back tests and run as fallbacks when nothing can be persisted.
package memory
