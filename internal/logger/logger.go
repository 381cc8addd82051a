// Package logger provides the diagnostic channel for jsonbridge.
// When verbose mode is enabled via the --verbose flag, messages are printed
// to stderr. Failures that the bridge masks from its callers (unopenable
// files, cancelled dialogs, journal errors) are reported here.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	emit("DEBUG", "", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	emit("INFO", "", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	emit("WARN", "", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Component prefixes every message with a component name.
type Component string

// For returns a logger scoped to a component.
func For(name string) Component {
	return Component(name)
}

// Debug prints a component message if verbose mode is enabled.
func (c Component) Debug(format string, args ...any) {
	emit("DEBUG", string(c), format, args...)
}

// Info prints a component message if verbose mode is enabled.
func (c Component) Info(format string, args ...any) {
	emit("INFO", string(c), format, args...)
}

// Warn prints a component message if verbose mode is enabled.
func (c Component) Warn(format string, args ...any) {
	emit("WARN", string(c), format, args...)
}

func emit(level, component, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	prefix := "[" + level + "] "
	if component != "" {
		prefix += component + ": "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
