// Package chooser provides SaveLocationChooser implementations.
//
//   - Prompt asks for a file name on the terminal.
//   - Dialog runs the TUI save dialog as a standalone program.
//   - Preset always answers with a fixed location, for scripted use.
//
// Every chooser reports a dismissed dialog as domain.ErrCancelled.
package chooser
