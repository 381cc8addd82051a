// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SaveLocationChooser: Asks the user where to save (dialog, prompt, preset)
//   - JSONFormatter: Validates and pretty-prints JSON text
//   - FileSystem: Scoped open/write/read of local files
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ActivityStore: Journal of save/load requests. Without it, history is empty.
//   - FileWatcher: Change notifications. Without it, watching is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
