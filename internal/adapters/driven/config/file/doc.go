// Package file provides the file-based configuration store.
//
// Settings live in a TOML file, ~/.jsonbridge/config.toml by default.
// Dotted keys such as "format.indent" map to TOML tables:
//
//	[format]
//	indent = 2
package file
