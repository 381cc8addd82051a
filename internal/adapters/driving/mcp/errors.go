// Package mcp provides an MCP (Model Context Protocol) server adapter for jsonbridge.
// It lets AI assistants save JSON documents and read files through the bridge.
package mcp

import "errors"

// ErrMissingPersister is returned when the file persister is not provided.
var ErrMissingPersister = errors.New("mcp: file persister is required")

// ErrHistoryUnavailable is returned when activity is requested without a history service.
var ErrHistoryUnavailable = errors.New("mcp: history is not available")
