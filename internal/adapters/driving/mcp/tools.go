package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

// SaveJSONInput is the input schema for the save_json tool.
type SaveJSONInput struct {
	JSON string `json:"json" jsonschema:"the JSON document to pretty-print and save"`
	Path string `json:"path,omitempty" jsonschema:"destination path or file URL; empty cancels the save"`
}

// SaveJSONOutput is the output schema for the save_json tool.
type SaveJSONOutput struct {
	Outcome      string `json:"outcome"`
	Path         string `json:"path,omitempty"`
	BytesWritten int    `json:"bytes_written"`
	Error        string `json:"error,omitempty"`
}

// GetFileContentInput is the input schema for the get_file_content tool.
type GetFileContentInput struct {
	Location string `json:"location" jsonschema:"path or file URL to read"`
}

// GetFileContentOutput is the output schema for the get_file_content tool.
type GetFileContentOutput struct {
	Content string `json:"content"`
	Path    string `json:"path,omitempty"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// RecentActivityInput is the input schema for the recent_activity tool.
type RecentActivityInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of records to return (default: configured history limit)"`
}

// RecentActivityOutput is the output schema for the recent_activity tool.
type RecentActivityOutput struct {
	Activities []ActivityOutput `json:"activities"`
	Count      int              `json:"count"`
}

// ActivityOutput represents a single journal record.
type ActivityOutput struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	Path      string `json:"path,omitempty"`
	Outcome   string `json:"outcome"`
	Bytes     int    `json:"bytes"`
	Error     string `json:"error,omitempty"`
	At        string `json:"at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_json",
		Description: "Pretty-print a JSON document and write it to a file",
	}, s.handleSaveJSON)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_file_content",
		Description: "Read the full text of a file; empty content means it could not be read",
	}, s.handleGetFileContent)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "recent_activity",
			Description: "List recent save and load requests, newest first",
		}, s.handleRecentActivity)
	}
}

// handleSaveJSON handles the save_json tool invocation.
// Failures are reported in the output, never as tool errors.
func (s *Server) handleSaveJSON(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveJSONInput,
) (*mcp.CallToolResult, SaveJSONOutput, error) {
	payload := domain.JSONPayload(input.JSON)

	var result domain.SaveResult
	if strings.TrimSpace(input.Path) == "" {
		result = s.ports.Persister.Save(ctx, payload)
	} else {
		result = s.ports.Persister.SaveTo(ctx, domain.FileLocation(input.Path), payload)
	}

	output := SaveJSONOutput{
		Outcome:      result.Outcome.String(),
		Path:         result.Path,
		BytesWritten: result.BytesWritten,
	}
	if result.Err != nil {
		output.Error = result.Err.Error()
	}
	return nil, output, nil
}

// handleGetFileContent handles the get_file_content tool invocation.
func (s *Server) handleGetFileContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetFileContentInput,
) (*mcp.CallToolResult, GetFileContentOutput, error) {
	result := s.ports.Persister.Load(ctx, domain.FileLocation(input.Location))

	output := GetFileContentOutput{
		Content: result.Content,
		Path:    result.Path,
		Outcome: result.Outcome.String(),
	}
	if result.Err != nil {
		output.Error = result.Err.Error()
	}
	return nil, output, nil
}

// handleRecentActivity handles the recent_activity tool invocation.
func (s *Server) handleRecentActivity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecentActivityInput,
) (*mcp.CallToolResult, RecentActivityOutput, error) {
	activities, err := s.recent(ctx, input.Limit)
	if err != nil {
		return nil, RecentActivityOutput{}, err
	}
	return nil, RecentActivityOutput{Activities: activities, Count: len(activities)}, nil
}

// recent lists journal records in their wire form.
func (s *Server) recent(ctx context.Context, limit int) ([]ActivityOutput, error) {
	if s.ports.History == nil {
		return nil, ErrHistoryUnavailable
	}

	records, err := s.ports.History.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]ActivityOutput, len(records))
	for i, a := range records {
		out[i] = ActivityOutput{
			ID:        a.ID,
			Operation: a.Operation.String(),
			Path:      a.Path,
			Outcome:   a.Outcome,
			Bytes:     a.Bytes,
			Error:     a.Error,
			At:        a.At.UTC().Format(time.RFC3339),
		}
	}
	return out, nil
}
