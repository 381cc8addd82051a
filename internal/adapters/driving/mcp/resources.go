package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/jsonbridge/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for jsonbridge resources.
	uriScheme = "jsonbridge://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the activity journal.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent save and load requests, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for file content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "files/{+path}",
		Name:        "file-content",
		Description: "Full text of a local file, addressed by absolute path",
		MIMEType:    "text/plain",
	}, s.handleFileResource)
}

// handleHistoryResource returns the recent activity journal.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	activities, err := s.recent(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}

	data, err := json.MarshalIndent(activities, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling activity: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFileResource returns the content of a local file.
func (s *Server) handleFileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path := extractFilePath(req.Params.URI)
	if path == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result := s.ports.Persister.Load(ctx, domain.FileLocation(path))
	if !result.OK() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     result.Content,
		}},
	}, nil
}

// extractFilePath extracts the absolute path from a URI like jsonbridge://files/{path}.
func extractFilePath(uri string) string {
	const prefix = uriScheme + "files/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	path := strings.TrimPrefix(uri, prefix)
	if path == "" {
		return ""
	}
	return "/" + strings.TrimPrefix(path, "/")
}
