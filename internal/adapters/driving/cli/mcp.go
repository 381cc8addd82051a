package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jsonbridge/internal/adapters/driven/chooser"
	"github.com/custodia-labs/jsonbridge/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Serve jsonbridge to AI assistants over the Model Context Protocol.

Tools:
  save_json         pretty-print a document and write it to a path
  get_file_content  read a file by path or file URL
  recent_activity   list recent saves and loads

Resources:
  jsonbridge://history         the activity journal as JSON
  jsonbridge://files/{path}    the text of a local file

The server speaks JSON-RPC over stdio unless --port is given, in which
case it serves the streamable HTTP transport on that port. A save_json
call without a path is recorded as cancelled; there is no dialog to ask.

Examples:
  jsonbridge mcp serve
  jsonbridge mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if persisterService == nil {
		return errPersisterMissing
	}

	// stdin carries the protocol, so a save without a path cancels
	persister := persisterService
	if newPersister != nil {
		persister = newPersister(chooser.Preset(""))
	}

	ports := &mcp.Ports{
		Persister: persister,
		History:   historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
