package cmd

import (
	"github.com/huangsam/foodrank/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the foodrank MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents compare products via standard tools.

Tools:
  compare_products - rank 2 to 4 products and name the healthiest
  list_products    - list products available to compare
  list_rows        - describe the metric rows`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, catalogManager)
	},
}
