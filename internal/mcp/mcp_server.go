// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the foodrank MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CatalogManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Foodrank Comparison Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: compare_products ---
	s.AddTool(mcp.NewTool("compare_products",
		mcp.WithDescription("Compare 2 to 4 food products metric by metric and name the healthiest one."),
		mcp.WithArray("product_ids", mcp.Description("Product ids to compare, in display order."), mcp.Required(), mcp.WithStringItems()),
		mcp.WithNumber("precision", mcp.Description("Round nutrition values to 0-3 decimal places before ranking. Omit or pass -1 to keep values as reported.")),
		mcp.WithString("file", mcp.Description("Optional JSON, YAML or CSV products file to read instead of the catalog.")),
	), h.handleCompareProducts)

	// --- 2. Tool: list_products ---
	s.AddTool(mcp.NewTool("list_products",
		mcp.WithDescription("List products available for comparison, ordered by id."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of products returned (0 = all).")),
		mcp.WithString("file", mcp.Description("Optional products file to list instead of the catalog.")),
	), h.handleListProducts)

	// --- 3. Tool: list_rows ---
	s.AddTool(mcp.NewTool("list_rows",
		mcp.WithDescription("Describe the metric rows of a comparison and which direction wins for each."),
	), h.handleListRows)

	return s
}

// StartMCPServer starts the foodrank MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CatalogManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
