package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/foodrank/core"
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CatalogManager
}

// jsonResult encodes v as the text content of a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.ProductIDs = request.GetStringSlice("product_ids", nil)
	if f := request.GetString("file", ""); f != "" {
		cfg.ProductFile = f
	}
	if args := request.GetArguments(); args["precision"] != nil {
		p := request.GetInt("precision", contract.DefaultPrecision)
		if err := contract.ValidatePrecision(p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cfg.Precision = p
	}

	result, err := core.GetComparisonResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleListProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("file", ""); f != "" {
		cfg.ProductFile = f
	}
	if l := request.GetInt("limit", -1); l >= 0 {
		cfg.ListLimit = l
	}

	products, err := core.GetProductList(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
	}
	return jsonResult(products)
}

func (h *toolHandler) handleListRows(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(core.RowDefinitions())
}
