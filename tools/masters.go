package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michelgermain/tally-mcp/internal/tally"
)

func registerCompanyInfo(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_company_info",
		mcp.WithDescription("Retrieves basic company information from Tally."),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(svc.CompanyInfo(ctx))
	})
}

func registerAllLedgers(s *server.MCPServer, svc *tally.Service) {
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(svc.AllLedgers(ctx))
	}
	s.AddTool(mcp.NewTool("get_all_ledgers",
		mcp.WithDescription("Retrieves a list of all ledger accounts from Tally."),
	), handler)
	s.AddTool(mcp.NewTool("getAllLedgers",
		mcp.WithDescription("Retrieves a list of all ledger accounts from Tally."),
	), handler)
}

func registerAllGroups(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_all_groups",
		mcp.WithDescription("Retrieves a list of all account groups from Tally."),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(svc.AllGroups(ctx))
	})
}

func registerAllStockItems(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_all_stock_items",
		mcp.WithDescription("Retrieves a list of all stock items from Tally."),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(svc.AllStockItems(ctx))
	})
}

func registerVoucherTypes(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_voucher_types",
		mcp.WithDescription("Retrieves a list of all voucher types from Tally."),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(svc.VoucherTypes(ctx))
	})
}

func registerCreateLedger(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("create_ledger",
		mcp.WithDescription("Creates a new ledger in Tally."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The name of the ledger to create."),
		),
		mcp.WithString("group",
			mcp.Required(),
			mcp.Description("The group under which to create the ledger."),
		),
		mcp.WithNumber("opening_balance",
			mcp.Description("Opening balance for the ledger (default: 0)."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError("name is required"), nil
		}
		group, err := request.RequireString("group")
		if err != nil {
			return mcp.NewToolResultError("group is required"), nil
		}
		openingBalance := mcp.ParseFloat64(request, "opening_balance", 0)
		return textResult(svc.CreateLedger(ctx, name, group, openingBalance))
	})
}

func registerCreateStockItem(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("create_stock_item",
		mcp.WithDescription("Creates a new stock item in Tally."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The name of the stock item to create."),
		),
		mcp.WithString("unit",
			mcp.Required(),
			mcp.Description("Unit of measurement (e.g., 'Nos', 'Kgs', 'Ltrs')."),
		),
		mcp.WithNumber("rate",
			mcp.Description("Standard rate/price for the item (default: 0)."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError("name is required"), nil
		}
		unit, err := request.RequireString("unit")
		if err != nil {
			return mcp.NewToolResultError("unit is required"), nil
		}
		rate := mcp.ParseFloat64(request, "rate", 0)
		return textResult(svc.CreateStockItem(ctx, name, unit, rate))
	})
}
