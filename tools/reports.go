package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michelgermain/tally-mcp/internal/tally"
)

func registerDayBook(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_day_book",
		mcp.WithDescription("Retrieves the daybook from Tally for a specific date."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("The date for the daybook in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}
		return textResult(svc.DayBook(ctx, date))
	})
}

func registerLedgerVouchers(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_ledger_vouchers",
		mcp.WithDescription("Retrieves all vouchers for a specific ledger within a date range."),
		mcp.WithString("ledger_name",
			mcp.Required(),
			mcp.Description("The name of the ledger."),
		),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("The start date in DD-MM-YYYY format."),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("The end date in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ledgerName, err := request.RequireString("ledger_name")
		if err != nil {
			return mcp.NewToolResultError("ledger_name is required"), nil
		}
		fromDate, err := request.RequireString("from_date")
		if err != nil {
			return mcp.NewToolResultError("from_date is required"), nil
		}
		toDate, err := request.RequireString("to_date")
		if err != nil {
			return mcp.NewToolResultError("to_date is required"), nil
		}
		return textResult(svc.LedgerVouchers(ctx, ledgerName, fromDate, toDate))
	})
}

func registerVoucherDetails(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_voucher_details",
		mcp.WithDescription("Retrieves details of a specific voucher from Tally."),
		mcp.WithString("voucher_number",
			mcp.Required(),
			mcp.Description("The voucher number to retrieve."),
		),
		mcp.WithString("voucher_type",
			mcp.Required(),
			mcp.Description("The voucher type (e.g., 'Sales', 'Payment', 'Receipt')."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		voucherNumber, err := request.RequireString("voucher_number")
		if err != nil {
			return mcp.NewToolResultError("voucher_number is required"), nil
		}
		voucherType, err := request.RequireString("voucher_type")
		if err != nil {
			return mcp.NewToolResultError("voucher_type is required"), nil
		}
		return textResult(svc.VoucherDetails(ctx, voucherNumber, voucherType))
	})
}

// rangeHandler builds a handler for report tools taking a from/to date
// pair, with the argument key names supplied by the registration.
func rangeHandler(fromKey, toKey string, call func(ctx context.Context, from, to string) (string, error)) handlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		fromDate, err := request.RequireString(fromKey)
		if err != nil {
			return mcp.NewToolResultError(fromKey + " is required"), nil
		}
		toDate, err := request.RequireString(toKey)
		if err != nil {
			return mcp.NewToolResultError(toKey + " is required"), nil
		}
		return textResult(call(ctx, fromDate, toDate))
	}
}

// dateHandler builds a handler for report tools taking one as-of date.
func dateHandler(dateKey string, call func(ctx context.Context, date string) (string, error)) handlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString(dateKey)
		if err != nil {
			return mcp.NewToolResultError(dateKey + " is required"), nil
		}
		return textResult(call(ctx, date))
	}
}

func registerTrialBalance(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_trial_balance",
		mcp.WithDescription("Retrieves trial balance report from Tally for a specified date range."),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("The start date in DD-MM-YYYY format."),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("The end date in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, rangeHandler("from_date", "to_date", svc.TrialBalance))
}

func registerProfitLoss(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_profit_loss",
		mcp.WithDescription("Retrieves Profit & Loss statement from Tally for a specified date range."),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("The start date in DD-MM-YYYY format."),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("The end date in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, rangeHandler("from_date", "to_date", svc.ProfitLoss))
}

func registerBalanceSheet(s *server.MCPServer, svc *tally.Service) {
	desc := mcp.WithDescription("Retrieves Balance Sheet from Tally as of a specific date.")
	dateDesc := "The date for balance sheet in DD-MM-YYYY format."
	s.AddTool(mcp.NewTool("get_balance_sheet", desc,
		mcp.WithString("date", mcp.Required(), mcp.Description(dateDesc)),
	), dateHandler("date", svc.BalanceSheet))
	s.AddTool(mcp.NewTool("getBalanceSheet", desc,
		mcp.WithString("date", mcp.Required(), mcp.Description(dateDesc)),
	), dateHandler("date", svc.BalanceSheet))
}

func registerCashFlow(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_cash_flow",
		mcp.WithDescription("Retrieves Cash Flow statement from Tally for a specified date range."),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("The start date in DD-MM-YYYY format."),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("The end date in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, rangeHandler("from_date", "to_date", svc.CashFlow))
}

func registerStockSummary(s *server.MCPServer, svc *tally.Service) {
	desc := mcp.WithDescription("Retrieves stock summary/inventory valuation report as of a specific date.")
	dateDesc := "The date for stock summary in DD-MM-YYYY format."
	s.AddTool(mcp.NewTool("get_stock_summary", desc,
		mcp.WithString("date", mcp.Required(), mcp.Description(dateDesc)),
	), dateHandler("date", svc.StockSummary))
	s.AddTool(mcp.NewTool("getStockSummary", desc,
		mcp.WithString("date", mcp.Required(), mcp.Description(dateDesc)),
	), dateHandler("date", svc.StockSummary))
}
