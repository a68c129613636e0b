package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michelgermain/tally-mcp/internal/tally"
)

// handlerFunc matches the server's tool handler signature.
type handlerFunc = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// RegisterTools adds all Tally MCP tools to the server. Tool and argument
// names are snake_case; the historical camelCase names are registered as
// aliases sharing the same handlers.
func RegisterTools(s *server.MCPServer, svc *tally.Service) {
	// Company and master data
	registerCompanyInfo(s, svc)
	registerAllLedgers(s, svc)
	registerAllGroups(s, svc)
	registerAllStockItems(s, svc)
	registerVoucherTypes(s, svc)
	registerCreateLedger(s, svc)
	registerCreateStockItem(s, svc)

	// Reports
	registerDayBook(s, svc)
	registerLedgerVouchers(s, svc)
	registerVoucherDetails(s, svc)
	registerTrialBalance(s, svc)
	registerProfitLoss(s, svc)
	registerBalanceSheet(s, svc)
	registerCashFlow(s, svc)
	registerStockSummary(s, svc)

	// Analysis
	registerOutstandingReceivables(s, svc)
	registerOutstandingPayables(s, svc)
	registerBankReconciliation(s, svc)
	registerAgeAnalysis(s, svc)
	registerBudgetVsActual(s, svc)
	registerGSTReport(s, svc)
	registerAuditTrail(s, svc)

	// Data entry and maintenance
	registerCreateSalesVoucher(s, svc)
	registerCreatePurchaseVoucher(s, svc)
	registerCreatePaymentVoucher(s, svc)
	registerCreateReceiptVoucher(s, svc)
	registerCreateJournalVoucher(s, svc)
	registerBackupCompany(s, svc)
}

// textResult wraps a service call outcome as a tool reply.
func textResult(result string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}
