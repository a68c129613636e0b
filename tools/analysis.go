package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michelgermain/tally-mcp/internal/tally"
)

func registerOutstandingReceivables(s *server.MCPServer, svc *tally.Service) {
	desc := mcp.WithDescription("Retrieves outstanding receivables (debtors) report as of a specific date.")
	dateDesc := "The date for outstanding receivables in DD-MM-YYYY format."
	s.AddTool(mcp.NewTool("get_outstanding_receivables", desc,
		mcp.WithString("date", mcp.Required(), mcp.Description(dateDesc)),
	), dateHandler("date", svc.OutstandingReceivables))
	s.AddTool(mcp.NewTool("getOutstandingReceivables", desc,
		mcp.WithString("date", mcp.Required(), mcp.Description(dateDesc)),
	), dateHandler("date", svc.OutstandingReceivables))
}

func registerOutstandingPayables(s *server.MCPServer, svc *tally.Service) {
	desc := mcp.WithDescription("Retrieves outstanding payables (creditors) report as of a specific date.")
	dateDesc := "The date for outstanding payables in DD-MM-YYYY format."
	s.AddTool(mcp.NewTool("get_outstanding_payables", desc,
		mcp.WithString("date", mcp.Required(), mcp.Description(dateDesc)),
	), dateHandler("date", svc.OutstandingPayables))
	s.AddTool(mcp.NewTool("getOutstandingPayables", desc,
		mcp.WithString("date", mcp.Required(), mcp.Description(dateDesc)),
	), dateHandler("date", svc.OutstandingPayables))
}

func registerBankReconciliation(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_bank_reconciliation",
		mcp.WithDescription("Retrieves bank reconciliation statement for a specific bank ledger as of a date."),
		mcp.WithString("bank_ledger",
			mcp.Required(),
			mcp.Description("Name of the bank ledger to reconcile."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date for reconciliation in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bankLedger, err := request.RequireString("bank_ledger")
		if err != nil {
			return mcp.NewToolResultError("bank_ledger is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}
		return textResult(svc.BankReconciliation(ctx, bankLedger, date))
	})
}

// ageAnalysisHandler is shared by the canonical tool and its alias, which
// differ only in the ledger argument key.
func ageAnalysisHandler(svc *tally.Service, ledgerKey string) handlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ledgerName, err := request.RequireString(ledgerKey)
		if err != nil {
			return mcp.NewToolResultError(ledgerKey + " is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}
		return textResult(svc.AgeAnalysis(ctx, ledgerName, date))
	}
}

func registerAgeAnalysis(s *server.MCPServer, svc *tally.Service) {
	desc := mcp.WithDescription("Retrieves aging analysis for a specific ledger (receivables/payables analysis).")
	dateArg := mcp.WithString("date",
		mcp.Required(),
		mcp.Description("Date for analysis in DD-MM-YYYY format."),
	)
	s.AddTool(mcp.NewTool("get_age_analysis", desc,
		mcp.WithString("ledger_name",
			mcp.Required(),
			mcp.Description("Name of the ledger for aging analysis."),
		),
		dateArg,
	), ageAnalysisHandler(svc, "ledger_name"))
	s.AddTool(mcp.NewTool("getAgeAnalysis", desc,
		mcp.WithString("ledgerName",
			mcp.Required(),
			mcp.Description("Name of the ledger for aging analysis."),
		),
		dateArg,
	), ageAnalysisHandler(svc, "ledgerName"))
}

func registerBudgetVsActual(s *server.MCPServer, svc *tally.Service) {
	desc := mcp.WithDescription("Retrieves budget vs actual comparison report from Tally for a specified date range.")
	s.AddTool(mcp.NewTool("get_budget_vs_actual", desc,
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("The start date in DD-MM-YYYY format."),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("The end date in DD-MM-YYYY format."),
		),
	), rangeHandler("from_date", "to_date", svc.BudgetVsActual))
	s.AddTool(mcp.NewTool("getBudgetVsActual", desc,
		mcp.WithString("fromDate",
			mcp.Required(),
			mcp.Description("The start date in DD-MM-YYYY format."),
		),
		mcp.WithString("toDate",
			mcp.Required(),
			mcp.Description("The end date in DD-MM-YYYY format."),
		),
	), rangeHandler("fromDate", "toDate", svc.BudgetVsActual))
}

func registerGSTReport(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_gst_report",
		mcp.WithDescription("Retrieves GST summary report from Tally for a specified date range."),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("The start date in DD-MM-YYYY format."),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("The end date in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, rangeHandler("from_date", "to_date", svc.GSTReport))
}

func registerAuditTrail(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("get_audit_trail",
		mcp.WithDescription("Retrieves audit trail report showing all modifications and transactions within a date range."),
		mcp.WithString("from_date",
			mcp.Required(),
			mcp.Description("The start date in DD-MM-YYYY format."),
		),
		mcp.WithString("to_date",
			mcp.Required(),
			mcp.Description("The end date in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, rangeHandler("from_date", "to_date", svc.AuditTrail))
}
