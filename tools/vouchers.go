package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michelgermain/tally-mcp/internal/tally"
)

func registerCreateSalesVoucher(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("create_sales_voucher",
		mcp.WithDescription("Creates a sales voucher in Tally."),
		mcp.WithString("party",
			mcp.Required(),
			mcp.Description("Customer name (ledger name)."),
		),
		mcp.WithString("items",
			mcp.Required(),
			mcp.Description("Description of items sold."),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Total sales amount."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date of sale in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		party, err := request.RequireString("party")
		if err != nil {
			return mcp.NewToolResultError("party is required"), nil
		}
		items, err := request.RequireString("items")
		if err != nil {
			return mcp.NewToolResultError("items is required"), nil
		}
		amount, err := request.RequireFloat("amount")
		if err != nil {
			return mcp.NewToolResultError("amount is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}
		return textResult(svc.CreateSalesVoucher(ctx, party, items, amount, date))
	})
}

func registerCreatePurchaseVoucher(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("create_purchase_voucher",
		mcp.WithDescription("Creates a purchase voucher in Tally."),
		mcp.WithString("party",
			mcp.Required(),
			mcp.Description("Supplier name (ledger name)."),
		),
		mcp.WithString("items",
			mcp.Required(),
			mcp.Description("Description of items purchased."),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Total purchase amount."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date of purchase in DD-MM-YYYY format."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		party, err := request.RequireString("party")
		if err != nil {
			return mcp.NewToolResultError("party is required"), nil
		}
		items, err := request.RequireString("items")
		if err != nil {
			return mcp.NewToolResultError("items is required"), nil
		}
		amount, err := request.RequireFloat("amount")
		if err != nil {
			return mcp.NewToolResultError("amount is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}
		return textResult(svc.CreatePurchaseVoucher(ctx, party, items, amount, date))
	})
}

func registerCreatePaymentVoucher(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("create_payment_voucher",
		mcp.WithDescription("Creates a payment voucher in Tally."),
		mcp.WithString("party",
			mcp.Required(),
			mcp.Description("Party name to whom payment is made (ledger name)."),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Payment amount."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date of payment in DD-MM-YYYY format."),
		),
		mcp.WithString("payment_method",
			mcp.Description("Payment method - 'Cash' or bank ledger name (default: 'Cash')."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		party, err := request.RequireString("party")
		if err != nil {
			return mcp.NewToolResultError("party is required"), nil
		}
		amount, err := request.RequireFloat("amount")
		if err != nil {
			return mcp.NewToolResultError("amount is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}
		method := mcp.ParseString(request, "payment_method", "Cash")
		return textResult(svc.CreatePaymentVoucher(ctx, party, amount, date, method))
	})
}

func registerCreateReceiptVoucher(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("create_receipt_voucher",
		mcp.WithDescription("Creates a receipt voucher in Tally."),
		mcp.WithString("party",
			mcp.Required(),
			mcp.Description("Party name from whom payment is received (ledger name)."),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Receipt amount."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date of receipt in DD-MM-YYYY format."),
		),
		mcp.WithString("receipt_method",
			mcp.Description("Receipt method - 'Cash' or bank ledger name (default: 'Cash')."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		party, err := request.RequireString("party")
		if err != nil {
			return mcp.NewToolResultError("party is required"), nil
		}
		amount, err := request.RequireFloat("amount")
		if err != nil {
			return mcp.NewToolResultError("amount is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}
		method := mcp.ParseString(request, "receipt_method", "Cash")
		return textResult(svc.CreateReceiptVoucher(ctx, party, amount, date, method))
	})
}

func registerCreateJournalVoucher(s *server.MCPServer, svc *tally.Service) {
	tool := mcp.NewTool("create_journal_voucher",
		mcp.WithDescription("Creates a journal voucher in Tally for general entries."),
		mcp.WithString("debit_ledger",
			mcp.Required(),
			mcp.Description("Ledger to be debited."),
		),
		mcp.WithString("credit_ledger",
			mcp.Required(),
			mcp.Description("Ledger to be credited."),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Transaction amount."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date of transaction in DD-MM-YYYY format."),
		),
		mcp.WithString("narration",
			mcp.Required(),
			mcp.Description("Description of the transaction."),
		),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		debitLedger, err := request.RequireString("debit_ledger")
		if err != nil {
			return mcp.NewToolResultError("debit_ledger is required"), nil
		}
		creditLedger, err := request.RequireString("credit_ledger")
		if err != nil {
			return mcp.NewToolResultError("credit_ledger is required"), nil
		}
		amount, err := request.RequireFloat("amount")
		if err != nil {
			return mcp.NewToolResultError("amount is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}
		narration, err := request.RequireString("narration")
		if err != nil {
			return mcp.NewToolResultError("narration is required"), nil
		}
		return textResult(svc.CreateJournalVoucher(ctx, debitLedger, creditLedger, amount, date, narration))
	})
}

// backupHandler is shared by the canonical tool and its alias, which
// differ only in the path argument key.
func backupHandler(svc *tally.Service, pathKey string) handlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		backupPath, err := request.RequireString(pathKey)
		if err != nil {
			return mcp.NewToolResultError(pathKey + " is required"), nil
		}
		return textResult(svc.BackupCompany(ctx, backupPath))
	}
}

func registerBackupCompany(s *server.MCPServer, svc *tally.Service) {
	desc := mcp.WithDescription("Creates a backup of the company data in Tally.")
	pathDesc := "The path where backup should be created (e.g., 'C:\\Backups\\')."
	s.AddTool(mcp.NewTool("backup_company", desc,
		mcp.WithString("backup_path", mcp.Required(), mcp.Description(pathDesc)),
	), backupHandler(svc, "backup_path"))
	s.AddTool(mcp.NewTool("backupCompany", desc,
		mcp.WithString("backupPath", mcp.Required(), mcp.Description(pathDesc)),
	), backupHandler(svc, "backupPath"))
}
