package tally

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialBalance(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE><BODY>
		<LEDGER NAME="Cash"><CLOSINGBALANCE>1000.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Sales Account"><CLOSINGBALANCE>-500.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Suspense"><CLOSINGBALANCE>0</CLOSINGBALANCE></LEDGER>
	</BODY></ENVELOPE>`)

	result, err := svc.TrialBalance(context.Background(), "01-04-2023", "31-03-2024")
	require.NoError(t, err)

	assert.Contains(t, result, "Trial Balance from 01-04-2023 to 31-03-2024:")
	// Positive balance is a debit, negative a credit.
	assert.Regexp(t, `Cash\s+1000\.00`, result)
	assert.Regexp(t, `Sales Account\s+500\.00`, result)
	// Zero balances are not printed.
	assert.NotContains(t, result, "Suspense")
	assert.Regexp(t, `TOTAL\s+1000\.00\s+500\.00`, result)
}

func TestTrialBalance_OpeningBalanceFallback(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE><BODY>
		<LEDGER NAME="Cash"><OPENINGBALANCE>750.00</OPENINGBALANCE></LEDGER>
	</BODY></ENVELOPE>`)

	result, err := svc.TrialBalance(context.Background(), "01-04-2023", "31-03-2024")
	require.NoError(t, err)
	assert.Regexp(t, `Cash\s+750\.00`, result)
}

func TestTrialBalance_Empty(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE/>`)

	result, err := svc.TrialBalance(context.Background(), "01-04-2023", "31-03-2024")
	require.NoError(t, err)
	assert.Equal(t, "No trial balance data found for period 01-04-2023 to 31-03-2024.", result)
}

func TestProfitLoss(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE><BODY>
		<LEDGER NAME="Service Income"><CLOSINGBALANCE>-80000.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Rent Expense"><CLOSINGBALANCE>30000.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Cash"><CLOSINGBALANCE>5000.00</CLOSINGBALANCE></LEDGER>
	</BODY></ENVELOPE>`)

	result, err := svc.ProfitLoss(context.Background(), "01-04-2023", "31-03-2024")
	require.NoError(t, err)

	assert.Contains(t, result, "INCOME:")
	assert.Contains(t, result, "EXPENSES:")
	assert.Regexp(t, `Service Income\s+80000\.00`, result)
	assert.Regexp(t, `Rent Expense\s+30000\.00`, result)
	// Cash matches neither keyword set.
	assert.NotContains(t, result, "Cash")
	assert.Regexp(t, `Net Profit\s+50000\.00`, result)
}

func TestProfitLoss_NetLoss(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE><BODY>
		<LEDGER NAME="Service Income"><CLOSINGBALANCE>10000.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Rent Expense"><CLOSINGBALANCE>30000.00</CLOSINGBALANCE></LEDGER>
	</BODY></ENVELOPE>`)

	result, err := svc.ProfitLoss(context.Background(), "01-04-2023", "31-03-2024")
	require.NoError(t, err)
	assert.Regexp(t, `Net Loss\s+20000\.00`, result)
}

func TestBalanceSheet(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE><BODY>
		<LEDGER NAME="Bank Account"><CLOSINGBALANCE>40000.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Capital Account"><CLOSINGBALANCE>40000.00</CLOSINGBALANCE></LEDGER>
	</BODY></ENVELOPE>`)

	result, err := svc.BalanceSheet(context.Background(), "31-03-2024")
	require.NoError(t, err)

	assert.Contains(t, result, "Balance Sheet as of 31-03-2024:")
	assert.Contains(t, result, "ASSETS:")
	assert.Contains(t, result, "LIABILITIES:")
	assert.Contains(t, result, "Balance Sheet is balanced")
}

func TestBalanceSheet_Unbalanced(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE><BODY>
		<LEDGER NAME="Bank Account"><CLOSINGBALANCE>40000.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Capital Account"><CLOSINGBALANCE>25000.00</CLOSINGBALANCE></LEDGER>
	</BODY></ENVELOPE>`)

	result, err := svc.BalanceSheet(context.Background(), "31-03-2024")
	require.NoError(t, err)
	assert.Contains(t, result, "not balanced")
	assert.Contains(t, result, "15000.00")
}

func TestCashFlow(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE><BODY>
		<LEDGER NAME="Sales Account"><CLOSINGBALANCE>20000.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Equipment"><CLOSINGBALANCE>-5000.00</CLOSINGBALANCE></LEDGER>
		<LEDGER NAME="Bank Loan"><CLOSINGBALANCE>10000.00</CLOSINGBALANCE></LEDGER>
	</BODY></ENVELOPE>`)

	result, err := svc.CashFlow(context.Background(), "01-04-2023", "31-03-2024")
	require.NoError(t, err)

	assert.Contains(t, result, "CASH FLOWS FROM OPERATING ACTIVITIES:")
	assert.Contains(t, result, "CASH FLOWS FROM INVESTING ACTIVITIES:")
	assert.Contains(t, result, "CASH FLOWS FROM FINANCING ACTIVITIES:")
	assert.Regexp(t, `Net Cash from Operating Activities\s+20000\.00`, result)
	assert.Regexp(t, `Net Cash from Investing Activities\s+-5000\.00`, result)
	assert.Regexp(t, `Net Change in Cash\s+25000\.00`, result)
}

func TestStockSummary(t *testing.T) {
	svc := newTestService(t, `<ENVELOPE><BODY>
		<STOCKITEM NAME="Bolt M8">
			<CLOSINGBALANCE>100</CLOSINGBALANCE>
			<CLOSINGRATE>12.50</CLOSINGRATE>
			<CLOSINGVALUE>1250.00</CLOSINGVALUE>
		</STOCKITEM>
		<STOCKITEM NAME="Obsolete Part">
			<CLOSINGBALANCE>0</CLOSINGBALANCE>
			<CLOSINGVALUE>0</CLOSINGVALUE>
		</STOCKITEM>
	</BODY></ENVELOPE>`)

	result, err := svc.StockSummary(context.Background(), "31-03-2024")
	require.NoError(t, err)

	assert.Contains(t, result, "Stock Summary as of 31-03-2024:")
	assert.Regexp(t, `Bolt M8\s+100\.00\s+12\.50\s+1250\.00`, result)
	assert.NotContains(t, result, "Obsolete Part")
	assert.Regexp(t, `TOTAL STOCK VALUE\s+1250\.00`, result)
}
