package tally

import (
	"context"
	"fmt"
)

// TrialBalance renders ledger closing balances split into debit and
// credit columns. Positive balances are debits, negative credits; zero
// balances are scanned but not printed.
func (s *Service) TrialBalance(ctx context.Context, fromDate, toDate string) (string, error) {
	req := exportRequest("Trial Balance",
		staticVar{"SVFROMDATE", fromDate},
		staticVar{"SVTODATE", toDate},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	ledgers := FindAllByTag(doc, "LEDGER")
	if len(ledgers) == 0 {
		return fmt.Sprintf("No trial balance data found for period %s to %s.", fromDate, toDate), nil
	}

	r := NewReport(fmt.Sprintf("Trial Balance from %s to %s:", fromDate, toDate))
	sec := r.Section("")
	table := sec.Table(
		Column{"Ledger Name", 30, AlignLeft},
		Column{"Debit", 15, AlignLeft},
		Column{"Credit", 15, AlignLeft},
	)

	var totalDebit, totalCredit float64
	for _, l := range ledgers {
		name := attrOr(l, "NAME", "N/A")
		balance := amount(textOr(l, "", "CLOSINGBALANCE", "OPENINGBALANCE"))
		switch {
		case balance > 0:
			table.AddRow(name, money(balance), "")
			totalDebit += balance
		case balance < 0:
			table.AddRow(name, "", money(-balance))
			totalCredit += -balance
		}
	}

	sec.Rule(table.LineWidth(), '-')
	sec.Addf("%s %s %s", pad("TOTAL", 30, AlignLeft), pad(money(totalDebit), 15, AlignLeft), money(totalCredit))
	return r.Render(), nil
}

// ProfitLoss renders income and expense sections classified by account
// name keywords, ending with the net profit or loss.
func (s *Service) ProfitLoss(ctx context.Context, fromDate, toDate string) (string, error) {
	req := exportRequest("Profit and Loss A/c",
		staticVar{"SVFROMDATE", fromDate},
		staticVar{"SVTODATE", toDate},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	items := FindAllByTag(doc, "GROUP")
	items = append(items, FindAllByTag(doc, "LEDGER")...)
	if len(items) == 0 {
		return fmt.Sprintf("No P&L data found for period %s to %s.", fromDate, toDate), nil
	}

	r := NewReport(fmt.Sprintf("Profit & Loss Statement from %s to %s:", fromDate, toDate))

	totalIncome := sumSection(r.Section("INCOME:"), items, 40, "Total Income", "income")
	totalExpenses := sumSection(r.Section("EXPENSES:"), items, 40, "Total Expenses", "expense", "cost")

	net := totalIncome - totalExpenses
	result := "Net Profit"
	if net <= 0 {
		result = "Net Loss"
	}
	final := r.Section("")
	final.Rule(40, '=')
	final.Addf("%s %s", pad(result, 30, AlignLeft), pad(money(abs(net)), 10, AlignRight))
	return r.Render(), nil
}

// sumSection renders one keyword-classified report section and returns its
// total. Rows need a present CLOSINGBALANCE and a non-zero value.
func sumSection(sec *Section, items []any, ruleWidth int, totalLabel string, keywords ...string) float64 {
	sec.Rule(ruleWidth, '-')
	var total float64
	for _, item := range items {
		name := attrOr(item, "NAME", "")
		balText, ok := ChildText(item, "CLOSINGBALANCE")
		if !ok || !containsAny(name, keywords...) {
			continue
		}
		balance := amount(balText)
		if balance == 0 {
			continue
		}
		sec.Addf("%s %s", pad(name, 30, AlignLeft), pad(money(abs(balance)), 10, AlignRight))
		total += abs(balance)
	}
	sec.Addf("%s %s", pad(totalLabel, 30, AlignLeft), pad(money(total), 10, AlignRight))
	sec.Blank()
	return total
}

// BalanceSheet renders asset and liability sections as of a date, with a
// balanced check. The books open on 01-04-2023, the fixed start of the
// first supported financial year.
func (s *Service) BalanceSheet(ctx context.Context, date string) (string, error) {
	req := exportRequest("Balance Sheet",
		staticVar{"SVFROMDATE", "01-04-2023"},
		staticVar{"SVTODATE", date},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	items := FindAllByTag(doc, "GROUP")
	items = append(items, FindAllByTag(doc, "LEDGER")...)
	if len(items) == 0 {
		return fmt.Sprintf("No balance sheet data found as of %s.", date), nil
	}

	r := NewReport(fmt.Sprintf("Balance Sheet as of %s:", date))

	totalAssets := sumSection(r.Section("ASSETS:"), items, 40, "Total Assets",
		"asset", "cash", "bank", "inventory", "stock")
	totalLiabilities := sumSection(r.Section("LIABILITIES:"), items, 40, "Total Liabilities",
		"liability", "payable", "loan", "capital")

	final := r.Section("")
	final.Rule(40, '=')
	diff := totalAssets - totalLiabilities
	if abs(diff) < 0.01 {
		final.Add("Balance Sheet is balanced")
	} else {
		final.Addf("Difference: %s (Balance sheet not balanced)", pad(money(diff), 10, AlignRight))
	}
	return r.Render(), nil
}

// CashFlow renders operating, investing and financing activity sections
// classified by ledger name keywords, with the net change in cash.
func (s *Service) CashFlow(ctx context.Context, fromDate, toDate string) (string, error) {
	req := exportRequest("Cash Flow",
		staticVar{"SVFROMDATE", fromDate},
		staticVar{"SVTODATE", toDate},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	ledgers := FindAllByTag(doc, "LEDGER")
	if len(ledgers) == 0 {
		return fmt.Sprintf("No cash flow data found for period %s to %s.", fromDate, toDate), nil
	}

	r := NewReport(fmt.Sprintf("Cash Flow Statement from %s to %s:", fromDate, toDate))

	activity := func(title, totalLabel string, keywords ...string) float64 {
		sec := r.Section(title)
		sec.Rule(50, '-')
		var total float64
		for _, l := range ledgers {
			name := attrOr(l, "NAME", "")
			balText, ok := ChildText(l, "CLOSINGBALANCE")
			if !ok || !containsAny(name, keywords...) {
				continue
			}
			balance := amount(balText)
			if balance == 0 {
				continue
			}
			sec.Addf("%s %s", pad(name, 35, AlignLeft), pad(money(balance), 10, AlignRight))
			total += balance
		}
		sec.Addf("%s %s", pad(totalLabel, 35, AlignLeft), pad(money(total), 10, AlignRight))
		sec.Blank()
		return total
	}

	operating := activity("CASH FLOWS FROM OPERATING ACTIVITIES:",
		"Net Cash from Operating Activities", "sales", "purchase", "expense", "income")
	investing := activity("CASH FLOWS FROM INVESTING ACTIVITIES:",
		"Net Cash from Investing Activities", "investment", "asset", "equipment")
	financing := activity("CASH FLOWS FROM FINANCING ACTIVITIES:",
		"Net Cash from Financing Activities", "loan", "capital", "dividend")

	final := r.Section("")
	final.Rule(50, '=')
	final.Addf("%s %s", pad("Net Change in Cash", 35, AlignLeft),
		pad(money(operating+investing+financing), 10, AlignRight))
	return r.Render(), nil
}

// StockSummary renders inventory quantities, rates and valuation as of a
// date, with the total stock value.
func (s *Service) StockSummary(ctx context.Context, date string) (string, error) {
	req := exportRequest("Stock Summary",
		staticVar{"SVFROMDATE", date},
		staticVar{"SVTODATE", date},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	items := FindAllByTag(doc, "STOCKITEM")
	if len(items) == 0 {
		return fmt.Sprintf("No stock data found as of %s.", date), nil
	}

	r := NewReport(fmt.Sprintf("Stock Summary as of %s:", date))
	sec := r.Section("")
	table := sec.Table(
		Column{"Item Name", 25, AlignLeft},
		Column{"Qty", 10, AlignLeft},
		Column{"Rate", 10, AlignLeft},
		Column{"Value", 12, AlignLeft},
	)

	var totalValue float64
	for _, item := range items {
		name := attrOr(item, "NAME", "N/A")
		qty := amount(textOr(item, "", "CLOSINGBALANCE"))
		rate := amount(textOr(item, "", "CLOSINGRATE"))
		value := amount(textOr(item, "", "CLOSINGVALUE"))
		if qty == 0 && value == 0 {
			continue
		}
		table.AddRow(trunc(name, 24), money(qty), money(rate), money(value))
		totalValue += value
	}

	sec.Rule(table.LineWidth(), '-')
	sec.Addf("%s %s %s %s", pad("TOTAL STOCK VALUE", 25, AlignLeft),
		pad("", 10, AlignLeft), pad("", 10, AlignLeft), money(totalValue))
	return r.Render(), nil
}
