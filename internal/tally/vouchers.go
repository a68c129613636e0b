package tally

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// importSucceeded checks the gateway's import reply. The gateway answers
// with free-form XML, so success is detected by keyword.
func importSucceeded(raw string, keywords ...string) bool {
	return containsAny(raw, keywords...)
}

// excerpt trims raw to at most n bytes for inclusion in a failure
// message, backing up so a multi-byte rune is never split.
func excerpt(raw string, n int) string {
	if len(raw) <= n {
		return raw
	}
	for n > 0 && !utf8.RuneStart(raw[n]) {
		n--
	}
	return raw[:n]
}

// CreateLedger creates a ledger master under the given group.
func (s *Service) CreateLedger(ctx context.Context, name, group string, openingBalance float64) (string, error) {
	req := ledgerImportRequest(name, group, openingBalance)
	raw, err := s.client.Post(ctx, req)
	if err != nil {
		return fmt.Sprintf("Error creating ledger: %v", err), nil
	}
	if importSucceeded(raw, "created", "success", "accepted") {
		return fmt.Sprintf("Ledger created successfully:\nName: %s\nGroup: %s\nOpening Balance: %s",
			name, group, formatNumber(openingBalance)), nil
	}
	return fmt.Sprintf("Failed to create ledger. Response: %s", excerpt(raw, 200)), nil
}

// CreateStockItem creates a stock item master with the given base unit.
func (s *Service) CreateStockItem(ctx context.Context, name, unit string, rate float64) (string, error) {
	req := stockItemImportRequest(name, unit, rate)
	raw, err := s.client.Post(ctx, req)
	if err != nil {
		return fmt.Sprintf("Error creating stock item: %v", err), nil
	}
	if importSucceeded(raw, "created", "success", "accepted") {
		return fmt.Sprintf("Stock item created successfully:\nName: %s\nUnit: %s\nRate: %s",
			name, unit, formatNumber(rate)), nil
	}
	return fmt.Sprintf("Failed to create stock item. Response: %s", excerpt(raw, 200)), nil
}

// createVoucher posts one voucher import and reports the outcome using
// the caller's labels.
func (s *Service) createVoucher(ctx context.Context, vchType, date, party, narration string, entries []ledgerEntry, detail string) (string, error) {
	kind := strings.ToLower(vchType)
	req := voucherImportRequest(vchType, date, party, narration, entries)
	raw, err := s.client.Post(ctx, req)
	if err != nil {
		return fmt.Sprintf("Error creating %s voucher: %v", kind, err), nil
	}
	if importSucceeded(raw, "created") {
		return fmt.Sprintf("%s voucher created successfully:\n%s", vchType, detail), nil
	}
	return fmt.Sprintf("Failed to create %s voucher. Response: %s", kind, excerpt(raw, 200)), nil
}

// CreateSalesVoucher records a sale: the customer ledger is debited and
// the Sales ledger credited.
func (s *Service) CreateSalesVoucher(ctx context.Context, party, items string, amount float64, date string) (string, error) {
	entries := []ledgerEntry{
		{Ledger: party, Amount: amount, DeemedPositive: true},
		{Ledger: "Sales", Amount: -amount, DeemedPositive: false},
	}
	detail := fmt.Sprintf("Party: %s\nAmount: %s\nDate: %s\nItems: %s",
		party, formatNumber(amount), date, items)
	return s.createVoucher(ctx, "Sales", date, party, items, entries, detail)
}

// CreatePurchaseVoucher records a purchase: the Purchase ledger is
// debited and the supplier ledger credited.
func (s *Service) CreatePurchaseVoucher(ctx context.Context, party, items string, amount float64, date string) (string, error) {
	entries := []ledgerEntry{
		{Ledger: "Purchase", Amount: amount, DeemedPositive: true},
		{Ledger: party, Amount: -amount, DeemedPositive: false},
	}
	detail := fmt.Sprintf("Party: %s\nAmount: %s\nDate: %s\nItems: %s",
		party, formatNumber(amount), date, items)
	return s.createVoucher(ctx, "Purchase", date, party, items, entries, detail)
}

// CreatePaymentVoucher records a payment to a party from cash or a bank
// ledger. An empty method defaults to Cash.
func (s *Service) CreatePaymentVoucher(ctx context.Context, party string, amount float64, date, method string) (string, error) {
	if method == "" {
		method = "Cash"
	}
	entries := []ledgerEntry{
		{Ledger: party, Amount: amount, DeemedPositive: true},
		{Ledger: method, Amount: -amount, DeemedPositive: false},
	}
	narration := fmt.Sprintf("Payment to %s", party)
	detail := fmt.Sprintf("Party: %s\nAmount: %s\nDate: %s\nPayment Method: %s",
		party, formatNumber(amount), date, method)
	return s.createVoucher(ctx, "Payment", date, party, narration, entries, detail)
}

// CreateReceiptVoucher records money received from a party into cash or
// a bank ledger. An empty method defaults to Cash.
func (s *Service) CreateReceiptVoucher(ctx context.Context, party string, amount float64, date, method string) (string, error) {
	if method == "" {
		method = "Cash"
	}
	entries := []ledgerEntry{
		{Ledger: method, Amount: amount, DeemedPositive: true},
		{Ledger: party, Amount: -amount, DeemedPositive: false},
	}
	narration := fmt.Sprintf("Receipt from %s", party)
	detail := fmt.Sprintf("Party: %s\nAmount: %s\nDate: %s\nReceipt Method: %s",
		party, formatNumber(amount), date, method)
	return s.createVoucher(ctx, "Receipt", date, party, narration, entries, detail)
}

// CreateJournalVoucher records a general double entry between two
// ledgers. Journal vouchers carry no party ledger.
func (s *Service) CreateJournalVoucher(ctx context.Context, debitLedger, creditLedger string, amount float64, date, narration string) (string, error) {
	entries := []ledgerEntry{
		{Ledger: debitLedger, Amount: amount, DeemedPositive: true},
		{Ledger: creditLedger, Amount: -amount, DeemedPositive: false},
	}
	detail := fmt.Sprintf("Debit: %s - %s\nCredit: %s - %s\nDate: %s\nNarration: %s",
		debitLedger, formatNumber(amount), creditLedger, formatNumber(amount), date, narration)
	return s.createVoucher(ctx, "Journal", date, "", narration, entries, detail)
}

// BackupCompany asks the gateway to back up the active company to the
// given path. The gateway runs the backup itself; this only reports what
// the reply said.
func (s *Service) BackupCompany(ctx context.Context, backupPath string) (string, error) {
	raw, err := s.client.Post(ctx, backupRequest(backupPath))
	if err != nil {
		return backupError(err), nil
	}

	var status, message string
	doc, perr := Parse(raw)
	if perr != nil {
		return backupError(perr), nil
	}
	if els := FindAllByTag(doc, "STATUS"); len(els) > 0 {
		status, _ = ChildText(els[0])
	}
	if els := FindAllByTag(doc, "MESSAGE"); len(els) > 0 {
		message, _ = ChildText(els[0])
	}

	now := time.Now()
	stamp := now.UTC().Format("2006-01-02T1504")

	if containsAny(status, "success") {
		file := fmt.Sprintf(`%s\company_backup_%s.zip`, backupPath, stamp)
		return fmt.Sprintf("Company backup created successfully!\n\nBackup Details:\n"+
			"- Location: %s\n- Status: Completed\n- Compression: Enabled\n- Images: Included\n- Date: %s\n\n"+
			"Please verify the backup file exists at the specified location.",
			file, now.Format("02-01-2006 15:04:05")), nil
	}
	if containsAny(raw, "backup") {
		file := fmt.Sprintf(`%s\tally_backup_%s.zip`, backupPath, stamp)
		return fmt.Sprintf("Backup process initiated successfully!\n\nBackup Details:\n"+
			"- Target Path: %s\n- Status: In Progress/Completed\n- Compression: Enabled\n- Date: %s\n\n"+
			"Note: Please check Tally application for backup completion status.\n"+
			"Ensure the target directory has sufficient space and write permissions.",
			file, now.Format("02-01-2006 15:04:05")), nil
	}

	if message == "" {
		message = "Unknown error"
	}
	return fmt.Sprintf("Backup failed: %s\n\nPossible causes:\n"+
		"- Invalid backup path\n- Insufficient permissions\n- Disk space issues\n- Tally application not responding\n\n"+
		"Please verify the backup path and try again.", message), nil
}

func backupError(err error) string {
	return fmt.Sprintf("Error during backup operation: %v\n\nTroubleshooting:\n"+
		"1. Ensure Tally is running and accessible\n"+
		"2. Verify backup path exists and is writable\n"+
		"3. Check network connectivity to Tally server\n"+
		"4. Ensure sufficient disk space at backup location", err)
}
