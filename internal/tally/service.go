package tally

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Service implements the tool operations: each method builds a request,
// posts it, extracts rows from the reply and renders a text report or
// confirmation. Transport and parse failures are downgraded to readable
// text results, so callers see prose, never a hard failure.
type Service struct {
	client *Client
	log    *logrus.Entry
}

// NewService creates a Service backed by the given gateway client.
func NewService(client *Client) *Service {
	return &Service{
		client: client,
		log:    logrus.WithField("component", "service"),
	}
}

// fetch posts a request and parses the reply into a tree.
func (s *Service) fetch(ctx context.Context, reqXML string) (map[string]any, error) {
	raw, err := s.client.Post(ctx, reqXML)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// responseError is the uniform textual downgrade for read operations.
func responseError(err error) string {
	return fmt.Sprintf("Error parsing Tally response: %v", err)
}

// DayBook lists the vouchers recorded on one date.
func (s *Service) DayBook(ctx context.Context, date string) (string, error) {
	req := exportRequest("DayBook",
		staticVar{"SVFROMDATE", date},
		staticVar{"SVTODATE", date},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	vouchers := FindAllByTag(doc, "VOUCHER")
	if len(vouchers) == 0 {
		return "No entries found in the daybook for this date.", nil
	}

	r := NewReport(fmt.Sprintf("Daybook for %s:", date))
	sec := r.Section("")
	for _, v := range vouchers {
		vtype := textOr(v, "N/A", "VOUCHERTYPENAME")
		vnum := textOr(v, "N/A", "VOUCHERNUMBER")
		party := textOr(v, "N/A", "PARTYLEDGERNAME")
		amt := textOr(v, "N/A", "AMOUNT")
		sec.Addf("- %s (%s): %s, Amount: %s", vtype, vnum, party, amt)
	}
	return r.Render(), nil
}

// LedgerVouchers lists vouchers for a ledger within a date range.
func (s *Service) LedgerVouchers(ctx context.Context, ledgerName, fromDate, toDate string) (string, error) {
	req := exportRequest("Ledger Vouchers",
		staticVar{"LEDGERNAME", ledgerName},
		staticVar{"SVFROMDATE", fromDate},
		staticVar{"SVTODATE", toDate},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	vouchers := FindAllByTag(doc, "VOUCHER")
	if len(vouchers) == 0 {
		return fmt.Sprintf("No vouchers found for ledger '%s' in this period.", ledgerName), nil
	}

	r := NewReport(fmt.Sprintf("Vouchers for %s from %s to %s:", ledgerName, fromDate, toDate))
	sec := r.Section("")
	for _, v := range vouchers {
		vtype := textOr(v, "N/A", "VOUCHERTYPENAME")
		vnum := textOr(v, "N/A", "VOUCHERNUMBER")
		amt := textOr(v, "N/A", "AMOUNT")
		sec.Addf("- %s (%s), Amount: %s", vtype, vnum, amt)
	}
	return r.Render(), nil
}

// AllLedgers lists every ledger master.
func (s *Service) AllLedgers(ctx context.Context) (string, error) {
	req := exportRequest("List of Accounts",
		staticVar{"ACCOUNTTYPE", "All Ledger Masters"},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	ledgers := FindAllByTag(doc, "LEDGER")
	if len(ledgers) == 0 {
		return "No ledgers found.", nil
	}

	r := NewReport("List of all ledgers:")
	sec := r.Section("")
	for _, l := range ledgers {
		sec.Addf("- %s", attrOr(l, "NAME", "N/A"))
	}
	return r.Render(), nil
}

// CompanyInfo lists the companies known to the gateway.
func (s *Service) CompanyInfo(ctx context.Context) (string, error) {
	req := exportRequest("List of Companies")
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	companies := FindAllByTag(doc, "COMPANY")
	if len(companies) == 0 {
		return "No company information found.", nil
	}

	r := NewReport("Company Information:")
	sec := r.Section("")
	for _, c := range companies {
		sec.Addf("- Company: %s", attrOr(c, "NAME", "N/A"))
	}
	return r.Render(), nil
}

// AllGroups lists every account group with its parent.
func (s *Service) AllGroups(ctx context.Context) (string, error) {
	req := exportRequest("List of Accounts",
		staticVar{"ACCOUNTTYPE", "All Groups"},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	groups := FindAllByTag(doc, "GROUP")
	if len(groups) == 0 {
		return "No groups found.", nil
	}

	r := NewReport("List of all groups:")
	sec := r.Section("")
	for _, g := range groups {
		parent := textOr(g, "Primary", "PARENT")
		sec.Addf("- %s (Parent: %s)", attrOr(g, "NAME", "N/A"), parent)
	}
	return r.Render(), nil
}

// AllStockItems lists every stock item with its base unit.
func (s *Service) AllStockItems(ctx context.Context) (string, error) {
	req := exportRequest("List of Stock Items")
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	items := FindAllByTag(doc, "STOCKITEM")
	if len(items) == 0 {
		return "No stock items found.", nil
	}

	r := NewReport("List of all stock items:")
	sec := r.Section("")
	for _, item := range items {
		unit := textOr(item, "N/A", "BASEUNITS")
		sec.Addf("- %s (Unit: %s)", attrOr(item, "NAME", "N/A"), unit)
	}
	return r.Render(), nil
}

// VoucherTypes lists every voucher type with its parent.
func (s *Service) VoucherTypes(ctx context.Context) (string, error) {
	req := exportRequest("List of Voucher Types")
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	vtypes := FindAllByTag(doc, "VOUCHERTYPE")
	if len(vtypes) == 0 {
		return "No voucher types found.", nil
	}

	r := NewReport("List of all voucher types:")
	sec := r.Section("")
	for _, vt := range vtypes {
		parent := textOr(vt, "N/A", "PARENT")
		sec.Addf("- %s (Parent: %s)", attrOr(vt, "NAME", "N/A"), parent)
	}
	return r.Render(), nil
}

// VoucherDetails shows one voucher with its ledger entries.
func (s *Service) VoucherDetails(ctx context.Context, voucherNumber, voucherType string) (string, error) {
	req := exportRequest("Voucher Register",
		staticVar{"VOUCHERTYPENAME", voucherType},
		staticVar{"VOUCHERNUMBER", voucherNumber},
	)
	doc, err := s.fetch(ctx, req)
	if err != nil {
		return responseError(err), nil
	}

	vouchers := FindAllByTag(doc, "VOUCHER")
	if len(vouchers) == 0 {
		return fmt.Sprintf("No voucher found with number '%s' of type '%s'.", voucherNumber, voucherType), nil
	}

	r := NewReport(fmt.Sprintf("Voucher Details - %s #%s:", voucherType, voucherNumber))
	for _, v := range vouchers {
		sec := r.Section("")
		sec.Addf("Date: %s", textOr(v, "N/A", "DATE"))
		sec.Addf("Party: %s", textOr(v, "N/A", "PARTYLEDGERNAME"))
		sec.Addf("Amount: %s", textOr(v, "N/A", "AMOUNT"))
		sec.Addf("Narration: %s", textOr(v, "N/A", "NARRATION"))
		sec.Blank()

		entries := FindAllByTag(v, "ALLLEDGERENTRIES.LIST")
		if len(entries) == 0 {
			continue
		}
		sec.Add("Ledger Entries:")
		table := sec.Table(
			Column{"Ledger", 25, AlignLeft},
			Column{"Debit", 12, AlignLeft},
			Column{"Credit", 12, AlignLeft},
		)
		for _, e := range entries {
			name, nameOK := ChildText(e, "LEDGERNAME")
			amtText, amtOK := ChildText(e, "AMOUNT")
			if !nameOK || !amtOK {
				continue
			}
			amt := amount(amtText)
			deemed, _ := ChildText(e, "ISDEEMEDPOSITIVE")
			if deemed == "Yes" {
				table.AddRow(trunc(name, 24), money(amt), "")
			} else {
				table.AddRow(trunc(name, 24), "", money(abs(amt)))
			}
		}
	}
	return r.Render(), nil
}

// textOr resolves the first non-empty child text among tags, else
// fallback. An empty leaf falls through like a missing one.
func textOr(el any, fallback string, tags ...string) string {
	for _, tag := range tags {
		if s, ok := ChildText(el, tag); ok && s != "" {
			return s
		}
	}
	return fallback
}

// attrOr resolves an attribute, else fallback.
func attrOr(el any, name, fallback string) string {
	if s, ok := Attr(el, name); ok {
		return s
	}
	return fallback
}

// amount parses a Tally numeric field leniently: the leading numeric run
// counts, anything after it (currency marks, Dr/Cr suffixes) is ignored,
// and an unparsable value is 0 so totals never see an absent field.
func amount(s string) float64 {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	for i < len(s) && ((s[i] >= '0' && s[i] <= '9') || s[i] == '.') {
		i++
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0
	}
	return v
}

// money formats currency with two decimals.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// pct formats a percentage with one decimal.
func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// parseDayFirst reads an external DD-MM-YYYY date (extra characters past
// the date are ignored) by reversing it to YYYY-MM-DD.
func parseDayFirst(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return time.Parse("2006-01-02", parts[2]+"-"+parts[1]+"-"+parts[0])
}

// daysBetween is the whole-day difference, floor of milliseconds per day.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Milliseconds() / 86400000)
}

// containsAny reports whether the lowercase form of s contains one of the
// keywords. The classification reports key on ledger-name keywords.
func containsAny(s string, keywords ...string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
