package tally

import (
	"fmt"
	"strconv"
	"strings"
)

// Request kinds used in the envelope header.
const (
	requestExport = "Export Data"
	requestImport = "Import Data"
	requestBackup = "Backup"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// xmlEscape makes caller-supplied text safe to interpolate into a request
// template. Ledger and party names routinely contain '&'.
func xmlEscape(s string) string {
	return escaper.Replace(s)
}

type staticVar struct {
	Name  string
	Value string
}

// exportRequest builds an Export Data envelope for the named report with
// optional static variables.
func exportRequest(report string, vars ...staticVar) string {
	var sv strings.Builder
	if len(vars) > 0 {
		sv.WriteString("\n                    <STATICVARIABLES>")
		for _, v := range vars {
			fmt.Fprintf(&sv, "\n                        <%s>%s</%s>", v.Name, xmlEscape(v.Value), v.Name)
		}
		sv.WriteString("\n                    </STATICVARIABLES>")
	}
	return fmt.Sprintf(`<ENVELOPE>
        <HEADER>
            <TALLYREQUEST>%s</TALLYREQUEST>
        </HEADER>
        <BODY>
            <EXPORTDATA>
                <REQUESTDESC>
                    <REPORTNAME>%s</REPORTNAME>%s
                </REQUESTDESC>
            </EXPORTDATA>
        </BODY>
    </ENVELOPE>`, requestExport, report, sv.String())
}

// ledgerEntry is one leg of a voucher to import.
type ledgerEntry struct {
	Ledger         string
	Amount         float64
	DeemedPositive bool
}

// voucherImportRequest builds an Import Data envelope creating one voucher.
// party may be empty (journal vouchers have no party ledger).
func voucherImportRequest(vchType, date, party, narration string, entries []ledgerEntry) string {
	var body strings.Builder
	fmt.Fprintf(&body, `<VOUCHER VCHTYPE="%s" ACTION="Create">`, xmlEscape(vchType))
	fmt.Fprintf(&body, "\n                            <DATE>%s</DATE>", xmlEscape(date))
	fmt.Fprintf(&body, "\n                            <VOUCHERTYPENAME>%s</VOUCHERTYPENAME>", xmlEscape(vchType))
	if party != "" {
		fmt.Fprintf(&body, "\n                            <PARTYLEDGERNAME>%s</PARTYLEDGERNAME>", xmlEscape(party))
	}
	fmt.Fprintf(&body, "\n                            <NARRATION>%s</NARRATION>", xmlEscape(narration))
	for _, e := range entries {
		deemed := "No"
		if e.DeemedPositive {
			deemed = "Yes"
		}
		fmt.Fprintf(&body, `
                            <ALLLEDGERENTRIES.LIST>
                                <LEDGERNAME>%s</LEDGERNAME>
                                <ISDEEMEDPOSITIVE>%s</ISDEEMEDPOSITIVE>
                                <AMOUNT>%s</AMOUNT>
                            </ALLLEDGERENTRIES.LIST>`,
			xmlEscape(e.Ledger), deemed, formatNumber(e.Amount))
	}
	body.WriteString("\n                        </VOUCHER>")
	return importRequest("Vouchers", body.String())
}

// ledgerImportRequest builds an Import Data envelope creating one ledger
// master under the given group.
func ledgerImportRequest(name, group string, openingBalance float64) string {
	body := fmt.Sprintf(`<LEDGER NAME="%s" ACTION="Create">
                            <NAME>%s</NAME>
                            <PARENT>%s</PARENT>
                            <OPENINGBALANCE>%s</OPENINGBALANCE>
                        </LEDGER>`,
		xmlEscape(name), xmlEscape(name), xmlEscape(group), formatNumber(openingBalance))
	return importRequest("All Masters", body)
}

// stockItemImportRequest builds an Import Data envelope creating one stock
// item master.
func stockItemImportRequest(name, unit string, rate float64) string {
	var body strings.Builder
	fmt.Fprintf(&body, `<STOCKITEM NAME="%s" ACTION="Create">`, xmlEscape(name))
	fmt.Fprintf(&body, "\n                            <NAME>%s</NAME>", xmlEscape(name))
	fmt.Fprintf(&body, "\n                            <BASEUNITS>%s</BASEUNITS>", xmlEscape(unit))
	if rate != 0 {
		fmt.Fprintf(&body, "\n                            <OPENINGRATE>%s/%s</OPENINGRATE>", formatNumber(rate), xmlEscape(unit))
	}
	body.WriteString("\n                        </STOCKITEM>")
	return importRequest("All Masters", body.String())
}

func importRequest(report, message string) string {
	return fmt.Sprintf(`<ENVELOPE>
        <HEADER>
            <TALLYREQUEST>%s</TALLYREQUEST>
        </HEADER>
        <BODY>
            <IMPORTDATA>
                <REQUESTDESC>
                    <REPORTNAME>%s</REPORTNAME>
                </REQUESTDESC>
                <REQUESTDATA>
                    <TALLYMESSAGE xmlns:UDF="TallyUDF">
                        %s
                    </TALLYMESSAGE>
                </REQUESTDATA>
            </IMPORTDATA>
        </BODY>
    </ENVELOPE>`, requestImport, report, message)
}

// backupRequest builds a Backup envelope targeting the given path.
func backupRequest(path string) string {
	return fmt.Sprintf(`<ENVELOPE>
        <HEADER>
            <TALLYREQUEST>%s</TALLYREQUEST>
        </HEADER>
        <BODY>
            <BACKUPDATA>
                <REQUESTDESC>
                    <BACKUPPATH>%s</BACKUPPATH>
                    <COMPRESSDATA>Yes</COMPRESSDATA>
                    <INCLUDEIMAGES>Yes</INCLUDEIMAGES>
                </REQUESTDESC>
            </BACKUPDATA>
        </BODY>
    </ENVELOPE>`, requestBackup, xmlEscape(path))
}

// formatNumber renders an amount the way the voucher templates expect:
// no trailing zeros, full precision.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
