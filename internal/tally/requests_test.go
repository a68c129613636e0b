package tally

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLEscape(t *testing.T) {
	assert.Equal(t, "M&amp;M Traders", xmlEscape("M&M Traders"))
	assert.Equal(t, "&lt;b&gt;", xmlEscape("<b>"))
	assert.Equal(t, "&quot;quoted&quot; &apos;s", xmlEscape(`"quoted" 's`))
}

func TestExportRequest(t *testing.T) {
	req := exportRequest("Trial Balance",
		staticVar{"SVFROMDATE", "01-04-2023"},
		staticVar{"SVTODATE", "31-03-2024"},
	)

	assert.Contains(t, req, "<TALLYREQUEST>Export Data</TALLYREQUEST>")
	assert.Contains(t, req, "<REPORTNAME>Trial Balance</REPORTNAME>")
	assert.Contains(t, req, "<SVFROMDATE>01-04-2023</SVFROMDATE>")
	assert.Contains(t, req, "<SVTODATE>31-03-2024</SVTODATE>")
}

func TestExportRequest_NoVars(t *testing.T) {
	req := exportRequest("List of Companies")
	assert.NotContains(t, req, "STATICVARIABLES")
}

func TestExportRequest_EscapesValues(t *testing.T) {
	req := exportRequest("Ledger Vouchers", staticVar{"LEDGERNAME", "A&B <Traders>"})
	assert.Contains(t, req, "<LEDGERNAME>A&amp;B &lt;Traders&gt;</LEDGERNAME>")
	assert.NotContains(t, req, "A&B <Traders>")
}

func TestVoucherImportRequest(t *testing.T) {
	req := voucherImportRequest("Sales", "15-05-2023", "Acme & Co", "Widgets", []ledgerEntry{
		{Ledger: "Acme & Co", Amount: 1500, DeemedPositive: true},
		{Ledger: "Sales", Amount: -1500, DeemedPositive: false},
	})

	assert.Contains(t, req, "<TALLYREQUEST>Import Data</TALLYREQUEST>")
	assert.Contains(t, req, "<REPORTNAME>Vouchers</REPORTNAME>")
	assert.Contains(t, req, `<TALLYMESSAGE xmlns:UDF="TallyUDF">`)
	assert.Contains(t, req, `<VOUCHER VCHTYPE="Sales" ACTION="Create">`)
	assert.Contains(t, req, "<PARTYLEDGERNAME>Acme &amp; Co</PARTYLEDGERNAME>")
	assert.Contains(t, req, "<AMOUNT>1500</AMOUNT>")
	assert.Contains(t, req, "<AMOUNT>-1500</AMOUNT>")

	// The debit leg comes before the credit leg.
	debit := strings.Index(req, "<ISDEEMEDPOSITIVE>Yes</ISDEEMEDPOSITIVE>")
	credit := strings.Index(req, "<ISDEEMEDPOSITIVE>No</ISDEEMEDPOSITIVE>")
	require.Greater(t, debit, -1)
	require.Greater(t, credit, -1)
	assert.Less(t, debit, credit)
}

func TestVoucherImportRequest_NoParty(t *testing.T) {
	req := voucherImportRequest("Journal", "15-05-2023", "", "Adjustment", nil)
	assert.NotContains(t, req, "PARTYLEDGERNAME")
	assert.Contains(t, req, "<NARRATION>Adjustment</NARRATION>")
}

func TestLedgerImportRequest(t *testing.T) {
	req := ledgerImportRequest("Acme & Co", "Sundry Debtors", 2500.50)

	assert.Contains(t, req, "<REPORTNAME>All Masters</REPORTNAME>")
	assert.Contains(t, req, `<LEDGER NAME="Acme &amp; Co" ACTION="Create">`)
	assert.Contains(t, req, "<PARENT>Sundry Debtors</PARENT>")
	assert.Contains(t, req, "<OPENINGBALANCE>2500.5</OPENINGBALANCE>")
}

func TestStockItemImportRequest(t *testing.T) {
	req := stockItemImportRequest("Bolt M8", "Nos", 12.5)
	assert.Contains(t, req, `<STOCKITEM NAME="Bolt M8" ACTION="Create">`)
	assert.Contains(t, req, "<BASEUNITS>Nos</BASEUNITS>")
	assert.Contains(t, req, "<OPENINGRATE>12.5/Nos</OPENINGRATE>")

	// Zero rate leaves the opening rate out.
	req = stockItemImportRequest("Bolt M8", "Nos", 0)
	assert.NotContains(t, req, "OPENINGRATE")
}

func TestBackupRequest(t *testing.T) {
	req := backupRequest(`C:\Backups\`)
	assert.Contains(t, req, "<TALLYREQUEST>Backup</TALLYREQUEST>")
	assert.Contains(t, req, `<BACKUPPATH>C:\Backups\</BACKUPPATH>`)
	assert.Contains(t, req, "<COMPRESSDATA>Yes</COMPRESSDATA>")
	assert.Contains(t, req, "<INCLUDEIMAGES>Yes</INCLUDEIMAGES>")
}
