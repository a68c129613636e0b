package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AttributesAsPlainKeys(t *testing.T) {
	doc, err := Parse(`<ENVELOPE><LEDGER NAME="Cash"><PARENT>Current Assets</PARENT></LEDGER></ENVELOPE>`)
	require.NoError(t, err)

	ledgers := FindAllByTag(doc, "LEDGER")
	require.Len(t, ledgers, 1)

	name, ok := Attr(ledgers[0], "NAME")
	require.True(t, ok)
	assert.Equal(t, "Cash", name)

	parent, ok := ChildText(ledgers[0], "PARENT")
	require.True(t, ok)
	assert.Equal(t, "Current Assets", parent)
}

func TestParse_NumericTextStaysString(t *testing.T) {
	doc, err := Parse(`<ENVELOPE><LEDGER><CLOSINGBALANCE>1000.00</CLOSINGBALANCE></LEDGER></ENVELOPE>`)
	require.NoError(t, err)

	ledgers := FindAllByTag(doc, "LEDGER")
	require.Len(t, ledgers, 1)

	bal, ok := ChildText(ledgers[0], "CLOSINGBALANCE")
	require.True(t, ok, "numeric element text must stay readable as a string")
	assert.Equal(t, "1000.00", bal)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(`<ENVELOPE><UNCLOSED>`)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "XML parsing failed")
}

func TestSerialize_RoundTrip(t *testing.T) {
	doc, err := Parse(`<ENVELOPE><STATUS>1</STATUS></ENVELOPE>`)
	require.NoError(t, err)

	out, err := Serialize(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "<STATUS>1</STATUS>")
}
