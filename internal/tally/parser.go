package tally

import (
	"fmt"

	"github.com/clbanning/mxj/v2"
)

func init() {
	// Tally puts the entity name in a NAME attribute; merging attributes
	// into the element's own key space lets lookups use plain keys.
	mxj.PrependAttrWithHyphen(false)
}

// ParseError reports malformed XML from the Tally gateway.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("XML parsing failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts raw Tally XML into a nested map/slice tree. Attributes
// appear as plain keys next to child elements; when an attribute and a
// child share a name the two values coalesce into a list, which Attr and
// ChildText treat as absent. Element text stays a string; numeric-looking
// values are not coerced, so balance fields survive as written. The text
// of mixed elements lands under the "#text" key.
func Parse(xmlText string) (map[string]any, error) {
	m, err := mxj.NewMapXml([]byte(xmlText))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return map[string]any(m), nil
}

// Serialize renders a parsed tree back to XML. It is not on the request
// path (requests are built from templates) but kept for symmetry and tests.
func Serialize(node map[string]any) (string, error) {
	out, err := mxj.Map(node).Xml()
	if err != nil {
		return "", &ParseError{Err: err}
	}
	return string(out), nil
}
