package provider

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// parseXMLTree decodes an XML document into a nested map keyed by element
// name, mirroring how the provider's documents are consumed: the root
// element appears as a single top-level key whose value holds the child
// elements. Leaf elements decode to their trimmed text content. Repeated
// sibling elements keep the last occurrence; the provider never relies on
// element lists.
func parseXMLTree(data []byte) (map[string]interface{}, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// Provider responses occasionally declare legacy encodings; read them
	// as-is rather than failing.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	root := make(map[string]interface{})
	if err := decodeElementInto(dec, root); err != nil {
		return nil, err
	}
	if len(root) == 0 {
		return nil, fmt.Errorf("empty xml document")
	}
	return root, nil
}

// decodeElementInto consumes tokens until EOF or the enclosing end element,
// adding each child element to parent.
func decodeElementInto(dec *xml.Decoder, parent map[string]interface{}) error {
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child := make(map[string]interface{})
			if err := decodeElementInto(dec, child); err != nil {
				return err
			}
			if txt, ok := child[textKey]; ok && len(child) == 1 {
				parent[t.Name.Local] = txt
			} else {
				delete(child, textKey)
				parent[t.Name.Local] = child
			}
		case xml.EndElement:
			if s := strings.TrimSpace(text.String()); s != "" {
				parent[textKey] = s
			}
			return nil
		case xml.CharData:
			text.Write(t)
		}
	}
}

// textKey holds accumulated character data while an element decodes.
const textKey = "#text"

// selectRoot returns the first candidate child present in tree, falling
// back to the tree itself. The provider varies its root element name
// between API revisions, so callers probe the known candidates in order.
func selectRoot(tree map[string]interface{}, candidates ...string) map[string]interface{} {
	for _, name := range candidates {
		if sub, ok := tree[name].(map[string]interface{}); ok {
			return sub
		}
	}
	return tree
}
