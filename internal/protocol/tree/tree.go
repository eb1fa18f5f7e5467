// Package tree reads and writes typed values on an XML element tree.
//
// Every read helper takes the stanza label and the parse-wide diagnostics so a
// single walk over a stanza reports all of its problems in order.
package tree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/danmuck/openlink/internal/protocol"
)

// Descend follows a chain of child names from node. Any missing link yields nil.
func Descend(node *etree.Element, names ...string) *etree.Element {
	current := node
	for _, name := range names {
		if current == nil {
			return nil
		}
		current = current.SelectElement(name)
	}
	return current
}

// ChildNS returns the first child named tag that lives in namespace ns.
func ChildNS(node *etree.Element, tag, ns string) *etree.Element {
	if node == nil {
		return nil
	}
	for _, child := range node.SelectElements(tag) {
		if child.NamespaceURI() == ns {
			return child
		}
	}
	return nil
}

// Text returns the trimmed, non-empty text of the named child of node.
func Text(node *etree.Element, child string, required bool, label string, d *protocol.Diagnostics) (string, bool) {
	if el := Descend(node, child); el != nil {
		if text := strings.TrimSpace(el.Text()); text != "" {
			return text, true
		}
	}
	if required {
		d.MissingField(label, child)
	}
	return "", false
}

// OwnText returns the trimmed text of node itself; it never reports.
func OwnText(node *etree.Element) (string, bool) {
	if node == nil {
		return "", false
	}
	text := strings.TrimSpace(node.Text())
	return text, text != ""
}

// Attr returns the non-empty value of attribute name on node.
func Attr(node *etree.Element, name string, required bool, label string, d *protocol.Diagnostics) (string, bool) {
	if node != nil {
		if value := node.SelectAttrValue(name, ""); value != "" {
			return value, true
		}
	}
	if required {
		d.MissingAttribute(label, name)
	}
	return "", false
}
