// Package xmltree parses XML documents into a generic element tree.
//
// Javadoc archives carry two kinds of XML: the small info descriptor,
// whose attributes this module reads directly, and per-class documents
// whose schema belongs to the consumer. A schema-free tree serves both.
package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Node is a single XML element with its attributes, character data,
// and child elements.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []*Node    `xml:",any"`
}

// Parse decodes the document read from r into its root element.
func Parse(r io.Reader) (*Node, error) {
	var root Node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	return &root, nil
}

// Name returns the element's local name.
func (n *Node) Name() string {
	return n.XMLName.Local
}

// Attr returns the value of the named attribute.
// ok is false when the attribute is not present.
func (n *Node) Attr(name string) (value string, ok bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given local name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.XMLName.Local == name {
			return c, true
		}
	}
	return nil, false
}
