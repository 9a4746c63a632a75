package geonetwork

import (
	"encoding/xml"
	"io"
	"strings"
)

// node is a generic XML element tree. ISO-19115 records nest the values we
// need under varying namespace prefixes and container elements, so the
// adapter matches elements by local name anywhere in the tree rather than by
// full path.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []node     `xml:",any"`
}

func decodeTree(r io.Reader) (*node, error) {
	var root node
	dec := xml.NewDecoder(r)
	// GeoNetwork exports occasionally declare legacy encodings.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// find returns the first descendant element with the given local name, in
// document order, or nil.
func (n *node) find(local string) *node {
	if n.XMLName.Local == local {
		return n
	}
	for i := range n.Nodes {
		if found := n.Nodes[i].find(local); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant element with the given local name, in
// document order.
func (n *node) findAll(local string) []*node {
	var result []*node
	if n.XMLName.Local == local {
		result = append(result, n)
	}
	for i := range n.Nodes {
		result = append(result, n.Nodes[i].findAll(local)...)
	}
	return result
}

// text joins the character data of an element and all its descendants, in
// document order, trimmed of surrounding whitespace.
func (n *node) text() string {
	var sb strings.Builder
	n.collectText(&sb)
	return strings.TrimSpace(sb.String())
}

func (n *node) collectText(sb *strings.Builder) {
	sb.WriteString(n.Text)
	for i := range n.Nodes {
		n.Nodes[i].collectText(sb)
	}
}

// attr returns the value of the named attribute, ignoring namespace.
func (n *node) attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// findText returns the joined text of the first element with the given local
// name, or "".
func (n *node) findText(local string) string {
	if found := n.find(local); found != nil {
		return found.text()
	}
	return ""
}

// findFields returns the whitespace-separated tokens of the first element
// with the given local name.
func (n *node) findFields(local string) []string {
	if found := n.find(local); found != nil {
		return strings.Fields(found.text())
	}
	return nil
}
