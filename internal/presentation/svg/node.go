// Package svg constructs vector-graphics nodes and owns the
// presentation utilities shared by every chart renderer: element
// builders, number formatting and the tooltip surface. It knows
// nothing about what any value represents.
package svg

import (
	"html"
	"sort"
	"strings"
)

// Node is one vector-graphics element. Children are rendered in
// insertion order; attributes are rendered in sorted key order so the
// serialized output is deterministic and diffable.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
	Text     string
}

// NewNode creates an element with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag, Attrs: make(map[string]string)}
}

// Set assigns an attribute and returns the node for chaining.
func (n *Node) Set(key, value string) *Node {
	n.Attrs[key] = value
	return n
}

// Append adds child nodes and returns the receiver.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// PrimitiveCount reports the number of element nodes in the subtree,
// the receiver included.
func (n *Node) PrimitiveCount() int {
	count := 1
	for _, c := range n.Children {
		count += c.PrimitiveCount()
	}
	return count
}

// FindByID returns the first node in the subtree whose id attribute
// matches, or nil.
func (n *Node) FindByID(id string) *Node {
	if n.Attrs["id"] == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// Render serializes the subtree to markup.
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(n.Attrs[k]))
		b.WriteByte('"')
	}

	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	for _, c := range n.Children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
