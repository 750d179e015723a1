// Package grouper turns flat credential names into a display hierarchy.
//
// A name such as "work__mail__imap" is split on the group separator into
// segments and placed in a tree where every segment is a node. Storage is
// unaffected; the tree exists only to present the names. The package does
// no I/O.
package grouper

import (
	"fmt"
	"io"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultSeparator is the group separator used when none is given.
const DefaultSeparator = "__"

// Node is one segment of a grouped name. The root node has an empty label.
// Children keep the order in which their labels were first seen, unless the
// tree was produced by [Node.Sorted].
type Node struct {
	Label string

	// Terminal is set when a stored name ends at this node. A terminal node
	// may still have children when another name nests below it.
	Terminal bool

	children *orderedmap.OrderedMap[string, *Node]
}

func newNode(label string) *Node {
	return &Node{
		Label:    label,
		children: orderedmap.New[string, *Node](),
	}
}

// Group builds the tree for names split on sep. An empty sep means
// [DefaultSeparator].
func Group(names []string, sep string) *Node {
	if sep == "" {
		sep = DefaultSeparator
	}

	root := newNode("")
	for _, name := range names {
		cur := root
		for _, segment := range strings.Split(name, sep) {
			next, ok := cur.children.Get(segment)
			if !ok {
				next = newNode(segment)
				cur.children.Set(segment, next)
			}
			cur = next
		}
		cur.Terminal = true
	}

	return root
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Len() == 0
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	if n.children == nil {
		return 0
	}
	return n.children.Len()
}

// Child returns the direct child labelled label.
func (n *Node) Child(label string) (*Node, bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children.Get(label)
}

// Children returns the direct children in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, n.Len())
	if n.children == nil {
		return out
	}
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Labels returns the labels of the direct children in order.
func (n *Node) Labels() []string {
	children := n.Children()
	labels := make([]string, len(children))
	for i, child := range children {
		labels[i] = child.Label
	}
	return labels
}

// Sorted returns a deep copy of n with the children of every level ordered
// lexicographically by label. n is left untouched.
func (n *Node) Sorted() *Node {
	out := newNode(n.Label)
	out.Terminal = n.Terminal

	children := n.Children()
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Label < children[j].Label
	})
	for _, child := range children {
		out.children.Set(child.Label, child.Sorted())
	}

	return out
}

// WalkFunc is called by [Node.Walk] with the segment path from the root to
// node. Returning an error stops the walk.
type WalkFunc func(path []string, node *Node) error

// Walk visits every node below n depth-first, parents before children. The
// receiver itself is not visited.
func (n *Node) Walk(fn WalkFunc) error {
	return n.walk(nil, fn)
}

func (n *Node) walk(prefix []string, fn WalkFunc) error {
	for _, child := range n.Children() {
		path := append(prefix[:len(prefix):len(prefix)], child.Label)
		if err := fn(path, child); err != nil {
			return err
		}
		if err := child.walk(path, fn); err != nil {
			return err
		}
	}
	return nil
}

// JoinPath rebuilds the stored credential name from a segment path.
func JoinPath(path []string, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Join(path, sep)
}

// MarshalJSON renders the node as nested objects keyed by label, with an
// empty object for a leaf: {"a":{},"g":{"b":{}}}.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsLeaf() {
		return []byte("{}"), nil
	}
	return n.children.MarshalJSON()
}

// Format writes one line per node, indenting every level by two spaces.
// Groups are suffixed with the separator so that they read as prefixes.
func (n *Node) Format(w io.Writer, sep string) error {
	if sep == "" {
		sep = DefaultSeparator
	}
	return n.Walk(func(path []string, node *Node) error {
		indent := strings.Repeat("  ", len(path)-1)
		var err error
		switch {
		case node.IsLeaf():
			_, err = fmt.Fprintf(w, "%s%s\n", indent, node.Label)
		case node.Terminal:
			_, err = fmt.Fprintf(w, "%s%s%s (credential)\n", indent, node.Label, sep)
		default:
			_, err = fmt.Fprintf(w, "%s%s%s\n", indent, node.Label, sep)
		}
		return err
	})
}
