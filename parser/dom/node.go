// Package dom is the tree-construction stage's target: a minimal
// parent/sibling linked tree of Document, Element and Text nodes.
//
// https://dom.spec.whatwg.org/#node
package dom

import "github.com/davecgh/go-spew/spew"

// NodeType is the DOM node type code.
//
// https://dom.spec.whatwg.org/#dom-node-nodetype
type NodeType uint16

const (
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	DocumentNode NodeType = 9
)

// Node is the single tree structure for Document, Element and Text. Each
// node sets NodeType plus whichever payload field (LocalName/Attributes
// for Element, Data for Text) applies.
//
// Ownership is single-parent: a Node is owned by exactly one parent's
// child list. Sibling and parent pointers are non-owning back-references;
// no cycles are possible because siblings always share a parent.
//
// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType NodeType

	Parent          *Node
	FirstChild      *Node
	LastChild       *Node
	PreviousSibling *Node
	NextSibling     *Node

	// LocalName is meaningful only when NodeType == ElementNode.
	LocalName string
	// Attributes is meaningful only when NodeType == ElementNode. Order
	// matches the order attribute names were first opened in the source.
	Attributes []Attr

	// Data is meaningful only when NodeType == TextNode.
	Data string
}

// NewDocument returns an empty Document node.
func NewDocument() *Node {
	return &Node{NodeType: DocumentNode}
}

// NewElement returns an Element node with the given attributes and no
// children.
func NewElement(localName string, attrs []Attr) *Node {
	return &Node{NodeType: ElementNode, LocalName: localName, Attributes: attrs}
}

// NewText returns a Text node carrying data.
func NewText(data string) *Node {
	return &Node{NodeType: TextNode, Data: data}
}

// AppendChild takes ownership of child, sets its parent to n, and links it
// after n's current last child.
//
// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}

	child.Parent = n
	child.NextSibling = nil

	if n.LastChild != nil {
		n.LastChild.NextSibling = child
		child.PreviousSibling = n.LastChild
		n.LastChild = child
	} else {
		n.FirstChild = child
		n.LastChild = child
	}
}

// HasChildNodes reports whether n has at least one child.
func (n *Node) HasChildNodes() bool {
	return n.FirstChild != nil
}

// Free detaches and discards n's subtree. The walk is iterative (a plain
// stack over children) rather than recursive so that deep trees don't blow
// the goroutine stack during teardown.
func (n *Node) Free() {
	if n == nil {
		return
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for child := cur.FirstChild; child != nil; child = child.NextSibling {
			stack = append(stack, child)
		}

		cur.FirstChild = nil
		cur.LastChild = nil
		cur.Parent = nil
		cur.PreviousSibling = nil
		cur.NextSibling = nil
	}
}

// GoString renders the subtree rooted at n for debug logging.
func (n *Node) GoString() string {
	return spew.Sdump(n)
}
