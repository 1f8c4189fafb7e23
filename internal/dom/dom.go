// Package dom is the shared tree representation produced by the HTML parser
// and consumed downstream by the CLI's tree printer and the render
// collaborator. It corresponds to the DomModel component of the spec this
// module implements.
//
// The Rust original this module is adapted from (saba_core's
// renderer/dom/node.rs) represents parent/previous-sibling/last-child/window
// as Weak references, because Rc reference counting cannot collect cycles on
// its own. Go's garbage collector traces and collects cycles, so that
// distinction is documentation only here: every field is a plain pointer,
// and dropping a Window's last reference reclaims its whole tree regardless
// of the cycles in it. first_child/next_sibling remain the edges callers
// should think of as "owning" when reasoning about tree shape.
package dom

import "fmt"

// ElementKind is the closed set of element names this module understands.
// Any other tag name is a parse error the HTML parser handles per its
// insertion-mode table rather than by extending this set.
type ElementKind int

const (
	Html ElementKind = iota
	Head
	Style
	Script
	Body
	P
	H1
	H2
	A
)

func (k ElementKind) String() string {
	switch k {
	case Html:
		return "html"
	case Head:
		return "head"
	case Style:
		return "style"
	case Script:
		return "script"
	case Body:
		return "body"
	case P:
		return "p"
	case H1:
		return "h1"
	case H2:
		return "h2"
	case A:
		return "a"
	default:
		return "unknown"
	}
}

// ElementKindFromString converts a lowercase tag name into an ElementKind.
// It returns an error for any tag outside the closed set, matching the
// ElementKind::from_str behavior in the original.
func ElementKindFromString(s string) (ElementKind, error) {
	switch s {
	case "html":
		return Html, nil
	case "head":
		return Head, nil
	case "style":
		return Style, nil
	case "script":
		return Script, nil
	case "body":
		return Body, nil
	case "p":
		return P, nil
	case "h1":
		return H1, nil
	case "h2":
		return H2, nil
	case "a":
		return A, nil
	default:
		return 0, fmt.Errorf("unimplemented element name: %q", s)
	}
}

// Element is an ElementKind together with the attributes its start tag
// carried.
type Element struct {
	kind       ElementKind
	attributes []Attribute
}

// Attribute mirrors html.Attribute without importing the html package, so
// dom has no dependency on the tokenizer that builds these trees.
type Attribute struct {
	Name  string
	Value string
}

// NewElement builds an Element from a tag name and its attributes. It
// panics if name is outside the closed ElementKind set — callers (the HTML
// parser) are expected to have already routed unknown tags through the
// insertion-mode table, per spec, before ever reaching this constructor.
func NewElement(name string, attributes []Attribute) Element {
	kind, err := ElementKindFromString(name)
	if err != nil {
		panic(err)
	}
	return Element{kind: kind, attributes: attributes}
}

func (e Element) Kind() ElementKind       { return e.kind }
func (e Element) Attributes() []Attribute { return append([]Attribute(nil), e.attributes...) }

// IsBlockElement reports whether this element is one of the block-level
// kinds the spec names (body, h1, h2, p); everything else in the closed set
// is treated as inline.
func (e Element) IsBlockElement() bool {
	switch e.kind {
	case Body, H1, H2, P:
		return true
	default:
		return false
	}
}

// NodeKind is the sum type a Node carries. Equality for Element compares
// only Kind (attribute-insensitive) and equality for Text compares only the
// fact that it is text (content-insensitive) — this is a deliberate,
// spec-mandated design choice used by tests to compare DOM shape rather than
// DOM content.
type NodeKind struct {
	tag     nodeTag
	element Element
	text    string
}

type nodeTag int

const (
	DocumentTag nodeTag = iota
	ElementTag
	TextTag
)

func DocumentKind() NodeKind              { return NodeKind{tag: DocumentTag} }
func ElementKindOf(e Element) NodeKind    { return NodeKind{tag: ElementTag, element: e} }
func TextKindOf(s string) NodeKind        { return NodeKind{tag: TextTag, text: s} }
func (nk NodeKind) IsDocument() bool      { return nk.tag == DocumentTag }
func (nk NodeKind) IsElement() bool       { return nk.tag == ElementTag }
func (nk NodeKind) IsText() bool          { return nk.tag == TextTag }
func (nk NodeKind) Element() Element      { return nk.element }
func (nk NodeKind) Text() string          { return nk.text }

// Equal implements the shape-only equality spec.md §3 mandates.
func (nk NodeKind) Equal(other NodeKind) bool {
	if nk.tag != other.tag {
		return false
	}
	switch nk.tag {
	case ElementTag:
		return nk.element.kind == other.element.kind
	default:
		return true
	}
}

// Node is a cell in a doubly-linked sibling tree. See the package doc for
// why back-references are plain pointers rather than weak handles.
type Node struct {
	Kind NodeKind

	window          *Window
	parent          *Node
	firstChild      *Node
	lastChild       *Node
	previousSibling *Node
	nextSibling     *Node
}

func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

func (n *Node) GetElement() (Element, bool) {
	if n.Kind.IsElement() {
		return n.Kind.element, true
	}
	return Element{}, false
}

func (n *Node) GetElementKind() (ElementKind, bool) {
	if n.Kind.IsElement() {
		return n.Kind.element.kind, true
	}
	return 0, false
}

func (n *Node) SetWindow(w *Window)    { n.window = w }
func (n *Node) Window() *Window        { return n.window }
func (n *Node) SetParent(p *Node)      { n.parent = p }
func (n *Node) Parent() *Node          { return n.parent }
func (n *Node) SetFirstChild(c *Node)  { n.firstChild = c }
func (n *Node) FirstChild() *Node      { return n.firstChild }
func (n *Node) SetLastChild(c *Node)   { n.lastChild = c }
func (n *Node) LastChild() *Node       { return n.lastChild }
func (n *Node) SetPreviousSibling(s *Node) { n.previousSibling = s }
func (n *Node) PreviousSibling() *Node     { return n.previousSibling }
func (n *Node) SetNextSibling(s *Node)     { n.nextSibling = s }
func (n *Node) NextSibling() *Node         { return n.nextSibling }

// Window owns exactly one root Document node. Every Node it contains holds a
// back-reference to it.
type Window struct {
	document *Node
}

// NewWindow creates a Window with a fresh Document root and wires the root's
// back-reference to it.
func NewWindow() *Window {
	w := &Window{document: NewNode(DocumentKind())}
	w.document.SetWindow(w)
	return w
}

func (w *Window) Document() *Node { return w.document }
