package html

import "minibrowser/internal/dom"

// InsertionMode is the state variable of the tree-construction automaton,
// spec.md §4.2.
type InsertionMode int

const (
	Initial InsertionMode = iota
	BeforeHtml
	BeforeHead
	InHead
	AfterHead
	InBody
	Text
	AfterBody
	AfterAfterBody
)

// Parser drives the insertion-mode automaton over a Tokenizer's output,
// mutating a dom.Window into existence. Adapted from saba_core's
// renderer/html/parser.rs.
type Parser struct {
	window                *dom.Window
	mode                  InsertionMode
	originalInsertionMode InsertionMode
	stack                 []*dom.Node
	t                     *Tokenizer
}

// NewParser constructs a Parser that will read tokens from t.
func NewParser(t *Tokenizer) *Parser {
	return &Parser{
		window: dom.NewWindow(),
		mode:   Initial,
		t:      t,
	}
}

func (p *Parser) createElement(tag string, attrs []Attribute) *dom.Node {
	return dom.NewNode(dom.ElementKindOf(dom.NewElement(tag, toDomAttributes(attrs))))
}

func toDomAttributes(attrs []Attribute) []dom.Attribute {
	out := make([]dom.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = dom.Attribute{Name: a.Name, Value: a.Value}
	}
	return out
}

func (p *Parser) createChar(c rune) *dom.Node {
	return dom.NewNode(dom.TextKindOf(string(c)))
}

// current returns the top of the stack of open elements, or the Document
// node if the stack is empty — the "current insertion target" spec.md §4.2
// names.
func (p *Parser) current() *dom.Node {
	if len(p.stack) == 0 {
		return p.window.Document()
	}
	return p.stack[len(p.stack)-1]
}

func appendChild(parent, node *dom.Node) {
	if parent.FirstChild() != nil {
		last := parent.FirstChild()
		for last.NextSibling() != nil {
			last = last.NextSibling()
		}
		last.SetNextSibling(node)
		node.SetPreviousSibling(last)
	} else {
		parent.SetFirstChild(node)
	}
	parent.SetLastChild(node)
	node.SetParent(parent)
}

func (p *Parser) insertElement(tag string, attrs []Attribute) {
	target := p.current()
	node := p.createElement(tag, attrs)
	appendChild(target, node)
	p.stack = append(p.stack, node)
}

// insertChar implements spec.md §4.2's character-insertion algorithm: flow
// consecutive characters into the current Text node if there is one,
// otherwise start a new one (dropping whitespace when nothing is open yet)
// and push it onto the stack so the next character lands in the same node.
func (p *Parser) insertChar(c rune) {
	if len(p.stack) == 0 {
		return
	}
	top := p.stack[len(p.stack)-1]
	if top.Kind.IsText() {
		top.Kind = dom.TextKindOf(top.Kind.Text() + string(c))
		return
	}

	if c == '\n' || c == ' ' {
		return
	}

	node := p.createChar(c)
	appendChild(top, node)
	p.stack = append(p.stack, node)
}

// popCurrentNode pops the top of the stack only if it is an element of the
// given kind, reporting whether it did.
func (p *Parser) popCurrentNode(kind dom.ElementKind) bool {
	if len(p.stack) == 0 {
		return false
	}
	top := p.stack[len(p.stack)-1]
	if k, ok := top.GetElementKind(); ok && k == kind {
		p.stack = p.stack[:len(p.stack)-1]
		return true
	}
	return false
}

// popUntil pops elements off the stack until one of the given kind has been
// popped. It is a programming error to call it when no such element is on
// the stack, per spec.md §4.2.
func (p *Parser) popUntil(kind dom.ElementKind) {
	if !p.containInStack(kind) {
		panic("stack doesn't have an element " + kind.String())
	}
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if k, ok := top.GetElementKind(); ok && k == kind {
			return
		}
	}
}

func (p *Parser) containInStack(kind dom.ElementKind) bool {
	for _, n := range p.stack {
		if k, ok := n.GetElementKind(); ok && k == kind {
			return true
		}
	}
	return false
}

func isWhitespace(c rune) bool { return c == ' ' || c == '\n' }

// ConstructTree drives tokens through the insertion-mode table until Eof (or
// the token stream ends) and returns the completed Window.
func (p *Parser) ConstructTree() *dom.Window {
	tok, ok := p.t.Next()

	for ok {
		switch p.mode {
		case Initial:
			if tok.Type == CharToken {
				tok, ok = p.t.Next()
				continue
			}
			p.mode = BeforeHtml
			continue

		case BeforeHtml:
			switch tok.Type {
			case CharToken:
				if isWhitespace(tok.Char) {
					tok, ok = p.t.Next()
					continue
				}
			case StartTagToken:
				if tok.Tag == "html" {
					p.insertElement(tok.Tag, tok.Attributes)
					p.mode = BeforeHead
					tok, ok = p.t.Next()
					continue
				}
			case EOFToken:
				return p.window
			}
			p.insertElement("html", nil)
			p.mode = BeforeHead
			continue

		case BeforeHead:
			switch tok.Type {
			case CharToken:
				if isWhitespace(tok.Char) {
					tok, ok = p.t.Next()
					continue
				}
			case StartTagToken:
				if tok.Tag == "head" {
					p.insertElement(tok.Tag, tok.Attributes)
					p.mode = InHead
					tok, ok = p.t.Next()
					continue
				}
			case EOFToken:
				return p.window
			}
			p.insertElement("head", nil)
			p.mode = InHead
			continue

		case InHead:
			switch tok.Type {
			case CharToken:
				if isWhitespace(tok.Char) {
					p.insertChar(tok.Char)
					tok, ok = p.t.Next()
					continue
				}
			case StartTagToken:
				if tok.Tag == "style" || tok.Tag == "script" {
					p.insertElement(tok.Tag, tok.Attributes)
					if tok.Tag == "script" {
						p.t.EnterScriptData()
					}
					p.originalInsertionMode = p.mode
					p.mode = Text
					tok, ok = p.t.Next()
					continue
				}
				if tok.Tag == "body" {
					p.popUntil(dom.Head)
					p.mode = AfterHead
					continue
				}
				if _, err := dom.ElementKindFromString(tok.Tag); err == nil {
					p.popUntil(dom.Head)
					p.mode = AfterHead
					continue
				}
			case EndTagToken:
				if tok.Tag == "head" {
					p.mode = AfterHead
					tok, ok = p.t.Next()
					p.popUntil(dom.Head)
					continue
				}
			case EOFToken:
				return p.window
			}
			tok, ok = p.t.Next()
			continue

		case AfterHead:
			switch tok.Type {
			case CharToken:
				if isWhitespace(tok.Char) {
					p.insertChar(tok.Char)
					tok, ok = p.t.Next()
					continue
				}
			case StartTagToken:
				if tok.Tag == "body" {
					p.insertElement(tok.Tag, tok.Attributes)
					tok, ok = p.t.Next()
					p.mode = InBody
					continue
				}
			case EOFToken:
				return p.window
			}
			p.insertElement("body", nil)
			p.mode = InBody
			continue

		case InBody:
			switch tok.Type {
			case CharToken:
				p.insertChar(tok.Char)
				tok, ok = p.t.Next()
				continue
			case StartTagToken:
				switch tok.Tag {
				case "p":
					p.insertElement(tok.Tag, tok.Attributes)
					tok, ok = p.t.Next()
					continue
				default:
					tok, ok = p.t.Next()
				}
			case EndTagToken:
				switch tok.Tag {
				case "body":
					p.mode = AfterBody
					tok, ok = p.t.Next()
					if !p.containInStack(dom.Body) {
						continue
					}
					p.popUntil(dom.Body)
					continue
				case "html":
					if p.popCurrentNode(dom.Body) {
						p.mode = AfterBody
						if !p.popCurrentNode(dom.Html) {
							panic("expected html element at top of stack")
						}
					} else {
						tok, ok = p.t.Next()
					}
					continue
				default:
					tok, ok = p.t.Next()
				}
			case EOFToken:
				return p.window
			default:
				tok, ok = p.t.Next()
			}

		case Text:
			switch tok.Type {
			case EOFToken:
				return p.window
			case EndTagToken:
				if tok.Tag == "style" {
					p.popUntil(dom.Style)
					p.mode = p.originalInsertionMode
					tok, ok = p.t.Next()
					continue
				}
				if tok.Tag == "script" {
					p.popUntil(dom.Script)
					p.mode = p.originalInsertionMode
					tok, ok = p.t.Next()
					continue
				}
			case CharToken:
				p.insertChar(tok.Char)
				tok, ok = p.t.Next()
				continue
			}
			p.mode = p.originalInsertionMode

		case AfterBody:
			switch tok.Type {
			case CharToken:
				tok, ok = p.t.Next()
				continue
			case EndTagToken:
				if tok.Tag == "html" {
					p.mode = AfterAfterBody
					tok, ok = p.t.Next()
					continue
				}
			case EOFToken:
				return p.window
			}
			p.mode = InBody

		case AfterAfterBody:
			switch tok.Type {
			case CharToken:
				tok, ok = p.t.Next()
				continue
			case EOFToken:
				return p.window
			}
			p.mode = InBody
		}
	}

	return p.window
}
