package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"minibrowser/internal/dom"
)

func TestConstructTreeEmpty(t *testing.T) {
	// The tokenizer yields only an EOFToken for empty input, so the tree
	// constructor returns from BeforeHtml before inserting anything — the
	// Document stays empty.
	window := NewParser(NewTokenizer("")).ConstructTree()

	doc := window.Document()
	assert.Nil(t, doc.FirstChild())
}

func TestConstructTreeBodyAndP(t *testing.T) {
	window := NewParser(NewTokenizer("<html><head></head><body><p>hi</p></body></html>")).ConstructTree()

	htmlNode := window.Document().FirstChild()
	head := htmlNode.FirstChild()
	body := head.NextSibling()
	bodyKind, _ := body.GetElementKind()
	assert.Equal(t, dom.Body, bodyKind)

	p := body.FirstChild()
	if !assert.NotNil(t, p) {
		return
	}
	pKind, _ := p.GetElementKind()
	assert.Equal(t, dom.P, pKind)

	text := p.FirstChild()
	if !assert.NotNil(t, text) {
		return
	}
	assert.True(t, text.Kind.IsText())
	assert.Equal(t, "hi", text.Kind.Text())
	assert.Nil(t, text.NextSibling())
}

func TestConstructTreeSiblingLinks(t *testing.T) {
	// InBody does not close <p> on </p>, so consecutive paragraphs nest
	// rather than become siblings; the head's style/script children are
	// each popped on their end tag and so sit side by side.
	window := NewParser(NewTokenizer("<html><head><style>a</style><script>b</script><style>c</style></head><body></body></html>")).ConstructTree()

	head := window.Document().FirstChild().FirstChild()

	var siblings []*dom.Node
	for n := head.FirstChild(); n != nil; n = n.NextSibling() {
		siblings = append(siblings, n)
	}
	if !assert.Len(t, siblings, 3) {
		return
	}
	for i, n := range siblings {
		if i > 0 {
			assert.Same(t, siblings[i-1], n.PreviousSibling(), "sibling %d previous_sibling.next_sibling invariant", i)
		}
		if i < len(siblings)-1 {
			assert.Same(t, siblings[i+1], n.NextSibling())
		}
	}
	assert.Same(t, siblings[2], head.LastChild())
}

func TestConstructTreeScriptGoesToTextMode(t *testing.T) {
	window := NewParser(NewTokenizer("<html><head><script>1+1;</script></head><body></body></html>")).ConstructTree()

	head := window.Document().FirstChild().FirstChild()
	script := head.FirstChild()
	if !assert.NotNil(t, script) {
		return
	}
	scriptKind, _ := script.GetElementKind()
	assert.Equal(t, dom.Script, scriptKind)

	text := script.FirstChild()
	if !assert.NotNil(t, text) {
		return
	}
	assert.True(t, text.Kind.IsText())
	assert.Equal(t, "1+1;", text.Kind.Text())
}

func TestNodeKindShapeEquality(t *testing.T) {
	a := dom.ElementKindOf(dom.NewElement("p", []dom.Attribute{{Name: "id", Value: "x"}}))
	b := dom.ElementKindOf(dom.NewElement("p", nil))
	assert.True(t, a.Equal(b))

	c := dom.ElementKindOf(dom.NewElement("a", nil))
	assert.False(t, a.Equal(c))

	assert.True(t, dom.TextKindOf("hi").Equal(dom.TextKindOf("bye")))
	assert.False(t, dom.TextKindOf("hi").Equal(a))
}
