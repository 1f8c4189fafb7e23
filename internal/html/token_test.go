package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(t *Tokenizer) []Token {
	var out []Token
	for {
		tok, ok := t.Next()
		if !ok {
			break
		}
		out = append(out, tok)
		if tok.Type == EOFToken {
			break
		}
	}
	return out
}

func TestTokenizerEmpty(t *testing.T) {
	toks := drain(NewTokenizer(""))
	assert.Equal(t, []Token{{Type: EOFToken}}, toks)
}

func TestTokenizerStartAndEndTag(t *testing.T) {
	toks := drain(NewTokenizer("<body></body>"))
	assert.Equal(t, []Token{
		{Type: StartTagToken, Tag: "body"},
		{Type: EndTagToken, Tag: "body"},
		{Type: EOFToken},
	}, toks)
}

func TestTokenizerAttributes(t *testing.T) {
	toks := drain(NewTokenizer(`<p class="a" id='b' disabled>`))
	want := Token{
		Type: StartTagToken,
		Tag:  "p",
		Attributes: []Attribute{
			{Name: "class", Value: "a"},
			{Name: "id", Value: "b"},
			{Name: "disabled", Value: ""},
		},
	}
	assert.Equal(t, want, toks[0])
	assert.Equal(t, EOFToken, toks[1].Type)
}

func TestTokenizerSelfClosingTag(t *testing.T) {
	toks := drain(NewTokenizer(`<img/>`))
	assert.Equal(t, Token{Type: StartTagToken, Tag: "img", SelfClosing: true}, toks[0])
}

func TestTokenizerScriptTag(t *testing.T) {
	tok := NewTokenizer("<script>1+1;</script>")
	got, ok := tok.Next()
	assert.True(t, ok)
	assert.Equal(t, Token{Type: StartTagToken, Tag: "script"}, got)

	tok.EnterScriptData()
	var chars []rune
	for {
		c, ok := tok.Next()
		assert.True(t, ok)
		if c.Type != CharToken {
			assert.Equal(t, Token{Type: EndTagToken, Tag: "script"}, c)
			break
		}
		chars = append(chars, c.Char)
	}
	assert.Equal(t, "1+1;", string(chars))
}

func TestTokenizerCharData(t *testing.T) {
	toks := drain(NewTokenizer("hi"))
	assert.Equal(t, []Token{
		{Type: CharToken, Char: 'h'},
		{Type: CharToken, Char: 'i'},
		{Type: EOFToken},
	}, toks)
}
