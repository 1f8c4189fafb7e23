// Package html implements the HTML tokenizer and tree-construction automaton
// described by spec.md §4.1/§4.2, adapted from saba_core's
// renderer/html/token.rs and renderer/html/parser.rs.
package html

import "strings"

// TokenType distinguishes the four HTMLToken shapes spec.md §3 names.
type TokenType int

const (
	CharToken TokenType = iota
	StartTagToken
	EndTagToken
	EOFToken
)

// Token is the tagged-union HTMLToken from spec.md, represented the way Go
// tokenizers conventionally are (a single struct with a discriminant field,
// as golang.org/x/net/html's Token does) rather than as an interface per
// variant — only the fields relevant to Type are meaningful.
type Token struct {
	Type        TokenType
	Tag         string
	SelfClosing bool
	Attributes  []Attribute
	Char        rune
}

// state is the tokenizer's DFA state, spec.md §4.1.
type state int

const (
	stateData state = iota
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValueQuoted
	stateSelfClosingStartTag
	stateScriptData
	stateScriptDataLessThanSign
	stateScriptDataEndTagOpen
	stateScriptDataEndTagName
	stateTemporaryBuffer
)

// Tokenizer is a restartable-only-by-construction, pull-driven lazy sequence
// of Tokens over a character buffer, per spec.md §4.1 and §5.
type Tokenizer struct {
	state       state
	pos         int
	reconsume   bool
	latestToken *Token
	input       []rune
	buf         strings.Builder
}

// NewTokenizer constructs a Tokenizer positioned at the start of input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		state: stateData,
		input: []rune(input),
	}
}

// isEOF intentionally uses strict '>' against len(input), matching the
// source's `pos > input.len()` check (spec.md §9 design note iii): the
// tokenizer inspects one position past the last valid index when deciding
// EOF, so every read this function guards must bounds-check pos first.
func (t *Tokenizer) isEOF() bool {
	return t.pos > len(t.input)
}

func (t *Tokenizer) consumeNextInput() rune {
	c := t.input[t.pos]
	t.pos++
	return c
}

func (t *Tokenizer) reconsumeInput() rune {
	t.reconsume = false
	return t.input[t.pos-1]
}

func (t *Tokenizer) createTag(startTag bool) {
	if startTag {
		t.latestToken = &Token{Type: StartTagToken}
	} else {
		t.latestToken = &Token{Type: EndTagToken}
	}
}

func (t *Tokenizer) appendTagName(c rune) {
	t.latestToken.Tag += string(c)
}

func (t *Tokenizer) takeLatestToken() *Token {
	tok := t.latestToken
	t.latestToken = nil
	return tok
}

func (t *Tokenizer) startNewAttribute() {
	t.latestToken.Attributes = append(t.latestToken.Attributes, Attribute{})
}

func (t *Tokenizer) appendAttribute(c rune, isName bool) {
	attrs := t.latestToken.Attributes
	attrs[len(attrs)-1].AddChar(c, isName)
}

func (t *Tokenizer) setSelfClosingFlag() {
	t.latestToken.SelfClosing = true
}

// EnterScriptData switches the tokenizer into the ScriptData state. Per
// spec.md §4.1, the consumer (the HTML parser) may drive this transition
// after emitting a <script> start tag, so that a literal "</" inside the
// script body that doesn't actually close the tag is recovered through the
// TemporaryBuffer path instead of being misread as markup.
func (t *Tokenizer) EnterScriptData() {
	t.state = stateScriptData
}

// Next pulls the next Token from the stream. At end of input it yields a
// single EOFToken and then returns (Token{}, false) on every later call —
// the tokenizer is not restartable, per spec.md §5.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.input) {
		if t.pos == len(t.input) {
			t.pos++
			return Token{Type: EOFToken}, true
		}
		return Token{}, false
	}

	for {
		var c rune
		if t.reconsume {
			c = t.reconsumeInput()
		} else {
			c = t.consumeNextInput()
		}

		switch t.state {
		case stateData:
			if c == '<' {
				t.state = stateTagOpen
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			return Token{Type: CharToken, Char: c}, true

		case stateTagOpen:
			if c == '/' {
				t.state = stateEndTagOpen
				continue
			}
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateTagName
				t.createTag(true)
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.reconsume = true
			t.state = stateData

		case stateEndTagOpen:
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateTagName
				t.createTag(false)
				continue
			}

		case stateTagName:
			if c == ' ' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = stateData
				return *t.takeLatestToken(), true
			}
			if isASCIIUpper(c) {
				t.appendTagName(toLower(c))
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.appendTagName(c)

		case stateBeforeAttributeName:
			if c == '/' || c == '>' || t.isEOF() {
				t.reconsume = true
				t.state = stateAfterAttributeName
				continue
			}
			t.reconsume = true
			t.state = stateAttributeName
			t.startNewAttribute()

		case stateAttributeName:
			if c == ' ' || c == '/' || c == '>' || t.isEOF() {
				t.reconsume = true
				t.state = stateAfterAttributeName
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			if isASCIIUpper(c) {
				t.appendAttribute(toLower(c), true)
				continue
			}
			t.appendAttribute(c, true)

		case stateAfterAttributeName:
			if c == ' ' {
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			if c == '>' {
				t.state = stateData
				return *t.takeLatestToken(), true
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.reconsume = true
			t.state = stateAttributeName
			t.startNewAttribute()

		case stateBeforeAttributeValue:
			if c == ' ' {
				continue
			}
			if c == '"' {
				t.state = stateAttributeValueDoubleQuoted
				continue
			}
			if c == '\'' {
				t.state = stateAttributeValueSingleQuoted
				continue
			}
			t.reconsume = true
			t.state = stateAttributeValueUnquoted

		case stateAttributeValueDoubleQuoted:
			if c == '"' {
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.appendAttribute(c, false)

		case stateAttributeValueSingleQuoted:
			if c == '\'' {
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.appendAttribute(c, false)

		case stateAttributeValueUnquoted:
			if c == ' ' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '>' {
				t.state = stateData
				return *t.takeLatestToken(), true
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.appendAttribute(c, false)

		case stateAfterAttributeValueQuoted:
			if c == ' ' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = stateData
				return *t.takeLatestToken(), true
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			t.reconsume = true
			t.state = stateBeforeAttributeName

		case stateSelfClosingStartTag:
			if c == '>' {
				t.setSelfClosingFlag()
				t.state = stateData
				return *t.takeLatestToken(), true
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}

		case stateScriptData:
			if c == '<' {
				t.state = stateScriptDataLessThanSign
				continue
			}
			if t.isEOF() {
				return Token{Type: EOFToken}, true
			}
			return Token{Type: CharToken, Char: c}, true

		case stateScriptDataLessThanSign:
			if c == '/' {
				t.buf.Reset()
				t.state = stateScriptDataEndTagOpen
				continue
			}
			t.reconsume = true
			t.state = stateScriptData
			return Token{Type: CharToken, Char: '<'}, true

		case stateScriptDataEndTagOpen:
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateScriptDataEndTagName
				t.createTag(false)
				continue
			}
			t.reconsume = true
			t.state = stateScriptData
			return Token{Type: CharToken, Char: '<'}, true

		case stateScriptDataEndTagName:
			if c == '>' {
				t.state = stateData
				return *t.takeLatestToken(), true
			}
			if isASCIIAlpha(c) {
				t.buf.WriteRune(c)
				if isASCIIUpper(c) {
					c = toLower(c)
				}
				t.appendTagName(c)
				continue
			}
			flushed := "</" + t.buf.String()
			t.buf.Reset()
			t.buf.WriteString(flushed)
			t.buf.WriteRune(c)
			t.state = stateTemporaryBuffer
			continue

		case stateTemporaryBuffer:
			t.reconsume = true
			remaining := t.buf.String()
			if len(remaining) == 0 {
				t.state = stateScriptData
				continue
			}
			runes := []rune(remaining)
			head := runes[0]
			t.buf.Reset()
			t.buf.WriteString(string(runes[1:]))
			return Token{Type: CharToken, Char: head}, true
		}
	}
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func toLower(c rune) rune {
	return c - 'A' + 'a'
}
