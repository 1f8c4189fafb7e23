package jsext

import (
	"fmt"
	"strconv"
)

type precedence int

const (
	LOWEST precedence = iota
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
	INDEX
)

const ASSIGN_PREC precedence = LOWEST + 1

var precedences = map[TokenType]precedence{
	ASSIGN:   ASSIGN_PREC,
	EQ:       EQUALS,
	NOT_EQ:   EQUALS,
	LT:       LESSGREATER,
	GT:       LESSGREATER,
	PLUS:     SUM,
	MINUS:    SUM,
	SLASH:    PRODUCT,
	ASTERISK: PRODUCT,
	LPAREN:   CALL,
	LBRACKET: INDEX,
}

// Parser is a Pratt (precedence-climbing) parser over a Lexer, producing
// the node set ast.go defines.
type Parser struct {
	l *Lexer

	curToken  Token
	peekToken Token
	errors    []string

	prefixParseFns map[TokenType]func() Expression
	infixParseFns  map[TokenType]func(Expression) Expression
}

// NewParser constructs a Parser reading tokens from l.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[TokenType]func() Expression{
		IDENT:    p.parseIdentifier,
		INT:      p.parseIntegerLiteral,
		STRING:   p.parseStringLiteral,
		TRUE:     p.parseBoolean,
		FALSE:    p.parseBoolean,
		BANG:     p.parsePrefixExpression,
		MINUS:    p.parsePrefixExpression,
		LPAREN:   p.parseGroupedExpression,
		FUNCTION: p.parseFunctionLiteral,
		LBRACKET: p.parseArrayLiteral,
	}
	p.infixParseFns = map[TokenType]func(Expression) Expression{
		PLUS:     p.parseInfixExpression,
		MINUS:    p.parseInfixExpression,
		SLASH:    p.parseInfixExpression,
		ASTERISK: p.parseInfixExpression,
		EQ:       p.parseInfixExpression,
		NOT_EQ:   p.parseInfixExpression,
		LT:       p.parseInfixExpression,
		GT:       p.parseInfixExpression,
		LPAREN:   p.parseCallExpression,
		LBRACKET: p.parseIndexExpression,
		ASSIGN:   p.parseAssignmentExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type))
	return false
}

func (p *Parser) peekPrecedence() precedence {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() precedence {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram consumes the whole token stream and returns the resulting
// Program.
func (p *Parser) ParseProgram() *Program {
	program := &Program{}
	for !p.curTokenIs(EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case LET:
		return p.parseVariableDeclaration()
	case RETURN:
		return p.parseReturnStatement()
	case IF:
		return p.parseIfStatement()
	case WHILE:
		return p.parseWhileStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVariableDeclaration() Statement {
	if !p.expectPeek(IDENT) {
		return nil
	}
	name := &Identifier{Value: p.curToken.Literal}

	if !p.expectPeek(ASSIGN) {
		return nil
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if p.peekTokenIs(SEMICOLON) {
		p.nextToken()
	}
	return &VariableDeclaration{Name: name, Value: value}
}

func (p *Parser) parseReturnStatement() Statement {
	p.nextToken()
	if p.curTokenIs(SEMICOLON) {
		return &ReturnStatement{}
	}
	value := p.parseExpression(LOWEST)
	if p.peekTokenIs(SEMICOLON) {
		p.nextToken()
	}
	return &ReturnStatement{ReturnValue: value}
}

func (p *Parser) parseIfStatement() Statement {
	if !p.expectPeek(LPAREN) {
		return nil
	}
	p.nextToken()
	condition := p.parseExpression(LOWEST)

	if !p.expectPeek(RPAREN) {
		return nil
	}
	if !p.expectPeek(LBRACE) {
		return nil
	}
	consequence := p.parseBlockStatement()

	stmt := &IfStatement{Condition: condition, Consequence: consequence}

	if p.peekTokenIs(ELSE) {
		p.nextToken()
		if !p.expectPeek(LBRACE) {
			return nil
		}
		stmt.Alternative = p.parseBlockStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() Statement {
	if !p.expectPeek(LPAREN) {
		return nil
	}
	p.nextToken()
	condition := p.parseExpression(LOWEST)

	if !p.expectPeek(RPAREN) {
		return nil
	}
	if !p.expectPeek(LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &WhileStatement{Condition: condition, Body: body}
}

func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{}
	p.nextToken()

	for !p.curTokenIs(RBRACE) && !p.curTokenIs(EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseExpressionStatement() Statement {
	expr := p.parseExpression(LOWEST)
	if p.peekTokenIs(SEMICOLON) {
		p.nextToken()
	}
	return &ExpressionStatement{Expr: expr}
}

func (p *Parser) parseExpression(prec precedence) Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.errors = append(p.errors, fmt.Sprintf("no prefix parse function for %s found", p.curToken.Type))
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(SEMICOLON) && prec < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}
	return &IntegerLiteral{Value: value}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Value: p.curToken.Literal}
}

func (p *Parser) parseBoolean() Expression {
	return &BooleanLiteral{Value: p.curTokenIs(TRUE)}
}

func (p *Parser) parsePrefixExpression() Expression {
	operator := p.curToken.Literal
	p.nextToken()
	return &PrefixExpression{Operator: operator, Right: p.parseExpression(PREFIX)}
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	operator := p.curToken.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &BinaryExpression{Left: left, Operator: operator, Right: right}
}

func (p *Parser) parseAssignmentExpression(left Expression) Expression {
	ident, ok := left.(*Identifier)
	if !ok {
		p.errors = append(p.errors, "left-hand side of assignment must be an identifier")
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return &AssignmentExpression{Name: ident, Value: value}
}

func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseFunctionLiteral() Expression {
	if !p.expectPeek(LPAREN) {
		return nil
	}
	params := p.parseFunctionParameters()

	if !p.expectPeek(LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &FunctionLiteral{Parameters: params, Body: body}
}

func (p *Parser) parseFunctionParameters() []*Identifier {
	var identifiers []*Identifier

	if p.peekTokenIs(RPAREN) {
		p.nextToken()
		return identifiers
	}

	p.nextToken()
	identifiers = append(identifiers, &Identifier{Value: p.curToken.Literal})

	for p.peekTokenIs(COMMA) {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &Identifier{Value: p.curToken.Literal})
	}

	if !p.expectPeek(RPAREN) {
		return nil
	}
	return identifiers
}

func (p *Parser) parseCallExpression(function Expression) Expression {
	return &CallExpression{Function: function, Arguments: p.parseExpressionList(RPAREN)}
}

func (p *Parser) parseArrayLiteral() Expression {
	return &ArrayLiteral{Elements: p.parseExpressionList(RBRACKET)}
}

func (p *Parser) parseIndexExpression(left Expression) Expression {
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(RBRACKET) {
		return nil
	}
	return &IndexExpression{Left: left, Index: index}
}

func (p *Parser) parseExpressionList(end TokenType) []Expression {
	var list []Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}
