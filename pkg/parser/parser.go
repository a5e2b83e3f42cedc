// Package parser builds a Program AST from a token stream via single-pass
// recursive descent with precedence climbing. The first mismatch aborts
// parsing; there is no recovery or multi-error collection.
package parser

import (
	"fmt"

	"marathi/interpreter-go/pkg/ast"
	"marathi/interpreter-go/pkg/lexer"
)

// Error is a positional parse error naming what the parser expected.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

type Parser struct {
	tokens []lexer.Token
	pos    int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream eagerly: start marker, statements,
// end marker.
func (p *Parser) Parse() (*ast.Program, error) {
	if _, err := p.consume(lexer.TokenProgramStart, "expected 'chala suru karu' to start the program"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after 'chala suru karu'"); err != nil {
		return nil, err
	}

	var body []ast.Statement
	for !p.check(lexer.TokenProgramEnd) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorAt(p.peek(), "expected 'bas re ata' to end the program")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	if _, err := p.consume(lexer.TokenProgramEnd, "expected 'bas re ata' to end the program"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after 'bas re ata'"); err != nil {
		return nil, err
	}
	if !p.check(lexer.TokenEOF) {
		return nil, p.errorAt(p.peek(), "unexpected input after 'bas re ata'")
	}
	return ast.NewProgram(body), nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) check(typ lexer.TokenType) bool {
	return p.peek().Type == typ
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if tok.Type != lexer.TokenEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) match(typ lexer.TokenType) bool {
	if p.check(typ) {
		p.advance()
		return true
	}
	return false
}

// consume advances past an exactly-matching token or raises a parse error at
// the current token. This is the sole error-reporting mechanism.
func (p *Parser) consume(typ lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok lexer.Token, message string) error {
	return &Error{Line: tok.Line, Column: tok.Column, Message: message}
}
