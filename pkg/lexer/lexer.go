// Package lexer converts raw source text into a flat token stream. The scan
// is a single left-to-right pass with line/column tracking; multi-word
// keywords are resolved greedily before single-word lookup.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// Error is a positional lexical error. Tokenization aborts on the first one.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

type Lexer struct {
	source []rune
	pos    int
	line   int
	col    int
}

func New(source string) *Lexer {
	return &Lexer{source: []rune(source), line: 1, col: 1}
}

// Tokenize scans the entire source. The returned slice always ends with
// exactly one EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		if err := l.skipTrivia(); err != nil {
			return nil, err
		}
		if l.atEnd() {
			tokens = append(tokens, Token{Type: TokenEOF, Line: l.line, Column: l.col})
			return tokens, nil
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) next() (Token, error) {
	line, col := l.line, l.col
	ch := l.peek()
	switch {
	case isWordStart(ch):
		return l.scanWord(), nil
	case unicode.IsDigit(ch):
		return l.scanNumber(), nil
	case ch == '"' || ch == '\'':
		return l.scanString()
	default:
		return l.scanOperator(line, col)
	}
}

// skipTrivia consumes whitespace, newlines, and both comment forms.
func (l *Lexer) skipTrivia() error {
	for !l.atEnd() {
		switch ch := l.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		case ch == '/' && l.peekAt(1) == '*':
			line, col := l.line, l.col
			l.advance()
			l.advance()
			for {
				if l.atEnd() {
					return &Error{Line: line, Column: col, Message: "unterminated block comment"}
				}
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

// scanWord reads an identifier-shaped word, then tries compound keyword
// sequences, then the single-word keyword table, then falls back to a plain
// identifier. Keyword lookup is case-insensitive.
func (l *Lexer) scanWord() Token {
	line, col := l.line, l.col
	start := l.pos
	word := l.readWord()
	lower := strings.ToLower(word)

	for _, compound := range compoundKeywords {
		if compound.words[0] != lower {
			continue
		}
		save := *l
		matched := true
		for _, want := range compound.words[1:] {
			l.skipBlanks()
			if l.atEnd() || !isWordStart(l.peek()) {
				matched = false
				break
			}
			if strings.ToLower(l.readWord()) != want {
				matched = false
				break
			}
		}
		if matched {
			return Token{Type: compound.typ, Value: string(l.source[start:l.pos]), Line: line, Column: col}
		}
		*l = save
	}

	if typ, ok := keywords[lower]; ok {
		return Token{Type: typ, Value: word, Line: line, Column: col}
	}
	return Token{Type: TokenIdentifier, Value: word, Line: line, Column: col}
}

func (l *Lexer) scanNumber() Token {
	line, col := l.line, l.col
	start := l.pos
	for !l.atEnd() && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && unicode.IsDigit(l.peekAt(1)) {
		l.advance()
		for !l.atEnd() && unicode.IsDigit(l.peek()) {
			l.advance()
		}
	}
	return Token{Type: TokenNumber, Value: string(l.source[start:l.pos]), Line: line, Column: col}
}

func (l *Lexer) scanString() (Token, error) {
	line, col := l.line, l.col
	start := l.pos
	quote := l.peek()
	l.advance()
	var decoded strings.Builder
	for {
		if l.atEnd() || l.peek() == '\n' {
			return Token{}, &Error{Line: line, Column: col, Message: "unterminated string"}
		}
		ch := l.peek()
		if ch == quote {
			l.advance()
			break
		}
		if ch == '\\' {
			l.advance()
			if l.atEnd() {
				return Token{}, &Error{Line: line, Column: col, Message: "unterminated string"}
			}
			esc := l.peek()
			switch esc {
			case 'n':
				decoded.WriteRune('\n')
			case 't':
				decoded.WriteRune('\t')
			case 'r':
				decoded.WriteRune('\r')
			case '\\', '"', '\'':
				decoded.WriteRune(esc)
			default:
				return Token{}, &Error{Line: l.line, Column: l.col, Message: fmt.Sprintf("invalid escape sequence '\\%c'", esc)}
			}
			l.advance()
			continue
		}
		decoded.WriteRune(ch)
		l.advance()
	}
	return Token{
		Type:    TokenString,
		Value:   string(l.source[start:l.pos]),
		Literal: decoded.String(),
		Line:    line,
		Column:  col,
	}, nil
}

// scanOperator matches punctuation longest-first ('==' before '=').
func (l *Lexer) scanOperator(line, col int) (Token, error) {
	ch := l.advance()
	emit := func(typ TokenType, value string) (Token, error) {
		return Token{Type: typ, Value: value, Line: line, Column: col}, nil
	}
	switch ch {
	case '=':
		if l.peek() == '=' {
			l.advance()
			return emit(TokenEqual, "==")
		}
		return emit(TokenAssign, "=")
	case '!':
		if l.peek() == '=' {
			l.advance()
			return emit(TokenNotEqual, "!=")
		}
	case '>':
		if l.peek() == '=' {
			l.advance()
			return emit(TokenGreaterEqual, ">=")
		}
		return emit(TokenGreater, ">")
	case '<':
		if l.peek() == '=' {
			l.advance()
			return emit(TokenLessEqual, "<=")
		}
		return emit(TokenLess, "<")
	case '+':
		return emit(TokenPlus, "+")
	case '-':
		return emit(TokenMinus, "-")
	case '*':
		return emit(TokenStar, "*")
	case '/':
		return emit(TokenSlash, "/")
	case '%':
		return emit(TokenPercent, "%")
	case '(':
		return emit(TokenLeftParen, "(")
	case ')':
		return emit(TokenRightParen, ")")
	case '{':
		return emit(TokenLeftBrace, "{")
	case '}':
		return emit(TokenRightBrace, "}")
	case '[':
		return emit(TokenLeftBracket, "[")
	case ']':
		return emit(TokenRightBracket, "]")
	case ',':
		return emit(TokenComma, ",")
	case ';':
		return emit(TokenSemicolon, ";")
	case '.':
		return emit(TokenDot, ".")
	}
	return Token{}, &Error{Line: line, Column: col, Message: fmt.Sprintf("unexpected character %q", string(ch))}
}

func (l *Lexer) readWord() string {
	start := l.pos
	for !l.atEnd() && isWordPart(l.peek()) {
		l.advance()
	}
	return string(l.source[start:l.pos])
}

// skipBlanks consumes spaces and tabs only; compound keywords must sit on one
// line.
func (l *Lexer) skipBlanks() {
	for !l.atEnd() && (l.peek() == ' ' || l.peek() == '\t') {
		l.advance()
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.source) {
		return 0
	}
	return l.source[l.pos+offset]
}

func (l *Lexer) advance() rune {
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func isWordStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isWordPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
