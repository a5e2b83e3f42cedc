package parser

import (
	"marathi/interpreter-go/pkg/ast"
	"marathi/interpreter-go/pkg/lexer"
)

// statement dispatches on the leading token. An identifier followed by '='
// (one-token lookahead) is an assignment; any other identifier begins an
// expression statement, which is how bare calls like `foo();` parse.
func (p *Parser) statement() (ast.Statement, error) {
	switch p.peek().Type {
	case lexer.TokenLet, lexer.TokenList:
		return p.varDeclaration()
	case lexer.TokenPrint:
		return p.printStatement()
	case lexer.TokenIf:
		return p.ifStatement()
	case lexer.TokenWhile:
		return p.whileStatement()
	case lexer.TokenFunction:
		return p.functionDeclaration()
	case lexer.TokenReturn:
		return p.returnStatement()
	case lexer.TokenBreak:
		p.advance()
		if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after 'thamba'"); err != nil {
			return nil, err
		}
		return ast.NewBreakStatement(), nil
	case lexer.TokenContinue:
		p.advance()
		if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after 'pudhe'"); err != nil {
			return nil, err
		}
		return ast.NewContinueStatement(), nil
	case lexer.TokenIdentifier:
		if p.peekAt(1).Type == lexer.TokenAssign {
			return p.assignment()
		}
		return p.expressionStatement()
	default:
		return nil, p.errorAt(p.peek(), "expected statement")
	}
}

func (p *Parser) varDeclaration() (ast.Statement, error) {
	keyword := p.advance()
	name, err := p.consume(lexer.TokenIdentifier, "expected variable name after '"+keyword.Value+"'")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(lexer.TokenAssign) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return ast.NewVarDeclaration(name.Value, initializer), nil
}

func (p *Parser) assignment() (ast.Statement, error) {
	name := p.advance()
	p.advance() // '='
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after assignment"); err != nil {
		return nil, err
	}
	return ast.NewAssignment(ast.NewIdentifier(name.Value), value), nil
}

func (p *Parser) printStatement() (ast.Statement, error) {
	p.advance()
	var expressions []ast.Expression
	for {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)
		if !p.match(lexer.TokenComma) {
			break
		}
	}
	if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after 'dakhava' statement"); err != nil {
		return nil, err
	}
	return ast.NewPrintStatement(expressions), nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	p.advance()
	return p.ifTail()
}

// ifTail parses the remainder of an if once the leading keyword ('jar' or a
// compound 'nahitar jar') has been consumed. Else-if chains become nested
// IfStatements stored as the alternate; both the compound token and a bare
// 'jar' after 'nahitar' are accepted.
func (p *Parser) ifTail() (ast.Statement, error) {
	if _, err := p.consume(lexer.TokenLeftParen, "expected '(' after 'jar'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenRightParen, "expected ')' after condition"); err != nil {
		return nil, err
	}
	consequent, err := p.block()
	if err != nil {
		return nil, err
	}

	var alternate ast.Statement
	switch {
	case p.match(lexer.TokenElseIf):
		alternate, err = p.ifTail()
		if err != nil {
			return nil, err
		}
	case p.match(lexer.TokenElse):
		if p.match(lexer.TokenIf) {
			alternate, err = p.ifTail()
		} else {
			alternate, err = p.block()
		}
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(condition, consequent, alternate), nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	p.advance()
	if _, err := p.consume(lexer.TokenLeftParen, "expected '(' after 'punhaKar'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenRightParen, "expected ')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(condition, body), nil
}

func (p *Parser) functionDeclaration() (ast.Statement, error) {
	p.advance()
	name, err := p.consume(lexer.TokenIdentifier, "expected function name after 'karya'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenLeftParen, "expected '(' after function name"); err != nil {
		return nil, err
	}
	var parameters []string
	if !p.check(lexer.TokenRightParen) {
		for {
			param, err := p.consume(lexer.TokenIdentifier, "expected parameter name")
			if err != nil {
				return nil, err
			}
			parameters = append(parameters, param.Value)
			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.TokenRightParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDeclaration(name.Value, parameters, body), nil
}

func (p *Parser) returnStatement() (ast.Statement, error) {
	p.advance()
	var value ast.Expression
	if !p.check(lexer.TokenSemicolon) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after 'parat'"); err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(value), nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenSemicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return expr, nil
}

// block parses '{' stmt* '}'. If and while bodies always come through here,
// keeping the consequent/body-is-a-block invariant.
func (p *Parser) block() (*ast.BlockStatement, error) {
	if _, err := p.consume(lexer.TokenLeftBrace, "expected '{'"); err != nil {
		return nil, err
	}
	var body []ast.Statement
	for !p.check(lexer.TokenRightBrace) {
		if p.check(lexer.TokenEOF) {
			return nil, p.errorAt(p.peek(), "expected '}' to close block")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	p.advance() // '}'
	return ast.NewBlockStatement(body), nil
}
