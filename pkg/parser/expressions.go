package parser

import (
	"strconv"

	"marathi/interpreter-go/pkg/ast"
	"marathi/interpreter-go/pkg/lexer"
)

// Expression grammar, precedence low to high:
//
//	kimva -> ani -> == != -> > >= < <= -> + - -> * / % -> unary -> postfix
//
// Every binary level loops, so operators of equal precedence associate left.

func (p *Parser) expression() (ast.Expression, error) {
	return p.logicalOr()
}

func (p *Parser) logicalOr() (ast.Expression, error) {
	left, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TokenOr) {
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression("kimva", left, right)
	}
	return left, nil
}

func (p *Parser) logicalAnd() (ast.Expression, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.TokenAnd) {
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression("ani", left, right)
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expression, error) {
	left, err := p.relational()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokenEqual) || p.check(lexer.TokenNotEqual) {
		op := p.advance().Value
		right, err := p.relational()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

func (p *Parser) relational() (ast.Expression, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokenGreater) || p.check(lexer.TokenGreaterEqual) ||
		p.check(lexer.TokenLess) || p.check(lexer.TokenLessEqual) {
		op := p.advance().Value
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

func (p *Parser) additive() (ast.Expression, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokenPlus) || p.check(lexer.TokenMinus) {
		op := p.advance().Value
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

func (p *Parser) multiplicative() (ast.Expression, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokenStar) || p.check(lexer.TokenSlash) || p.check(lexer.TokenPercent) {
		op := p.advance().Value
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	switch p.peek().Type {
	case lexer.TokenMinus:
		p.advance()
		argument, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression("-", argument), nil
	case lexer.TokenNot:
		p.advance()
		argument, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression("nahi", argument), nil
	default:
		return p.postfix()
	}
}

// postfix parses a primary expression followed by any number of index and
// member accesses.
func (p *Parser) postfix() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.TokenLeftBracket):
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.TokenRightBracket, "expected ']' after index"); err != nil {
				return nil, err
			}
			expr = ast.NewMemberExpression(expr, index, true)
		case p.match(lexer.TokenDot):
			name, err := p.consume(lexer.TokenIdentifier, "expected property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = ast.NewMemberExpression(expr, ast.NewIdentifier(name.Value), false)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) primary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.TokenTrue:
		p.advance()
		return ast.NewLiteral(true, tok.Value), nil
	case lexer.TokenFalse:
		p.advance()
		return ast.NewLiteral(false, tok.Value), nil
	case lexer.TokenNull:
		p.advance()
		return ast.NewLiteral(nil, tok.Value), nil
	case lexer.TokenNumber:
		p.advance()
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorAt(tok, "invalid number literal '"+tok.Value+"'")
		}
		return ast.NewLiteral(value, tok.Value), nil
	case lexer.TokenString:
		p.advance()
		return ast.NewLiteral(tok.Literal, tok.Value), nil
	case lexer.TokenIdentifier:
		p.advance()
		if p.check(lexer.TokenLeftParen) {
			return p.callArguments(ast.NewIdentifier(tok.Value))
		}
		return ast.NewIdentifier(tok.Value), nil
	case lexer.TokenLeftBracket:
		p.advance()
		var elements []ast.Expression
		if !p.check(lexer.TokenRightBracket) {
			for {
				el, err := p.expression()
				if err != nil {
					return nil, err
				}
				elements = append(elements, el)
				if !p.match(lexer.TokenComma) {
					break
				}
			}
		}
		if _, err := p.consume(lexer.TokenRightBracket, "expected ']' after list elements"); err != nil {
			return nil, err
		}
		return ast.NewListLiteral(elements), nil
	case lexer.TokenLeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TokenRightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errorAt(tok, "expected expression")
	}
}

func (p *Parser) callArguments(callee *ast.Identifier) (ast.Expression, error) {
	p.advance() // '('
	var arguments []ast.Expression
	if !p.check(lexer.TokenRightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.TokenRightParen, "expected ')' after arguments"); err != nil {
		return nil, err
	}
	return ast.NewCallExpression(callee, arguments), nil
}
