package ast

import "strconv"

// Compact constructors, mainly for building trees in tests.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value float64) *Literal {
	return NewLiteral(value, strconv.FormatFloat(value, 'f', -1, 64))
}

func Str(value string) *Literal {
	return NewLiteral(value, strconv.Quote(value))
}

func Bool(value bool) *Literal {
	if value {
		return NewLiteral(true, "khare")
	}
	return NewLiteral(false, "khote")
}

func Nil() *Literal {
	return NewLiteral(nil, "shunya")
}

func List(elements ...Expression) *ListLiteral {
	return NewListLiteral(elements)
}

func Bin(operator string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Un(operator string, argument Expression) *UnaryExpression {
	return NewUnaryExpression(operator, argument)
}

func Call(name string, arguments ...Expression) *CallExpression {
	return NewCallExpression(ID(name), arguments)
}

func Index(object, property Expression) *MemberExpression {
	return NewMemberExpression(object, property, true)
}

func Block(body ...Statement) *BlockStatement {
	return NewBlockStatement(body)
}

func Let(name string, initializer Expression) *VarDeclaration {
	return NewVarDeclaration(name, initializer)
}

func Set(name string, value Expression) *Assignment {
	return NewAssignment(ID(name), value)
}

func Print(expressions ...Expression) *PrintStatement {
	return NewPrintStatement(expressions)
}

func If(condition Expression, consequent *BlockStatement, alternate Statement) *IfStatement {
	return NewIfStatement(condition, consequent, alternate)
}

func While(condition Expression, body *BlockStatement) *WhileStatement {
	return NewWhileStatement(condition, body)
}

func Fn(name string, parameters []string, body *BlockStatement) *FunctionDeclaration {
	return NewFunctionDeclaration(name, parameters, body)
}

func Ret(value Expression) *ReturnStatement {
	return NewReturnStatement(value)
}

func Brk() *BreakStatement {
	return NewBreakStatement()
}

func Cont() *ContinueStatement {
	return NewContinueStatement()
}

func Prog(body ...Statement) *Program {
	return NewProgram(body)
}
