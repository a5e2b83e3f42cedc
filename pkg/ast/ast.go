package ast

type NodeType string

const (
	NodeProgram             NodeType = "Program"
	NodeVarDeclaration      NodeType = "VarDeclaration"
	NodeAssignment          NodeType = "Assignment"
	NodePrintStatement      NodeType = "PrintStatement"
	NodeBlockStatement      NodeType = "BlockStatement"
	NodeIfStatement         NodeType = "IfStatement"
	NodeWhileStatement      NodeType = "WhileStatement"
	NodeFunctionDeclaration NodeType = "FunctionDeclaration"
	NodeReturnStatement     NodeType = "ReturnStatement"
	NodeBreakStatement      NodeType = "BreakStatement"
	NodeContinueStatement   NodeType = "ContinueStatement"
	NodeLiteral             NodeType = "Literal"
	NodeIdentifier          NodeType = "Identifier"
	NodeListLiteral         NodeType = "ListLiteral"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeUnaryExpression     NodeType = "UnaryExpression"
	NodeCallExpression      NodeType = "CallExpression"
	NodeMemberExpression    NodeType = "MemberExpression"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces. Expressions double as statements so a bare call like
// `foo();` can appear in statement position.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}
func (expressionMarker) statementNode()  {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Program

type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Statements

type VarDeclaration struct {
	nodeImpl
	statementMarker

	Name        string     `json:"name"`
	Initializer Expression `json:"initializer,omitempty"`
}

func NewVarDeclaration(name string, initializer Expression) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Name: name, Initializer: initializer}
}

type Assignment struct {
	nodeImpl
	statementMarker

	Target *Identifier `json:"target"`
	Value  Expression  `json:"value"`
}

func NewAssignment(target *Identifier, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Target: target, Value: value}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Expressions []Expression `json:"expressions"`
}

func NewPrintStatement(expressions []Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Expressions: expressions}
}

type BlockStatement struct {
	nodeImpl
	statementMarker

	Body []Statement `json:"body"`
}

func NewBlockStatement(body []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Body: body}
}

// IfStatement's Consequent is always a BlockStatement; Alternate is either a
// BlockStatement (trailing else) or a nested IfStatement (else-if chain), or
// nil.
type IfStatement struct {
	nodeImpl
	statementMarker

	Condition  Expression      `json:"condition"`
	Consequent *BlockStatement `json:"consequent"`
	Alternate  Statement       `json:"alternate,omitempty"`
}

func NewIfStatement(condition Expression, consequent *BlockStatement, alternate Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Consequent: consequent, Alternate: alternate}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition Expression      `json:"condition"`
	Body      *BlockStatement `json:"body"`
}

func NewWhileStatement(condition Expression, body *BlockStatement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

type FunctionDeclaration struct {
	nodeImpl
	statementMarker

	Name       string          `json:"name"`
	Parameters []string        `json:"parameters"`
	Body       *BlockStatement `json:"body"`
}

func NewFunctionDeclaration(name string, parameters []string, body *BlockStatement) *FunctionDeclaration {
	return &FunctionDeclaration{nodeImpl: newNodeImpl(NodeFunctionDeclaration), Name: name, Parameters: parameters, Body: body}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

type BreakStatement struct {
	nodeImpl
	statementMarker
}

func NewBreakStatement() *BreakStatement {
	return &BreakStatement{nodeImpl: newNodeImpl(NodeBreakStatement)}
}

type ContinueStatement struct {
	nodeImpl
	statementMarker
}

func NewContinueStatement() *ContinueStatement {
	return &ContinueStatement{nodeImpl: newNodeImpl(NodeContinueStatement)}
}

// Expressions

// Literal carries the decoded value (float64, string, bool, or nil) alongside
// the raw source text.
type Literal struct {
	nodeImpl
	expressionMarker

	Value any    `json:"value"`
	Raw   string `json:"raw"`
}

func NewLiteral(value any, raw string) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Value: value, Raw: raw}
}

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

type ListLiteral struct {
	nodeImpl
	expressionMarker

	Elements []Expression `json:"elements"`
}

func NewListLiteral(elements []Expression) *ListLiteral {
	return &ListLiteral{nodeImpl: newNodeImpl(NodeListLiteral), Elements: elements}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Argument Expression `json:"argument"`
}

func NewUnaryExpression(operator string, argument Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Argument: argument}
}

type CallExpression struct {
	nodeImpl
	expressionMarker

	Callee    *Identifier  `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee *Identifier, arguments []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: arguments}
}

// MemberExpression covers both computed indexing (`xs[i]`) and dotted access
// (`xs.name`); only the computed form is evaluated at runtime.
type MemberExpression struct {
	nodeImpl
	expressionMarker

	Object   Expression `json:"object"`
	Property Expression `json:"property"`
	Computed bool       `json:"computed"`
}

func NewMemberExpression(object, property Expression, computed bool) *MemberExpression {
	return &MemberExpression{nodeImpl: newNodeImpl(NodeMemberExpression), Object: object, Property: property, Computed: computed}
}
