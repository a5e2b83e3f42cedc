package parser

import (
	"strings"
	"testing"

	"marathi/interpreter-go/pkg/ast"
	"marathi/interpreter-go/pkg/lexer"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	program, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return program
}

func parseErr(t *testing.T, source string) *Error {
	t.Helper()
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	_, err = New(tokens).Parse()
	if err == nil {
		t.Fatalf("expected parse error for %q", source)
	}
	parseErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	return parseErr
}

func wrap(body string) string {
	return "chala suru karu; " + body + " bas re ata;"
}

func TestMissingStartMarkerFails(t *testing.T) {
	err := parseErr(t, `dakhava "hi";`)
	if !strings.Contains(err.Message, "chala suru karu") {
		t.Fatalf("unexpected message %q", err.Message)
	}
}

func TestMissingEndMarkerFails(t *testing.T) {
	err := parseErr(t, `chala suru karu; dakhava "hi";`)
	if !strings.Contains(err.Message, "bas re ata") {
		t.Fatalf("unexpected message %q", err.Message)
	}
	if err.Line == 0 || err.Column == 0 {
		t.Fatalf("expected a real position, got %d:%d", err.Line, err.Column)
	}
}

func TestEveryNodeHasAKnownType(t *testing.T) {
	program := parse(t, wrap(`
		heAhe x = 1;
		yadi xs = [1, 2];
		karya f(a, b) { parat a + b; }
		punhaKar (x < 3) { x = x + 1; jar (x == 2) { pudhe; } nahitar { thamba; } }
		dakhava f(1, 2), xs[0];
	`))
	if len(program.Body) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(program.Body))
	}
	for _, stmt := range program.Body {
		if stmt.NodeType() == "" {
			t.Fatalf("node %T has empty type", stmt)
		}
	}
}

func TestVarDeclarationWithoutInitializer(t *testing.T) {
	program := parse(t, wrap("heAhe x;"))
	decl, ok := program.Body[0].(*ast.VarDeclaration)
	if !ok || decl.Name != "x" || decl.Initializer != nil {
		t.Fatalf("unexpected statement %#v", program.Body[0])
	}
}

func TestAssignmentRequiresLookahead(t *testing.T) {
	program := parse(t, wrap("heAhe x = 1; x = 2; x;"))
	if _, ok := program.Body[1].(*ast.Assignment); !ok {
		t.Fatalf("expected assignment, got %T", program.Body[1])
	}
	if _, ok := program.Body[2].(*ast.Identifier); !ok {
		t.Fatalf("expected bare identifier expression statement, got %T", program.Body[2])
	}
}

func TestCallAsStatement(t *testing.T) {
	program := parse(t, wrap("foo();"))
	call, ok := program.Body[0].(*ast.CallExpression)
	if !ok || call.Callee.Name != "foo" {
		t.Fatalf("unexpected statement %#v", program.Body[0])
	}
}

func TestIfBodiesAreAlwaysBlocks(t *testing.T) {
	program := parse(t, wrap("jar (1 < 2) { dakhava 1; } nahitar { dakhava 2; }"))
	ifStmt, ok := program.Body[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected if, got %T", program.Body[0])
	}
	if ifStmt.Consequent == nil || ifStmt.Consequent.NodeType() != ast.NodeBlockStatement {
		t.Fatalf("consequent is not a block")
	}
	alt, ok := ifStmt.Alternate.(*ast.BlockStatement)
	if !ok {
		t.Fatalf("alternate is not a block, got %T", ifStmt.Alternate)
	}
	if len(alt.Body) != 1 {
		t.Fatalf("unexpected alternate body %#v", alt.Body)
	}
}

func TestElseIfChainCompoundForm(t *testing.T) {
	program := parse(t, wrap("jar (a) { } nahitar jar (b) { } nahitar { }"))
	ifStmt := program.Body[0].(*ast.IfStatement)
	nested, ok := ifStmt.Alternate.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected nested if alternate, got %T", ifStmt.Alternate)
	}
	if _, ok := nested.Alternate.(*ast.BlockStatement); !ok {
		t.Fatalf("expected trailing else block, got %T", nested.Alternate)
	}
}

func TestElseIfChainNestedForm(t *testing.T) {
	// 'nahitar' followed by a bare 'jar' statement must parse the same as the
	// compound token. A block comment splits the words so the lexer cannot
	// join them.
	program := parse(t, wrap("jar (a) { } nahitar /*x*/ jar (b) { }"))
	ifStmt := program.Body[0].(*ast.IfStatement)
	if _, ok := ifStmt.Alternate.(*ast.IfStatement); !ok {
		t.Fatalf("expected nested if alternate, got %T", ifStmt.Alternate)
	}
}

func TestPrecedenceShape(t *testing.T) {
	program := parse(t, wrap("heAhe r = 1 + 2 * 3 == 7 ani nahi khote;"))
	decl := program.Body[0].(*ast.VarDeclaration)
	and, ok := decl.Initializer.(*ast.BinaryExpression)
	if !ok || and.Operator != "ani" {
		t.Fatalf("expected top-level 'ani', got %#v", decl.Initializer)
	}
	eq, ok := and.Left.(*ast.BinaryExpression)
	if !ok || eq.Operator != "==" {
		t.Fatalf("expected '==' under 'ani', got %#v", and.Left)
	}
	add, ok := eq.Left.(*ast.BinaryExpression)
	if !ok || add.Operator != "+" {
		t.Fatalf("expected '+' under '==', got %#v", eq.Left)
	}
	mul, ok := add.Right.(*ast.BinaryExpression)
	if !ok || mul.Operator != "*" {
		t.Fatalf("expected '*' under '+', got %#v", add.Right)
	}
	if _, ok := and.Right.(*ast.UnaryExpression); !ok {
		t.Fatalf("expected unary 'nahi' on the right, got %#v", and.Right)
	}
}

func TestLeftAssociativity(t *testing.T) {
	program := parse(t, wrap("heAhe r = 10 - 3 - 2;"))
	decl := program.Body[0].(*ast.VarDeclaration)
	outer := decl.Initializer.(*ast.BinaryExpression)
	inner, ok := outer.Left.(*ast.BinaryExpression)
	if !ok || inner.Operator != "-" {
		t.Fatalf("subtraction should associate left, got %#v", outer)
	}
}

func TestListLiteralAndIndexing(t *testing.T) {
	program := parse(t, wrap("yadi xs = [1, 2, 3]; dakhava xs[0];"))
	decl := program.Body[0].(*ast.VarDeclaration)
	list, ok := decl.Initializer.(*ast.ListLiteral)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("unexpected initializer %#v", decl.Initializer)
	}
	print := program.Body[1].(*ast.PrintStatement)
	member, ok := print.Expressions[0].(*ast.MemberExpression)
	if !ok || !member.Computed {
		t.Fatalf("unexpected print expression %#v", print.Expressions[0])
	}
}

func TestDottedMemberParses(t *testing.T) {
	program := parse(t, wrap("heAhe v = obj.field;"))
	decl := program.Body[0].(*ast.VarDeclaration)
	member, ok := decl.Initializer.(*ast.MemberExpression)
	if !ok || member.Computed {
		t.Fatalf("unexpected initializer %#v", decl.Initializer)
	}
	prop, ok := member.Property.(*ast.Identifier)
	if !ok || prop.Name != "field" {
		t.Fatalf("unexpected property %#v", member.Property)
	}
}

func TestExpectedStatementError(t *testing.T) {
	err := parseErr(t, wrap("+ 1;"))
	if !strings.Contains(err.Message, "expected statement") {
		t.Fatalf("unexpected message %q", err.Message)
	}
}

func TestUnaryBangIsNotAnOperator(t *testing.T) {
	// '!=' is only the binary not-equal operator; a prefix use is an error.
	err := parseErr(t, wrap("heAhe x = != khare;"))
	if !strings.Contains(err.Message, "expected expression") {
		t.Fatalf("unexpected message %q", err.Message)
	}
}

func TestMissingParenError(t *testing.T) {
	err := parseErr(t, wrap("jar x == 1 { }"))
	if !strings.Contains(err.Message, "expected '('") {
		t.Fatalf("unexpected message %q", err.Message)
	}
}

func TestTrailingInputAfterEndMarkerFails(t *testing.T) {
	err := parseErr(t, "chala suru karu; bas re ata; dakhava 1;")
	if !strings.Contains(err.Message, "unexpected input") {
		t.Fatalf("unexpected message %q", err.Message)
	}
}
