package interpreter

import (
	"strings"

	"marathi/interpreter-go/pkg/ast"
	"marathi/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeStatement(node ast.Statement, env *runtime.Environment) error {
	switch n := node.(type) {
	case *ast.VarDeclaration:
		return i.executeVarDeclaration(n, env)
	case *ast.Assignment:
		return i.executeAssignment(n, env)
	case *ast.PrintStatement:
		return i.executePrintStatement(n, env)
	case *ast.BlockStatement:
		return i.executeBlock(n, env)
	case *ast.IfStatement:
		return i.executeIfStatement(n, env)
	case *ast.WhileStatement:
		return i.executeWhileStatement(n, env)
	case *ast.FunctionDeclaration:
		env.Define(n.Name, &runtime.FunctionValue{Declaration: n, Closure: env})
		return nil
	case *ast.ReturnStatement:
		return i.executeReturnStatement(n, env)
	case *ast.BreakStatement:
		return breakSignal{}
	case *ast.ContinueStatement:
		return continueSignal{}
	case ast.Expression:
		_, err := i.evaluateExpression(n, env)
		return err
	default:
		return runtime.Errorf("unknown statement type '%s'", n.NodeType())
	}
}

// executeVarDeclaration defines the name in the current scope; a missing
// initializer yields nil and redeclaration overwrites.
func (i *Interpreter) executeVarDeclaration(stmt *ast.VarDeclaration, env *runtime.Environment) error {
	var value runtime.Value = runtime.NilValue{}
	if stmt.Initializer != nil {
		val, err := i.evaluateExpression(stmt.Initializer, env)
		if err != nil {
			return err
		}
		value = val
	}
	env.Define(stmt.Name, value)
	return nil
}

func (i *Interpreter) executeAssignment(stmt *ast.Assignment, env *runtime.Environment) error {
	value, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return err
	}
	return env.Assign(stmt.Target.Name, value)
}

// executePrintStatement evaluates left to right, stringifies each value, and
// sends the concatenation (no separator) to the output collaborator as one
// call.
func (i *Interpreter) executePrintStatement(stmt *ast.PrintStatement, env *runtime.Environment) error {
	var b strings.Builder
	for _, expr := range stmt.Expressions {
		val, err := i.evaluateExpression(expr, env)
		if err != nil {
			return err
		}
		b.WriteString(stringify(val))
	}
	i.opts.Output(b.String())
	return nil
}

// executeBlock runs statements sequentially in the current environment. Block
// bodies share the scope of their enclosing construct; only function calls
// swap in a fresh environment.
func (i *Interpreter) executeBlock(block *ast.BlockStatement, env *runtime.Environment) error {
	for _, stmt := range block.Body {
		if err := i.executeStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeIfStatement(stmt *ast.IfStatement, env *runtime.Environment) error {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return i.executeBlock(stmt.Consequent, env)
	}
	if stmt.Alternate != nil {
		return i.executeStatement(stmt.Alternate, env)
	}
	return nil
}

// executeWhileStatement re-tests the condition before every iteration. Break
// and continue signals are absorbed here; everything else unwinds further.
func (i *Interpreter) executeWhileStatement(stmt *ast.WhileStatement, env *runtime.Environment) error {
	for {
		cond, err := i.evaluateExpression(stmt.Condition, env)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := i.executeBlock(stmt.Body, env); err != nil {
			switch err.(type) {
			case breakSignal:
				return nil
			case continueSignal:
				continue
			default:
				return err
			}
		}
	}
}

func (i *Interpreter) executeReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) error {
	var value runtime.Value = runtime.NilValue{}
	if stmt.Value != nil {
		val, err := i.evaluateExpression(stmt.Value, env)
		if err != nil {
			return err
		}
		value = val
	}
	return returnSignal{value: value}
}
