package interpreter

import (
	"math"
	"strconv"
	"strings"

	"marathi/interpreter-go/pkg/ast"
	"marathi/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return literalValue(n), nil
	case *ast.Identifier:
		return env.Get(n.Name)
	case *ast.ListLiteral:
		elements := make([]runtime.Value, 0, len(n.Elements))
		for _, el := range n.Elements {
			val, err := i.evaluateExpression(el, env)
			if err != nil {
				return nil, err
			}
			elements = append(elements, val)
		}
		return &runtime.ListValue{Elements: elements}, nil
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.CallExpression:
		return i.evaluateCallExpression(n, env)
	case *ast.MemberExpression:
		return i.evaluateMemberExpression(n, env)
	default:
		return nil, runtime.Errorf("unknown expression type '%s'", n.NodeType())
	}
}

// literalValue maps the parser's stored value onto a runtime value. A quoted
// numeral stays a string; only the parser decides what is a number.
func literalValue(lit *ast.Literal) runtime.Value {
	switch v := lit.Value.(type) {
	case float64:
		return runtime.NumberValue{Val: v}
	case string:
		return runtime.StringValue{Val: v}
	case bool:
		return runtime.BoolValue{Val: v}
	default:
		return runtime.NilValue{}
	}
}

// evaluateBinaryExpression evaluates both operands eagerly; 'ani' and 'kimva'
// do not short-circuit.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "+":
		if left.Kind() == runtime.KindString || right.Kind() == runtime.KindString {
			return runtime.StringValue{Val: stringify(left) + stringify(right)}, nil
		}
		return runtime.NumberValue{Val: toNumber(left) + toNumber(right)}, nil
	case "-":
		return runtime.NumberValue{Val: toNumber(left) - toNumber(right)}, nil
	case "*":
		return runtime.NumberValue{Val: toNumber(left) * toNumber(right)}, nil
	case "/":
		// IEEE semantics: dividing by zero yields an infinity, not an error.
		return runtime.NumberValue{Val: toNumber(left) / toNumber(right)}, nil
	case "%":
		return runtime.NumberValue{Val: math.Mod(toNumber(left), toNumber(right))}, nil
	case "==":
		return runtime.BoolValue{Val: looseEquals(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !looseEquals(left, right)}, nil
	case ">", ">=", "<", "<=":
		return compareValues(expr.Operator, left, right), nil
	case "ani":
		if !isTruthy(left) {
			return left, nil
		}
		return right, nil
	case "kimva":
		if isTruthy(left) {
			return left, nil
		}
		return right, nil
	default:
		return nil, runtime.Errorf("unknown operator '%s'", expr.Operator)
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(expr.Argument, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case "-":
		return runtime.NumberValue{Val: -toNumber(val)}, nil
	case "nahi":
		return runtime.BoolValue{Val: !isTruthy(val)}, nil
	default:
		return nil, runtime.Errorf("unknown operator '%s'", expr.Operator)
	}
}

// evaluateMemberExpression handles computed indexing over lists and strings.
// Dotted property access has no runtime meaning in this language.
func (i *Interpreter) evaluateMemberExpression(expr *ast.MemberExpression, env *runtime.Environment) (runtime.Value, error) {
	if !expr.Computed {
		return nil, runtime.Errorf("property access is not supported")
	}
	object, err := i.evaluateExpression(expr.Object, env)
	if err != nil {
		return nil, err
	}
	property, err := i.evaluateExpression(expr.Property, env)
	if err != nil {
		return nil, err
	}
	idx, ok := indexOf(property)
	if !ok {
		return nil, runtime.Errorf("list index must be a whole number, got %s", stringify(property))
	}
	switch obj := object.(type) {
	case *runtime.ListValue:
		if idx < 0 || idx >= len(obj.Elements) {
			return nil, runtime.Errorf("index %d out of range for list of length %d", idx, len(obj.Elements))
		}
		return obj.Elements[idx], nil
	case runtime.StringValue:
		runes := []rune(obj.Val)
		if idx < 0 || idx >= len(runes) {
			return nil, runtime.Errorf("index %d out of range for string of length %d", idx, len(runes))
		}
		return runtime.StringValue{Val: string(runes[idx])}, nil
	default:
		return nil, runtime.Errorf("cannot index a %s", object.Kind())
	}
}

func indexOf(val runtime.Value) (int, bool) {
	num, ok := val.(runtime.NumberValue)
	if !ok {
		return 0, false
	}
	if num.Val != math.Trunc(num.Val) || math.IsInf(num.Val, 0) || math.IsNaN(num.Val) {
		return 0, false
	}
	return int(num.Val), true
}

// toNumber applies loose numeric coercion: booleans become 0/1, nil becomes
// 0, fully-numeric strings parse, everything else is NaN.
func toNumber(val runtime.Value) float64 {
	switch v := val.(type) {
	case runtime.NumberValue:
		return v.Val
	case runtime.BoolValue:
		if v.Val {
			return 1
		}
		return 0
	case runtime.NilValue:
		return 0
	case runtime.StringValue:
		trimmed := strings.TrimSpace(v.Val)
		if trimmed == "" {
			return 0
		}
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return n
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}

// looseEquals is an exhaustive match over the operand kind pairs: same-kind
// comparisons are direct, numbers and strings cross-compare numerically,
// booleans coerce to numbers, nil equals only nil, and reference kinds
// compare by identity.
func looseEquals(left, right runtime.Value) bool {
	switch l := left.(type) {
	case runtime.NilValue:
		return right.Kind() == runtime.KindNil
	case runtime.NumberValue:
		switch right.Kind() {
		case runtime.KindNumber, runtime.KindString, runtime.KindBool:
			return l.Val == toNumber(right)
		default:
			return false
		}
	case runtime.StringValue:
		switch r := right.(type) {
		case runtime.StringValue:
			return l.Val == r.Val
		case runtime.NumberValue, runtime.BoolValue:
			return toNumber(l) == toNumber(right)
		default:
			return false
		}
	case runtime.BoolValue:
		switch right.Kind() {
		case runtime.KindNumber, runtime.KindString, runtime.KindBool:
			return toNumber(l) == toNumber(right)
		default:
			return false
		}
	case *runtime.ListValue:
		r, ok := right.(*runtime.ListValue)
		return ok && l == r
	case *runtime.FunctionValue:
		r, ok := right.(*runtime.FunctionValue)
		return ok && l == r
	case runtime.NativeFunctionValue:
		r, ok := right.(runtime.NativeFunctionValue)
		return ok && l.Name == r.Name
	default:
		return false
	}
}

// compareValues orders two strings lexicographically and anything else
// numerically.
func compareValues(op string, left, right runtime.Value) runtime.Value {
	var cmp int
	if left.Kind() == runtime.KindString && right.Kind() == runtime.KindString {
		cmp = strings.Compare(left.(runtime.StringValue).Val, right.(runtime.StringValue).Val)
	} else {
		l, r := toNumber(left), toNumber(right)
		if math.IsNaN(l) || math.IsNaN(r) {
			return runtime.BoolValue{Val: false}
		}
		switch {
		case l < r:
			cmp = -1
		case l > r:
			cmp = 1
		}
	}
	switch op {
	case ">":
		return runtime.BoolValue{Val: cmp > 0}
	case ">=":
		return runtime.BoolValue{Val: cmp >= 0}
	case "<":
		return runtime.BoolValue{Val: cmp < 0}
	default:
		return runtime.BoolValue{Val: cmp <= 0}
	}
}

// evaluateCallExpression intercepts the 'ghya' and 'bola' builtins by name,
// then resolves the callee in the environment. Arguments are evaluated in
// the caller's environment before the callee's fresh scope exists.
func (i *Interpreter) evaluateCallExpression(expr *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	name := expr.Callee.Name
	switch name {
	case "ghya":
		return i.callInput(expr, env)
	case "bola":
		return i.callPrint(expr, env)
	}

	callee, err := env.Get(name)
	if err != nil {
		return nil, runtime.Errorf("unknown function '%s'", name)
	}

	args := make([]runtime.Value, 0, len(expr.Arguments))
	for _, argExpr := range expr.Arguments {
		arg, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {
	case runtime.NativeFunctionValue:
		if len(args) != fn.Arity {
			return nil, runtime.Errorf("function '%s' expects %d argument(s) but got %d", fn.Name, fn.Arity, len(args))
		}
		return fn.Impl(args)
	case *runtime.FunctionValue:
		return i.callFunction(fn, args)
	default:
		return nil, runtime.Errorf("unknown function '%s'", name)
	}
}

// callFunction runs a user function in a fresh environment parented to the
// closure captured at definition time. A return signal becomes the call's
// result; falling off the end yields nil.
func (i *Interpreter) callFunction(fn *runtime.FunctionValue, args []runtime.Value) (runtime.Value, error) {
	decl := fn.Declaration
	if len(args) != len(decl.Parameters) {
		return nil, runtime.Errorf("function '%s' expects %d argument(s) but got %d", decl.Name, len(decl.Parameters), len(args))
	}
	callEnv := fn.Closure.Extend()
	for idx, param := range decl.Parameters {
		callEnv.Define(param, args[idx])
	}
	if err := i.executeBlock(decl.Body, callEnv); err != nil {
		switch sig := err.(type) {
		case returnSignal:
			return sig.value, nil
		case breakSignal:
			return nil, runtime.Errorf("'thamba' outside a loop")
		case continueSignal:
			return nil, runtime.Errorf("'pudhe' outside a loop")
		default:
			return nil, err
		}
	}
	return runtime.NilValue{}, nil
}
