package interpreter

import (
	"strings"

	"marathi/interpreter-go/pkg/ast"
	"marathi/interpreter-go/pkg/runtime"
)

// registerBuiltins installs the list helpers as native functions in the
// global scope. The 'ghya' and 'bola' builtins are intercepted by name in
// call evaluation instead, so user declarations cannot shadow them.
func (i *Interpreter) registerBuiltins() {
	i.global.Define("jod", runtime.NativeFunctionValue{
		Name:  "jod",
		Arity: 2,
		Impl: func(args []runtime.Value) (runtime.Value, error) {
			list, ok := args[0].(*runtime.ListValue)
			if !ok {
				return nil, runtime.Errorf("'jod' expects a list, got %s", args[0].Kind())
			}
			list.Elements = append(list.Elements, args[1])
			return list, nil
		},
	})
	i.global.Define("moj", runtime.NativeFunctionValue{
		Name:  "moj",
		Arity: 1,
		Impl: func(args []runtime.Value) (runtime.Value, error) {
			switch v := args[0].(type) {
			case *runtime.ListValue:
				return runtime.NumberValue{Val: float64(len(v.Elements))}, nil
			case runtime.StringValue:
				return runtime.NumberValue{Val: float64(len([]rune(v.Val)))}, nil
			default:
				return nil, runtime.Errorf("'moj' expects a list or string, got %s", v.Kind())
			}
		},
	})
}

// callInput suspends on the configured input provider, or falls back to a
// synchronous line read from Stdin. The provided text is returned verbatim
// with no numeric coercion. An optional single argument is shown as a prompt.
func (i *Interpreter) callInput(expr *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	if len(expr.Arguments) > 1 {
		return nil, runtime.Errorf("function 'ghya' expects at most 1 argument(s) but got %d", len(expr.Arguments))
	}
	prompt := ""
	if len(expr.Arguments) == 1 {
		val, err := i.evaluateExpression(expr.Arguments[0], env)
		if err != nil {
			return nil, err
		}
		prompt = stringify(val)
	}

	if i.opts.Input != nil {
		text, err := i.opts.Input()
		if err != nil {
			return nil, runtime.Errorf("input failed: %v", err)
		}
		return runtime.StringValue{Val: text}, nil
	}
	if i.stdin != nil {
		if prompt != "" {
			i.opts.Output(prompt)
		}
		line, err := i.stdin.ReadString('\n')
		if err != nil && line == "" {
			return nil, runtime.Errorf("input failed: %v", err)
		}
		return runtime.StringValue{Val: strings.TrimRight(line, "\r\n")}, nil
	}
	return nil, runtime.Errorf("input is not available in this environment")
}

// callPrint is the print-as-expression builtin: arguments joined with single
// spaces, one call to the output sink, result nil.
func (i *Interpreter) callPrint(expr *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	parts := make([]string, 0, len(expr.Arguments))
	for _, argExpr := range expr.Arguments {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		parts = append(parts, stringify(val))
	}
	i.opts.Output(strings.Join(parts, " "))
	return runtime.NilValue{}, nil
}
