package interpreter

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"marathi/interpreter-go/pkg/runtime"
)

// stringify renders a runtime value for print output: nil prints as the
// literal text "nil", numbers use the shortest round-trippable form, and
// non-finite numbers keep their loose-semantics names.
func stringify(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.NilValue:
		return "nil"
	case runtime.StringValue:
		return v.Val
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case runtime.NumberValue:
		switch {
		case math.IsNaN(v.Val):
			return "NaN"
		case math.IsInf(v.Val, 1):
			return "Infinity"
		case math.IsInf(v.Val, -1):
			return "-Infinity"
		default:
			return strconv.FormatFloat(v.Val, 'f', -1, 64)
		}
	case *runtime.ListValue:
		parts := make([]string, 0, len(v.Elements))
		for _, el := range v.Elements {
			parts = append(parts, stringify(el))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *runtime.FunctionValue:
		return "<karya " + v.Declaration.Name + ">"
	case runtime.NativeFunctionValue:
		return "<karya " + v.Name + ">"
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}

func printLine(s string) {
	fmt.Fprintln(os.Stdout, s)
}
