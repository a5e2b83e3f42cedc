// Package interpreter walks the AST, executing statements and evaluating
// expressions against an explicit environment parameter threaded through
// every call. Break, continue, and return travel as typed signal errors that
// the nearest loop or call boundary inspects and absorbs.
package interpreter

import (
	"bufio"
	"errors"
	"io"

	"github.com/oarkflow/log"

	"marathi/interpreter-go/pkg/ast"
	"marathi/interpreter-go/pkg/runtime"
)

// Options configures the interpreter's host collaborators.
type Options struct {
	// Input supplies a line of text for the 'ghya' builtin. Optional.
	Input func() (string, error)
	// Stdin is the synchronous prompt fallback used when Input is nil.
	Stdin io.Reader
	// Output receives one string per print call. Defaults to stdout lines.
	Output func(string)
	// Logger receives runtime-error diagnostics. Defaults to the package
	// default logger.
	Logger *log.Logger
}

// Interpreter owns a single global environment; per-call environments hang
// off function closures. Instances are not safe for concurrent runs, but
// independent instances never share state.
type Interpreter struct {
	global *runtime.Environment
	opts   Options
	stdin  *bufio.Reader
}

func New(opts Options) *Interpreter {
	if opts.Output == nil {
		opts.Output = printLine
	}
	if opts.Logger == nil {
		opts.Logger = &log.DefaultLogger
	}
	i := &Interpreter{
		global: runtime.NewEnvironment(nil),
		opts:   opts,
	}
	if opts.Stdin != nil {
		i.stdin = bufio.NewReader(opts.Stdin)
	}
	i.registerBuiltins()
	return i
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Interpret executes the program's statements in order. Runtime errors are
// logged and stop the statement loop; they are returned so the host can
// observe the failure, but they never panic. Any other error crossing this
// boundary is a defect and is logged as such before propagating.
func (i *Interpreter) Interpret(program *ast.Program) error {
	for _, stmt := range program.Body {
		if err := i.executeStatement(stmt, i.global); err != nil {
			err = normalizeTopLevelSignal(err)
			var rtErr *runtime.Error
			if errors.As(err, &rtErr) {
				i.opts.Logger.Error().Str("error", rtErr.Message).Msg("runtime error")
				return rtErr
			}
			i.opts.Logger.Error().Err(err).Msg("unknown error")
			return err
		}
	}
	return nil
}

// normalizeTopLevelSignal turns control signals that escaped every loop and
// function boundary into runtime errors.
func normalizeTopLevelSignal(err error) error {
	switch err.(type) {
	case returnSignal:
		return runtime.Errorf("'parat' outside a function")
	case breakSignal:
		return runtime.Errorf("'thamba' outside a loop")
	case continueSignal:
		return runtime.Errorf("'pudhe' outside a loop")
	default:
		return err
	}
}

// Control signals. They implement error so they propagate through the same
// return path as real failures, but loop and call boundaries catch them long
// before Interpret.

type breakSignal struct{}

func (breakSignal) Error() string { return "break" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue" }

type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "return" }

func isTruthy(val runtime.Value) bool {
	switch v := val.(type) {
	case runtime.BoolValue:
		return v.Val
	case runtime.NilValue:
		return false
	case runtime.NumberValue:
		return v.Val != 0 && v.Val == v.Val
	case runtime.StringValue:
		return v.Val != ""
	default:
		return true
	}
}
