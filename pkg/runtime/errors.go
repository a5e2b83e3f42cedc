package runtime

import "fmt"

// Error is the distinguished runtime-error kind: undefined variables, arity
// mismatches, unknown functions/operators, missing input capability. Hosts
// catch it at the top of the statement loop and log it; anything else
// crossing that boundary signals a defect rather than user-program
// misbehavior.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
