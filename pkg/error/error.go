/*
Provides errors with a captured stack and key/value context.

//
// Sentinel.
var NotFound = liberr.New("not found")

//
// Wrap with description and context.
err = liberr.Wrap(NotFound, "lookup failed", "key", key)

//
// Still matches.
errors.Is(err, NotFound)
*/
package error

import (
	"errors"
	"fmt"
	pkgerr "github.com/pkg/errors"
	"runtime"
	"strings"
)

//
// Max stack depth captured.
const MaxStack = 32

//
// Create a new error.
// The optional kvpair is: [description] key, value, ...
func New(m string, kvpair ...interface{}) error {
	return build(errors.New(m), kvpair)
}

//
// Wrap an error.
// Returns nil when `err` is nil. The wrapped error is
// never modified, so sentinels may be wrapped freely.
// The optional kvpair is: [description] key, value, ...
func Wrap(err error, kvpair ...interface{}) error {
	if err == nil {
		return nil
	}

	return build(err, kvpair)
}

//
// Unwrap an error.
// Returns the innermost cause following both the
// `Unwrap() error` and the pkg/errors `Cause() error` chains.
func Unwrap(err error) (out error) {
	if err == nil {
		return
	}
	out = err
	for {
		var next error
		if w, cast := out.(interface{ Unwrap() error }); cast {
			next = w.Unwrap()
		} else {
			next = pkgerr.Cause(out)
			if next == out {
				next = nil
			}
		}
		if next == nil {
			return
		}
		out = next
	}
}

//
// Error.
// Wraps a root cause.
type Error struct {
	// Call stack.
	stack []string
	// Description.
	description string
	// Wrapped error.
	wrapped error
	// Context key/value pairs.
	context []interface{}
}

//
// Error description.
func (e *Error) Error() string {
	if e.description == "" {
		return e.wrapped.Error()
	}

	return fmt.Sprintf("%s: %s", e.description, e.wrapped.Error())
}

//
// Unwrap the wrapped error.
func (e *Error) Unwrap() error {
	return e.wrapped
}

//
// Description.
func (e *Error) Description() string {
	return e.description
}

//
// Context key/value pairs.
// Includes the context of wrapped errors, innermost first.
func (e *Error) Context() (context []interface{}) {
	var inner *Error
	if errors.As(e.wrapped, &inner) {
		context = append(context, inner.Context()...)
	}
	context = append(context, e.context...)
	return
}

//
// Call stack (formatted).
func (e *Error) Stack() string {
	return strings.Join(e.stack, "\n")
}

//
// Build the error.
func build(err error, kvpair []interface{}) *Error {
	newError := &Error{
		wrapped: err,
	}
	if len(kvpair)%2 != 0 {
		if d, cast := kvpair[0].(string); cast {
			newError.description = d
		}
		kvpair = kvpair[1:]
	}
	newError.context = append(newError.context, kvpair...)
	pc := make([]uintptr, MaxStack)
	// skip: runtime.Callers, build, New|Wrap.
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		f, hasNext := frames.Next()
		newError.stack = append(
			newError.stack,
			fmt.Sprintf("%s()\n\t%s:%d", f.Function, f.File, f.Line))
		if !hasNext {
			break
		}
	}

	return newError
}
