package logging

import (
	"errors"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	liberr "github.com/konveyor/linkedlist/pkg/error"
)

//
// Stack key.
const (
	Stack = "stacktrace"
)

//
// Logger factory.
var Factory = func(name string) logr.Logger {
	return builder.New().WithName(name)
}

//
// Generates a unique logger name.
var NameGenerator = func(name string) string {
	return name + uuid.New().String()[:8]
}

//
// Logger builder.
var builder Builder = &ZapBuilder{}

//
// Logger
// Delegates to the real logger.
type Logger struct {
	// Real logger.
	Real logr.Logger
	// Name.
	name string
	// Values.
	values []interface{}
}

//
// Get named logger.
func WithName(name string, kvpair ...interface{}) Logger {
	return Logger{
		Real:   Factory(name).WithValues(kvpair...),
		name:   name,
		values: kvpair,
	}
}

//
// Reset the logger.
// Updates the generated correlation suffix in the name.
func (l *Logger) Reset() {
	name := NameGenerator(l.name + "|")
	l.Real = Factory(name)
	if len(l.values) > 0 {
		l.Real = l.Real.WithValues(l.values...)
	}
}

//
// Logs at info.
func (l Logger) Info(message string, kvpair ...interface{}) {
	l.Real.Info(message, kvpair...)
}

//
// Logs an error.
// A nil `err` is ignored.
func (l Logger) Error(err error, message string, kvpair ...interface{}) {
	if err == nil {
		return
	}
	var le *liberr.Error
	if errors.As(err, &le) {
		if d := le.Description(); d != "" && message == "" {
			message = d
		}
		context := append(le.Context(), kvpair...)
		context = append(context, Stack, le.Stack())
		l.Real.Error(err, message, context...)
		return
	}

	l.Real.Error(err, message, kvpair...)
}

//
// Trace an error.
func (l Logger) Trace(err error, kvpair ...interface{}) {
	l.Error(err, "", kvpair...)
}

//
// Get logger with verbosity level.
func (l Logger) V(level int) Logger {
	return Logger{
		Real:   builder.V(level, l.Real),
		name:   l.name,
		values: l.values,
	}
}

//
// Get whether logger is enabled.
func (l Logger) Enabled() bool {
	return l.Real.Enabled()
}

//
// Get logger with values.
func (l Logger) WithValues(kvpair ...interface{}) Logger {
	return Logger{
		Real:   l.Real.WithValues(kvpair...),
		name:   l.name,
		values: append(append([]interface{}{}, l.values...), kvpair...),
	}
}

//
// Name.
func (l Logger) Name() string {
	return l.name
}
