package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// ErrorCode classifies a panekit error.
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrCodeConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Terminal errors
	ErrCodeBackendInit ErrorCode = "BACKEND_INIT"

	// Broken framework invariants: missing pages or contexts, duplicate ids.
	ErrCodeInvariant ErrorCode = "INVARIANT"

	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Error is a coded error with optional context and the stack where it was
// created.
type Error struct {
	Code        ErrorCode
	Message     string
	Underlying  error
	Context     map[string]any
	Stack       []Frame
	Remediation []string
}

// Frame is one captured stack frame.
type Frame struct {
	Function string
	File     string
	Line     int
}

// New creates an error with the given code.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
		Stack:   captureStack(2),
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	e := New(code, fmt.Sprintf(format, args...))
	e.Stack = captureStack(2)
	return e
}

// Wrap attaches a code and message to err. Returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
		Context:    make(map[string]any),
		Stack:      captureStack(2),
	}
}

// Invariant panics with an INVARIANT error. It marks states the framework
// never produces through its public API.
func Invariant(message string, kv ...any) {
	e := New(ErrCodeInvariant, message)
	e.Stack = captureStack(2)
	for i := 0; i+1 < len(kv); i += 2 {
		e.WithContext(fmt.Sprint(kv[i]), kv[i+1])
	}
	panic(e)
}

// WithContext adds a key-value pair to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithRemediation sets hints shown alongside the error.
func (e *Error) WithRemediation(tips ...string) *Error {
	if len(tips) == 0 {
		return e
	}
	e.Remediation = append([]string{}, tips...)
	return e
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", e.Code, e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		sb.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s: %v", k, e.Context[k])
		}
		sb.WriteString("}")
	}

	if e.Underlying != nil {
		fmt.Fprintf(&sb, ": %v", e.Underlying)
	}
	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// StackTrace returns the captured stack, one frame per entry.
func (e *Error) StackTrace() string {
	var sb strings.Builder
	sb.WriteString("Stack trace:\n")
	for i, frame := range e.Stack {
		fmt.Fprintf(&sb, "  %d. %s\n     %s:%d\n", i+1, frame, frame.File, frame.Line)
	}
	return sb.String()
}

func (f Frame) String() string {
	return f.Function
}

func captureStack(skip int) []Frame {
	const maxDepth = 32
	var pcs [maxDepth]uintptr

	n := runtime.Callers(skip+1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		f, more := frames.Next()
		if f.Function != "" {
			out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
		}
		if !more {
			break
		}
	}
	return out
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether any *Error in err's chain has code.
func IsCode(err error, code ErrorCode) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, INTERNAL for
// other errors and "" for nil.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Code
	}
	return ErrCodeInternal
}
