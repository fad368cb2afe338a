package befehl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by [Program.Run] after help text or a completion script was printed. It is
// not a failure; [ExitCode] maps it to 0.
var ErrHelp = errors.New("help requested")

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode classifies a parse-time failure.
type ErrorCode int

const (
	ErrShowHelp ErrorCode = iota + 1
	// ErrUnknownOption is an option token that no declaration of the command matches.
	ErrUnknownOption
	// ErrMissingValues is a strict option with arity inside a group like -abc.
	ErrMissingValues
	// ErrInlineValue is a --name=value token for an option that takes no values.
	ErrInlineValue
	// ErrOptionOrder is an option that appears after the first argument.
	ErrOptionOrder
	// ErrArity is a strict option that collected a different number of values than declared.
	ErrArity
	// ErrTooFewValues is an argument that did not receive enough tokens.
	ErrTooFewValues
	// ErrExtraArguments is input left over after all arguments were bound.
	ErrExtraArguments
	// ErrInvalidValue is a token rejected by a value parser.
	ErrInvalidValue
	// ErrValidation is a rejection by the command's Validate hook.
	ErrValidation
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrShowHelp:
		return "show help"
	case ErrUnknownOption:
		return "unknown option"
	case ErrMissingValues:
		return "missing arguments for option"
	case ErrInlineValue:
		return "unexpected value"
	case ErrOptionOrder:
		return "bad order"
	case ErrArity:
		return "wrong number of values"
	case ErrTooFewValues:
		return "too few values"
	case ErrExtraArguments:
		return "extra arguments"
	case ErrInvalidValue:
		return "invalid value"
	case ErrValidation:
		return "validation failed"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error. Every parse-time failure
// and every Validate rejection is reported as an *Error; use [errors.As] to inspect the code.
type Error struct {
	code    ErrorCode
	command string
	err     error
}

func newParseError(c *compiled, code ErrorCode, format string, args ...any) *Error {
	return &Error{code: code, command: c.path, err: fmt.Errorf(format, args...)}
}

// Code returns the error classification.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Command returns the space separated path of the command that failed, e.g. "root sub". It is empty
// for errors created with [NewError].
func (e *Error) Command() string {
	return e.command
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	if e.command == "" {
		return e.err.Error()
	}
	return e.command + ": " + e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// DeclarationError is returned by [Build] for an ill-formed command tree. It is a programmer error
// and never depends on user input.
type DeclarationError struct {
	// Command is the space separated path of the command holding the bad declaration.
	Command string
	// Declaration names the offending option, argument or subcommand.
	Declaration string
	// Reason says which rule was violated.
	Reason string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("command %q: %s: %s", e.Command, e.Declaration, e.Reason)
}

// NoExecError is returned when a command without subcommands has no execution function.
type NoExecError struct {
	Command string
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command)
}

// ExitCode maps the result of [Program.Run] or [ParseAndRun] to a process exit status: 0 on success
// or after printing help, 1 for everything else.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return 0
	}
	return 1
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
