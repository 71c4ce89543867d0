// Package errcode defines the error taxonomy shared by the size, rate,
// duration and transfer packages. Every failure surfaced by the library
// carries one of these codes, so callers can classify errors without
// matching on message text.
package errcode

import (
	"errors"
	"fmt"
)

type Code int

const (
	CodeParse Code = iota + 1
	CodeUnknownUnit
	CodeInvariant
	CodeDivideByZero
	CodeInvalidArgument
	CodeUnknownLanguage
	CodeMissingFormKey
)

var code2str = map[Code]string{
	CodeParse:           "parse error",
	CodeUnknownUnit:     "unknown unit",
	CodeInvariant:       "invariant violation",
	CodeDivideByZero:    "divide by zero",
	CodeInvalidArgument: "invalid argument",
	CodeUnknownLanguage: "unknown language",
	CodeMissingFormKey:  "missing form key",
}

func (c Code) String() string {
	s, ok := code2str[c]
	if !ok {
		return fmt.Sprintf("unknown code: %d", int(c))
	}
	return s
}

type Error struct {
	code    Code
	message string
}

func (e *Error) Code() Code { return e.code }

func (e *Error) Error() string {
	if e.message == "" {
		return e.code.String()
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func New(code Code, format string, a ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, a...),
	}
}

func NewError(code Code, err error) *Error {
	return New(code, "%s", err.Error())
}

// Is reports whether any error in err's chain carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the code from err's chain, or 0 when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return 0
}
