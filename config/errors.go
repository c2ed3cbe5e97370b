package config

import (
	"errors"
	"strings"
)

// Category classifies a fatal failure. Every category ends the run with the same
// "Error" output, the category only shows up in verbose logging.
type Category int

const (
	Unknown Category = iota
	Conflict
	IO
	Parse
	Domain
)

func (c Category) String() string {
	switch c {
	case Conflict:
		return "configuration conflict"
	case IO:
		return "i/o failure"
	case Parse:
		return "parse failure"
	case Domain:
		return "unsupported character"
	default:
		return "unknown failure"
	}
}

type Error struct {
	Category Category
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Category.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

var ErrConflictingInput = &Error{
	Category: Conflict,
	Message:  "-data and -in are mutually exclusive",
}

func NewIOError(path string, cause error) *Error {
	return &Error{Category: IO, Message: path, Cause: cause}
}

func NewParseError(cause error) *Error {
	return &Error{Category: Parse, Message: "invalid arguments", Cause: cause}
}

func NewDomainError(source string, cause error) *Error {
	return &Error{Category: Domain, Message: source, Cause: cause}
}

// Classify returns the category of err, Unknown if err carries none.
func Classify(err error) Category {
	var configErr *Error
	if errors.As(err, &configErr) {
		return configErr.Category
	}
	return Unknown
}
