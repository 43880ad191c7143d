// Package asmerr defines the single error taxonomy shared by every stage of
// the assembler: the pseudocode parser, the raw/pre-tokenized readers, the
// two-pass assembler, and the encoder. Every failure in the pipeline is
// fatal, so there is no recovery API here — just a uniform shape for
// reporting where and why.
package asmerr

import (
	"fmt"
)

// Kind categorizes the failure. Names mirror spec §7 exactly.
type Kind int

const (
	SyntaxError Kind = iota
	UnknownInstruction
	InvalidRegister
	ImmediateRange
	UnknownCondition
	DuplicateLabel
	UndefinedLabel
	MissingOperand
	IO
)

var kindNames = map[Kind]string{
	SyntaxError:         "SyntaxError",
	UnknownInstruction:  "UnknownInstruction",
	InvalidRegister:     "InvalidRegister",
	ImmediateRange:      "ImmediateRange",
	UnknownCondition:    "UnknownCondition",
	DuplicateLabel:      "DuplicateLabel",
	UndefinedLabel:      "UndefinedLabel",
	MissingOperand:      "MissingOperand",
	IO:                  "IO",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position locates a failure in source text. Filename and Line are zero
// when the failure has no source line to point at (e.g. a pre-tokenized
// stream, or an error discovered only during pass 2 at a byte address).
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" && p.Line == 0 {
		return ""
	}
	if p.Filename == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Error is the one error type the whole pipeline returns.
type Error struct {
	Kind    Kind
	Pos     Position
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	loc := e.Pos.String()
	if loc != "" {
		if e.Wrapped != nil {
			return fmt.Sprintf("%s: %s: %v", loc, e.Message, e.Wrapped)
		}
		return fmt.Sprintf("%s: %s", loc, e.Message)
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New creates an Error with no source position.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with no source position, formatting the message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At creates an Error carrying a source position.
func At(kind Kind, pos Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// Atf creates an Error carrying a source position, formatting the message.
func Atf(kind Kind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a kind and message, preserving it for
// errors.Is/As via Unwrap. If err is already an *Error, it is returned
// unchanged (errors are not re-wrapped as they propagate up the pipeline).
func Wrap(kind Kind, message string, err error) *Error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*Error); ok {
		return ae
	}
	return &Error{Kind: kind, Message: message, Wrapped: err}
}

// Diagnostic renders the error as the single "ERROR: <message>\n" line
// spec §6/§7 requires on the diagnostic channel.
func Diagnostic(err error) string {
	return fmt.Sprintf("ERROR: %s\n", err.Error())
}
