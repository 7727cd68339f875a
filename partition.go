package partition

import (
	"fmt"
	"strings"
)

// --- Errors ----------------------------------------------------------------

// ErrorKind categorizes errors produced by packages of this module.
// Every kind denotes a contract violation by the caller, never a corrupted
// internal state: all errors are detected before any mutation happens.
type ErrorKind int

// Kinds of errors. We deliberately keep this list short.
const (
	NoError            ErrorKind = iota
	OutOfRange                   // element index outside of a universe
	ParseFailure                 // token missing or not convertible to the requested type
	ArithmeticOverflow           // result not representable
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case ParseFailure:
		return "parse failure"
	case ArithmeticOverflow:
		return "arithmetic overflow"
	}
	return "no error"
}

// Error is the error type for all packages of this module. Op names the
// operation which failed (e.g. "find"), Msg is an optional detail message and
// Err an optional underlying error.
type Error struct {
	Kind ErrorKind
	Op   string
	Msg  string
	Err  error
}

// Sentinel errors to be used with errors.Is:
//
//     if errors.Is(err, partition.ErrOutOfRange) { … }
//
var (
	ErrOutOfRange         = &Error{Kind: OutOfRange}
	ErrParseFailure       = &Error{Kind: ParseFailure}
	ErrArithmeticOverflow = &Error{Kind: ArithmeticOverflow}
)

// Errorf creates a new error of kind k for operation op.
func Errorf(k ErrorKind, op string, format string, args ...interface{}) *Error {
	return &Error{
		Kind: k,
		Op:   op,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new error of kind k for operation op, wrapping err.
func Wrap(k ErrorKind, op string, err error) *Error {
	return &Error{Kind: k, Op: op, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(" (")
		b.WriteString(e.Err.Error())
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches target if target is an *Error of the same kind. Sentinels (errors
// without an Op) match every error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op == "" && t.Msg == "" && t.Err == nil {
		return e.Kind == t.Kind
	}
	return e.Kind == t.Kind && e.Op == t.Op
}

// --- Spans ------------------------------------------------------------

// Span locates a token within its input line as byte offsets: the offset
// of the token's first byte and the offset just behind its last byte. Spans
// are relative to the line, not to the whole input.
type Span [2]uint64

// From returns the offset of the first byte.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the offset just behind the last byte.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the number of bytes covered.
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, which locates no token.
func (s Span) IsNull() bool {
	return s == Span{}
}

// String formats a span as (from…to).
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
