/*
Package scanner implements a buffered reader for whitespace separated tokens.

Input is consumed one line at a time. Every line is kept as a buffer owned by
the reader and split into words by a small lexmachine DFA; a token is a maximal
run of non-blank bytes. Tokens are parsed into Go types on demand:

    r := scanner.NewReader(os.Stdin)
    n, err := scanner.Read[int](r)       // next token as an int
    name, err := scanner.Read[string](r) // next token verbatim
    line, err := r.ReadLine()            // rest of line, or next raw line

Line breaks are not significant for token reading. Running out of input while a
token is requested is an error of kind partition.ParseFailure, wrapping io.EOF.

Input lines are validated to be UTF-8, unless the reader has been created with
option TrustEncoding.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/partition"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'partition.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("partition.scanner")
}

// Reader reads whitespace separated tokens from an input source.
// Create one with NewReader. A Reader is not safe for concurrent use.
type Reader struct {
	src    *bufio.Reader
	line   []byte              // current line, owned by the reader
	lineno int                 // number of current line, starting at 1
	words  *lexmachine.Scanner // cursor into line; nil if line is used up
	trust  bool                // skip UTF-8 validation
}

// NewReader creates a token reader for an input source.
func NewReader(input io.Reader, opts ...Option) *Reader {
	r := &Reader{
		src:   bufio.NewReader(input),
		trust: gconf.GetBool("scanner.trust-encoding"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NextToken returns the next whitespace separated token, reading more lines
// from the input source as needed.
func (r *Reader) NextToken() (Token, error) {
	for {
		if r.words != nil {
			tok, err, eos := r.words.Next()
			if err != nil {
				return Token{}, partition.Wrap(partition.ParseFailure, "read", err)
			}
			if !eos {
				token := tok.(Token)
				token.line = r.lineno
				return token, nil
			}
			r.words = nil
		}
		if err := r.refill(); err != nil {
			return Token{}, err
		}
	}
}

// Next returns the lexeme of the next token.
func (r *Reader) Next() (string, error) {
	token, err := r.NextToken()
	return token.lexeme, err
}

// ReadLine returns the next line of input, including its line terminator, if any.
//
// If the current line still holds unread tokens, ReadLine instead returns the
// remainder of the current line, starting at its next token. This differs from
// "next raw line": a partially consumed line is finished first, and the source
// is not advanced. Either way the following token will be read from a fresh line.
//
// At the end of input ReadLine returns "" and io.EOF.
func (r *Reader) ReadLine() (string, error) {
	if r.words != nil {
		rest := bytes.TrimLeft(r.line[r.words.TC:], " \t\r\x0c")
		r.words = nil
		if len(bytes.TrimSpace(rest)) > 0 {
			return string(rest), nil
		}
	}
	line, err := r.readLine()
	if err != nil {
		return "", err
	}
	return string(line), nil
}

// Line returns the number of the line most recently read, starting at 1.
func (r *Reader) Line() int {
	return r.lineno
}

// refill reads the next line and starts splitting it into words.
func (r *Reader) refill() error {
	line, err := r.readLine()
	if err == io.EOF {
		tracer().Debugf("reader reached end of input after line %d", r.lineno)
		return &partition.Error{
			Kind: partition.ParseFailure,
			Op:   "read",
			Msg:  "input exhausted",
			Err:  io.EOF,
		}
	} else if err != nil {
		return err
	}
	lexer, err := words()
	if err != nil {
		return partition.Wrap(partition.ParseFailure, "read", err)
	}
	if r.words, err = lexer.Scanner(line); err != nil {
		return partition.Wrap(partition.ParseFailure, "read", err)
	}
	r.line = line
	tracer().Debugf("refilled line %d with %d bytes", r.lineno, len(line))
	return nil
}

// readLine reads a line from the source. It returns io.EOF only if there is
// nothing left to read; an unterminated last line is returned without error.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.src.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, partition.Wrap(partition.ParseFailure, "read", err)
	}
	if len(line) == 0 {
		return nil, io.EOF
	}
	r.lineno++
	if !r.trust && !utf8.Valid(line) {
		err := partition.Errorf(partition.ParseFailure, "read", "line %d is not valid UTF-8", r.lineno)
		tracer().Errorf(err.Error())
		return nil, err
	}
	return line, nil
}

// --- Tokens ----------------------------------------------------------------

// Token is a whitespace separated word of the input.
type Token struct {
	lexeme string
	span   partition.Span // byte positions within its line
	line   int
}

// Lexeme returns the text of the token.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span returns the byte positions of the token within its line.
func (t Token) Span() partition.Span {
	return t.span
}

// Line returns the number of the line the token has been read from, starting at 1.
func (t Token) Line() int {
	return t.line
}

func (t Token) String() string {
	return fmt.Sprintf("%q@%d%v", t.lexeme, t.line, t.span)
}

// --- Options ---------------------------------------------------------------

// Option configures a reader.
type Option func(r *Reader)

// TrustEncoding sets or clears UTF-8 validation of input lines. Clients should
// set it only for input which is known to be valid. It overrides configuration
// key "scanner.trust-encoding".
func TrustEncoding(b bool) Option {
	return func(r *Reader) {
		r.trust = b
	}
}
