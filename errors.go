// Copyright 2026 The Mayfig Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mayfig

import "fmt"

// Code identifies the kind of failure an Error carries. The taxonomy
// follows the three structural layers of the decoder/encoder (lexical,
// structural, semantic) plus a fourth for errors propagated in from
// outside the codec (I/O, consumer-defined validation).
type Code int

const (
	// Lexical errors: the byte stream itself is malformed.
	CodeEOF Code = iota
	CodeInvalidUTF8
	CodeUnknownEscape
	CodeUnescapedControl
	CodeExpectedDelimiter

	// Structural errors: bytes are well-formed but not where the grammar
	// requires them.
	CodeExpectedNewline
	CodeUnexpectedNewline
	CodeExpectedQuote
	CodeExpectedValue
	CodeExpectedMap
	CodeExpectedSeq
	CodeExpectedSeqEnd
	CodeExpectedEnum
	CodeExpectedBytes
	CodeExpectedNumeric
	CodeExpectedAsciiAlphabetic
	CodeExpectedAsciiAlphanumeric

	// Semantic errors: the bytes parsed, but don't mean what was asked.
	CodeInvalidBool
	CodeInvalidNum
	CodeUnexpectedWord
	CodeUnsupportedUnit
	CodeUnsupportedNaN
	CodeUnsupportedNone
	CodeUnsupportedMapKey

	// Propagated errors: raised outside the grammar layer.
	CodeIO
	CodeCustom
)

var codeNames = map[Code]string{
	CodeEOF:                     "unexpected end of input",
	CodeInvalidUTF8:             "invalid UTF-8",
	CodeUnknownEscape:           "unknown escape sequence",
	CodeUnescapedControl:        "unescaped control byte",
	CodeExpectedDelimiter:       "expected delimiter",
	CodeExpectedNewline:         "expected newline",
	CodeUnexpectedNewline:       "unexpected newline",
	CodeExpectedQuote:           "expected quote",
	CodeExpectedValue:           "expected value",
	CodeExpectedMap:             "expected map",
	CodeExpectedSeq:             "expected sequence",
	CodeExpectedSeqEnd:          "expected end of sequence",
	CodeExpectedEnum:            "expected enum",
	CodeExpectedBytes:           "expected bytes",
	CodeExpectedNumeric:         "expected numeric literal",
	CodeExpectedAsciiAlphabetic: "expected ASCII alphabetic byte",
	CodeExpectedAsciiAlphanumeric: "expected ASCII alphanumeric byte",
	CodeInvalidBool:             "invalid bool",
	CodeInvalidNum:              "invalid number",
	CodeUnexpectedWord:          "unexpected word",
	CodeUnsupportedUnit:         "unit values are not supported",
	CodeUnsupportedNaN:          "NaN is not supported",
	CodeUnsupportedNone:         "none/null is not supported",
	CodeUnsupportedMapKey:       "unsupported map key type",
	CodeIO:                      "I/O error",
	CodeCustom:                  "custom error",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is the single error type raised by every decode/encode operation
// in this package. It carries a Code, an optional Span (set lazily by the
// innermost failure site, never overwritten on the way back up the call
// stack), and free-form payload fields used by some codes for a more
// specific message.
type Error struct {
	Code Code
	Span *Span

	// Payload fields, populated depending on Code. Not all codes use
	// all fields.
	Char  byte   // the offending byte, for ExpectedX(ch)-style codes
	Text  string // the offending lexeme, for InvalidBool/InvalidNum/UnexpectedWord
	Kind  string // a type-kind name, for UnsupportedMapKey(kind)
	Cause error  // wrapped I/O error, for CodeIO
}

// NewError returns an *Error with no span attached yet.
func NewError(code Code) *Error {
	return &Error{Code: code}
}

// WithSpan returns a copy of e with its span set, unless it is already
// set — propagation never overwrites an existing span, so the span
// reported is always the one closest to the original failure.
func (e *Error) WithSpan(s Span) *Error {
	if e.Span != nil {
		return e
	}
	cp := *e
	cp.Span = &s
	return &cp
}

// WithChar sets the offending byte payload and returns e.
func (e *Error) WithChar(c byte) *Error {
	e.Char = c
	return e
}

// WithText sets the offending-lexeme payload and returns e.
func (e *Error) WithText(t string) *Error {
	e.Text = t
	return e
}

// WithKind sets the type-kind payload and returns e.
func (e *Error) WithKind(k string) *Error {
	e.Kind = k
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Code.String()
	switch e.Code {
	case CodeExpectedDelimiter, CodeExpectedNewline, CodeExpectedQuote,
		CodeExpectedValue, CodeExpectedMap, CodeExpectedSeq, CodeExpectedSeqEnd,
		CodeExpectedEnum, CodeExpectedBytes, CodeUnknownEscape, CodeUnescapedControl:
		if e.Char != 0 {
			msg = fmt.Sprintf("%s (got %q)", msg, e.Char)
		}
	case CodeInvalidBool, CodeInvalidNum, CodeUnexpectedWord:
		if e.Text != "" {
			msg = fmt.Sprintf("%s: %q", msg, e.Text)
		}
	case CodeUnsupportedMapKey:
		if e.Kind != "" {
			msg = fmt.Sprintf("%s: %s", msg, e.Kind)
		}
	case CodeCustom:
		if e.Text != "" {
			msg = e.Text
		}
	case CodeIO:
		if e.Cause != nil {
			msg = fmt.Sprintf("%s: %v", msg, e.Cause)
		}
	}
	if e.Span != nil {
		return fmt.Sprintf("%s at %s", msg, e.Span)
	}
	return msg
}

// Unwrap exposes a wrapped I/O cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Custom builds a CodeCustom error carrying a consumer-supplied message,
// the only Code a decode/encode consumer is expected to construct
// directly (e.g. from a validating newtype wrapper).
func Custom(format string, args ...any) *Error {
	return &Error{Code: CodeCustom, Text: fmt.Sprintf(format, args...)}
}

// ioError wraps an I/O failure from the Encoder's underlying writer.
func ioError(cause error) *Error {
	return &Error{Code: CodeIO, Cause: cause}
}
