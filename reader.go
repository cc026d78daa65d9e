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

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// isDelimiter reports whether b terminates an unquoted lexeme: ASCII
// whitespace or one of the structural bytes `=,{}[]#`.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '=', ',', '{', '}', '[', ']', '#':
		return true
	}
	return false
}

func isAsciiDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAsciiAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAsciiAlnum(b byte) bool { return isAsciiAlpha(b) || isAsciiDigit(b) }

// Ref is a lexeme returned by a Reader primitive: either a slice
// borrowed directly from the input (no escape processing was needed) or
// a copy of the bytes rewritten into the Reader's scratch buffer (an
// escape forced a rewrite). Borrowed is true in the former case.
//
// The scratch buffer itself is reused and cleared on every lex primitive
// call (see clearScratch), but a Ref with Borrowed false holds its own
// copy of the scratch contents, so its Data stays valid after later
// Reader calls.
type Ref struct {
	Data     []byte
	Borrowed bool
}

// String copies Data into a string.
func (r Ref) String() string { return string(r.Data) }

// Reader is a byte cursor over a mayfig document with position tracking
// and the primitive lexers the Decoder dispatches to. It has no notion
// of the grammar above the lexeme level; Decoder owns that.
type Reader struct {
	input []byte
	pos   int // byte offset of the next unread byte
	line  int // 1-indexed
	col   int // 1-indexed

	scratch bytes.Buffer
}

// NewReader returns a Reader over input, starting at line 1, column 1.
func NewReader(input []byte) *Reader {
	return &Reader{input: input, line: 1, col: 1}
}

// NewReaderString is a convenience wrapper for string input.
func NewReaderString(input string) *Reader {
	return NewReader([]byte(input))
}

// Position returns the Reader's current location.
func (r *Reader) Position() Position {
	return Position{Line: r.line, Col: r.col, Index: r.pos}
}

// AtEOF reports whether the Reader has consumed all input.
func (r *Reader) AtEOF() bool {
	return r.pos >= len(r.input)
}

// Peek returns the next unread byte without consuming it.
func (r *Reader) Peek() (byte, bool) {
	if r.AtEOF() {
		return 0, false
	}
	return r.input[r.pos], true
}

// PeekAt returns the byte n positions ahead of the cursor (0 == Peek)
// without consuming anything.
func (r *Reader) PeekAt(n int) (byte, bool) {
	i := r.pos + n
	if i < 0 || i >= len(r.input) {
		return 0, false
	}
	return r.input[i], true
}

// Next consumes and returns the next byte, advancing line/col. A `\n`
// bumps the line counter and resets the column to 1; any other byte
// advances the column by one.
func (r *Reader) Next() (byte, bool) {
	b, ok := r.Peek()
	if !ok {
		return 0, false
	}
	r.advance(1)
	return b, true
}

// Discard consumes one byte, discarding it. It is a no-op at EOF.
func (r *Reader) Discard() {
	r.Next()
}

// advance moves the cursor forward n bytes (which must be <=
// len(r.input)-r.pos), updating line/col in one pass by counting
// embedded newlines in the just-consumed slice. Grounded on goyang's
// lexer.updateCursor, which does the same to avoid a per-byte line/col
// update when skipping or consuming a known-length run.
func (r *Reader) advance(n int) {
	s := r.input[r.pos : r.pos+n]
	r.pos += n
	if nl := strings.Count(string(s), "\n"); nl > 0 {
		r.line += nl
		last := bytes.LastIndexByte(s, '\n')
		r.col = len(s) - last
		return
	}
	r.col += n
}

// clearScratch resets the scratch buffer. Every lex primitive calls this
// on entry per the invariant that the scratch buffer never carries state
// between lexemes.
func (r *Reader) clearScratch() {
	r.scratch.Reset()
}

// skipIntraLineWhitespace advances past runs of space/tab/CR, stopping
// at the first byte that is none of those (including at `\n`, `#`, or
// EOF).
func (r *Reader) skipIntraLineWhitespace() {
	for {
		b, ok := r.Peek()
		if !ok || (b != ' ' && b != '\t' && b != '\r') {
			return
		}
		r.Discard()
	}
}

// skipLineComment consumes through end-of-line if the cursor is at `#`.
// Returns true if a comment was skipped.
func (r *Reader) skipLineComment() bool {
	b, ok := r.Peek()
	if !ok || b != '#' {
		return false
	}
	for {
		b, ok := r.Peek()
		if !ok || b == '\n' {
			return true
		}
		r.Discard()
	}
}

// Number consumes a numeric lexeme: an optional leading sign, then
// either a symbolic float token (`.inf`, `.nan`, with the leading sign
// retained) or a run of digits/`.`/`e`/`E`/`-`/`+` up to the next
// delimiter. It never interprets the bytes — that is the Decoder's job
// (see parsedNumber in decoder.go) — it only identifies the lexeme's
// extent. A lexeme that is empty, or that hits a non-delimiter byte it
// doesn't recognize as part of a number, raises CodeExpectedNumeric.
func (r *Reader) Number() (Ref, *Error) {
	r.clearScratch()
	start := r.pos
	startPos := r.Position()

	if b, ok := r.Peek(); ok && (b == '+' || b == '-') {
		r.Discard()
	}

	if b, ok := r.Peek(); ok && b == '.' {
		// Possible symbolic float token: `.` followed by one or more
		// ASCII letters (`.inf`, `.nan`). Only treated specially when
		// letters actually follow; otherwise it's an ordinary decimal
		// point and falls through to the general numeric run below.
		if nb, ok := r.PeekAt(1); ok && isAsciiAlpha(nb) {
			r.Discard() // consume '.'
			for {
				b, ok := r.Peek()
				if !ok || !isAsciiAlpha(b) {
					break
				}
				r.Discard()
			}
			return Ref{Data: r.input[start:r.pos], Borrowed: true}, nil
		}
	}

	for {
		b, ok := r.Peek()
		if !ok || isDelimiter(b) {
			break
		}
		switch {
		case isAsciiDigit(b), b == '.', b == 'e', b == 'E', b == '-', b == '+':
			r.Discard()
		default:
			return Ref{}, NewError(CodeExpectedNumeric).WithSpan(NewPointSpan(r.Position()))
		}
	}

	if r.pos == start {
		return Ref{}, NewError(CodeExpectedNumeric).WithSpan(NewPointSpan(startPos))
	}
	return Ref{Data: r.input[start:r.pos], Borrowed: true}, nil
}

// Word consumes a run of ASCII alphanumerics and `_`. A non-delimiter
// byte that isn't part of a word raises CodeExpectedAsciiAlphanumeric.
func (r *Reader) Word() (Ref, *Error) {
	r.clearScratch()
	start := r.pos
	for {
		b, ok := r.Peek()
		if !ok || isDelimiter(b) {
			break
		}
		if !isAsciiAlnum(b) && b != '_' {
			return Ref{}, NewError(CodeExpectedAsciiAlphanumeric).
				WithChar(b).WithSpan(NewPointSpan(r.Position()))
		}
		r.Discard()
	}
	if r.pos == start {
		return Ref{}, NewError(CodeExpectedAsciiAlphanumeric).WithSpan(NewPointSpan(r.Position()))
	}
	return Ref{Data: r.input[start:r.pos], Borrowed: true}, nil
}

var escapeBytes = map[byte]byte{
	'"': '"', '\'': '\'', '\\': '\\', '/': '/',
	'n': '\n', 'r': '\r', 't': '\t', 'b': '\b', 'f': '\f',
}

// StrBytes consumes a quoted string, starting at an opening `"` or `'`
// and ending at the matching close quote. Backslash escapes switch the
// result to the scratch buffer; a string with no escapes is returned as
// a borrow into the input. Raw ASCII control bytes (excluding the quote
// processing itself) are rejected with CodeUnescapedControl. After the
// closing quote, the following byte (if any) must be a delimiter.
func (r *Reader) StrBytes() (Ref, *Error) {
	r.clearScratch()
	quote, ok := r.Peek()
	if !ok || (quote != '"' && quote != '\'') {
		return Ref{}, NewError(CodeExpectedQuote).WithSpan(NewPointSpan(r.Position()))
	}
	r.Discard()

	start := r.pos
	scratchMode := false

	for {
		b, ok := r.Peek()
		if !ok {
			return Ref{}, NewError(CodeEOF).WithSpan(NewPointSpan(r.Position()))
		}
		if b == quote {
			var out Ref
			if scratchMode {
				out = Ref{Data: append([]byte(nil), r.scratch.Bytes()...), Borrowed: false}
			} else {
				out = Ref{Data: r.input[start:r.pos], Borrowed: true}
			}
			r.Discard() // closing quote
			if nb, ok := r.Peek(); ok && !isDelimiter(nb) {
				return Ref{}, NewError(CodeExpectedDelimiter).
					WithChar(nb).WithSpan(NewPointSpan(r.Position()))
			}
			return out, nil
		}
		if b == '\\' {
			if !scratchMode {
				r.scratch.Write(r.input[start:r.pos])
				scratchMode = true
			}
			r.Discard() // consume backslash
			eb, ok := r.Peek()
			if !ok {
				return Ref{}, NewError(CodeEOF).WithSpan(NewPointSpan(r.Position()))
			}
			replacement, known := escapeBytes[eb]
			if !known {
				return Ref{}, NewError(CodeUnknownEscape).
					WithChar(eb).WithSpan(NewPointSpan(r.Position()))
			}
			r.scratch.WriteByte(replacement)
			r.Discard()
			continue
		}
		if b < 0x20 {
			return Ref{}, NewError(CodeUnescapedControl).
				WithChar(b).WithSpan(NewPointSpan(r.Position()))
		}
		if scratchMode {
			r.scratch.WriteByte(b)
		}
		r.Discard()
	}
}

// Str is StrBytes plus a UTF-8 validity check, raising CodeInvalidUTF8
// if the decoded bytes are not valid UTF-8.
func (r *Reader) Str() (Ref, *Error) {
	ref, err := r.StrBytes()
	if err != nil {
		return Ref{}, err
	}
	if !utf8.Valid(ref.Data) {
		return Ref{}, NewError(CodeInvalidUTF8).WithSpan(NewPointSpan(r.Position()))
	}
	return ref, nil
}
