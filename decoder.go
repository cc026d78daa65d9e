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
	"math"
	"strconv"
	"strings"
)

// Decoder drives a single-pass, consumer-directed decode of a mayfig
// document. It has no notion of a target schema; the caller tells it
// what to parse next by calling the DecodeXxx method matching the
// expected type, and the Decoder returns an error if the source text
// can't satisfy that request.
//
// A Decoder is not safe for concurrent use; exactly one goroutine may
// hold it for the duration of a decode.
type Decoder struct {
	r      *Reader
	indent int // 0 iff positioned at the implicit top-level map
}

// NewDecoder returns a Decoder over input.
func NewDecoder(input []byte) *Decoder {
	return &Decoder{r: NewReader(input)}
}

// NewDecoderString is a convenience wrapper for string input.
func NewDecoderString(input string) *Decoder {
	return NewDecoder([]byte(input))
}

// Position returns the Decoder's current location in the source.
func (d *Decoder) Position() Position { return d.r.Position() }

// AtEOF reports whether the Decoder has consumed the entire document
// (ignoring any trailing whitespace/comments).
func (d *Decoder) AtEOF() bool {
	_, ok := d.peekAny()
	return !ok
}

// --- look-ahead primitives ---

// peekAny skips ASCII whitespace and line comments and returns the next
// significant byte without consuming it, or ok=false at EOF.
func (d *Decoder) peekAny() (byte, bool) {
	for {
		d.r.skipIntraLineWhitespace()
		b, ok := d.r.Peek()
		if !ok {
			return 0, false
		}
		if b == '\n' {
			d.r.Discard()
			continue
		}
		if b == '#' {
			d.r.skipLineComment()
			continue
		}
		return b, true
	}
}

// peekLine skips intra-line whitespace only and returns the next byte on
// the current line without consuming it. ok=false at EOF with nothing
// left on the line; a newline or comment before any content raises
// CodeUnexpectedNewline.
func (d *Decoder) peekLine() (byte, bool, *Error) {
	d.r.skipIntraLineWhitespace()
	b, ok := d.r.Peek()
	if !ok {
		return 0, false, nil
	}
	if b == '\n' || b == '#' {
		return 0, false, NewError(CodeUnexpectedNewline).WithSpan(NewPointSpan(d.r.Position()))
	}
	return b, true, nil
}

// peekNewline skips intra-line whitespace and comments, requires at
// least one `\n` before the next significant byte, and returns that byte
// without consuming it. ok=false at a clean EOF (no more entries). If a
// significant byte is found on the same line with no intervening
// newline, raises CodeExpectedNewline.
func (d *Decoder) peekNewline() (byte, bool, *Error) {
	sawNewline := false
	for {
		d.r.skipIntraLineWhitespace()
		b, ok := d.r.Peek()
		if !ok {
			return 0, false, nil
		}
		if b == '#' {
			d.r.skipLineComment()
			continue
		}
		if b == '\n' {
			d.r.Discard()
			sawNewline = true
			continue
		}
		if !sawNewline {
			return 0, false, NewError(CodeExpectedNewline).WithChar(b).WithSpan(NewPointSpan(d.r.Position()))
		}
		return b, true, nil
	}
}

// --- scalars ---

// DecodeBool skips leading whitespace and comments, reads a word, and
// case-insensitively matches true/false.
func (d *Decoder) DecodeBool() (bool, *Error) {
	d.peekAny()
	start := d.r.Position()
	ref, err := d.r.Word()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(ref.String()) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, NewError(CodeInvalidBool).WithText(ref.String()).WithSpan(NewPointSpan(start))
	}
}

// parsedNumber is the result of lexing+interpreting a numeric lexeme,
// shared by DecodeUint64/DecodeInt64/DecodeFloat64 so each only needs to
// narrow the result to its own range. Leading whitespace and comments are
// skipped first.
func (d *Decoder) parsedNumber() (Number, *Error) {
	d.peekAny()
	start := d.r.Position()
	ref, err := d.r.Number()
	if err != nil {
		return Number{}, err
	}
	text := ref.String()

	lower := strings.ToLower(text)
	switch lower {
	case ".inf", "+.inf":
		return NewFloatNumber(math.Inf(1)), nil
	case "-.inf":
		return NewFloatNumber(math.Inf(-1)), nil
	case ".nan", "+.nan", "-.nan":
		return Number{}, NewError(CodeUnsupportedNaN).WithSpan(NewPointSpan(start))
	}

	if !strings.ContainsAny(text, ".eE") {
		if !strings.HasPrefix(text, "-") {
			trimmed := strings.TrimPrefix(text, "+")
			if u, convErr := strconv.ParseUint(trimmed, 10, 64); convErr == nil {
				return NewUintNumber(u), nil
			}
		} else {
			if i, convErr := strconv.ParseInt(text, 10, 64); convErr == nil {
				return NewIntNumber(i), nil
			}
		}
	}

	f, convErr := strconv.ParseFloat(text, 64)
	if convErr != nil || math.IsNaN(f) {
		return Number{}, NewError(CodeInvalidNum).WithText(text).WithSpan(NewPointSpan(start))
	}
	if math.IsInf(f, 0) {
		// A decimal literal overflowed to infinity; the grammar only
		// allows infinity via the symbolic `.inf` token.
		return Number{}, NewError(CodeInvalidNum).WithText(text).WithSpan(NewPointSpan(start))
	}
	return NewFloatNumber(f), nil
}

// DecodeUint64 reads a numeric lexeme and requires it to be a
// non-negative integer.
func (d *Decoder) DecodeUint64() (uint64, *Error) {
	n, err := d.parsedNumber()
	if err != nil {
		return 0, err
	}
	if u, ok := n.Uint64(); ok {
		return u, nil
	}
	return 0, NewError(CodeInvalidNum).WithText(n.String())
}

// DecodeInt64 reads a numeric lexeme and requires it to be an integer
// (signed or unsigned).
func (d *Decoder) DecodeInt64() (int64, *Error) {
	n, err := d.parsedNumber()
	if err != nil {
		return 0, err
	}
	if i, ok := n.Int64(); ok {
		return i, nil
	}
	return 0, NewError(CodeInvalidNum).WithText(n.String())
}

// DecodeFloat64 reads a numeric lexeme as a 64-bit float, accepting the
// symbolic `.inf`/`-.inf` tokens and rejecting `.nan` with
// CodeUnsupportedNaN.
func (d *Decoder) DecodeFloat64() (float64, *Error) {
	n, err := d.parsedNumber()
	if err != nil {
		return 0, err
	}
	return n.Float64(), nil
}

// DecodeFloat32 is DecodeFloat64 narrowed to float32.
func (d *Decoder) DecodeFloat32() (float32, *Error) {
	f, err := d.DecodeFloat64()
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// DecodeNumber reads a numeric lexeme as a Number, preserving which of
// the three constructors it matched. Used by the untyped Value decoder.
func (d *Decoder) DecodeNumber() (Number, *Error) {
	return d.parsedNumber()
}

// DecodeString skips leading whitespace and comments, requires a quoted
// string, and returns a copy (never a borrow, so callers don't need to
// track the Reader's lifetime).
func (d *Decoder) DecodeString() (string, *Error) {
	d.peekAny()
	ref, err := d.r.Str()
	if err != nil {
		return "", err
	}
	return ref.String(), nil
}

// DecodeStringRef is DecodeString exposing whether the result was
// borrowed from the input or copied out of the scratch buffer, for
// callers that care about the borrow-vs-copy distinction.
func (d *Decoder) DecodeStringRef() (Ref, *Error) {
	d.peekAny()
	return d.r.Str()
}

// DecodeChar requires a quoted string exactly one rune long.
func (d *Decoder) DecodeChar() (rune, *Error) {
	start := d.r.Position()
	s, err := d.DecodeString()
	if err != nil {
		return 0, err
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, NewError(CodeInvalidNum).WithText(s).WithSpan(NewPointSpan(start))
	}
	return runes[0], nil
}

// DecodeBytes accepts either a quoted string (its raw bytes, no UTF-8
// check) or a `[ ... ]` sequence of byte-range integers.
func (d *Decoder) DecodeBytes() ([]byte, *Error) {
	b, ok := d.peekAny()
	if !ok {
		return nil, NewError(CodeExpectedBytes).WithSpan(NewPointSpan(d.r.Position()))
	}
	if b == '"' || b == '\'' {
		ref, err := d.r.StrBytes()
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), ref.Data...), nil
	}
	if b != '[' {
		return nil, NewError(CodeExpectedBytes).WithChar(b).WithSpan(NewPointSpan(d.r.Position()))
	}
	d.r.Discard()
	d.indent++
	acc := newSeqAccess(d)
	var out []byte
	for {
		has, err := acc.HasNext()
		if err != nil {
			d.indent--
			return nil, err
		}
		if !has {
			break
		}
		v, err := d.DecodeUint64()
		if err != nil {
			d.indent--
			return nil, err
		}
		if v > math.MaxUint8 {
			d.indent--
			return nil, NewError(CodeInvalidNum).WithSpan(NewPointSpan(d.r.Position()))
		}
		out = append(out, byte(v))
	}
	d.indent--
	if cb, ok := d.r.Peek(); !ok || cb != ']' {
		return nil, NewError(CodeExpectedSeqEnd).WithSpan(NewPointSpan(d.r.Position()))
	}
	d.r.Discard()
	return out, nil
}

// DecodeIdentifier accepts a quoted string or an unquoted ASCII word
// whose first byte is alphabetic or `_`.
func (d *Decoder) DecodeIdentifier() (string, *Error) {
	b, ok := d.peekAny()
	if !ok {
		return "", NewError(CodeExpectedAsciiAlphabetic).WithSpan(NewPointSpan(d.r.Position()))
	}
	if b == '"' || b == '\'' {
		return d.DecodeString()
	}
	if !isAsciiAlpha(b) && b != '_' {
		return "", NewError(CodeExpectedAsciiAlphabetic).WithChar(b).WithSpan(NewPointSpan(d.r.Position()))
	}
	ref, err := d.r.Word()
	if err != nil {
		return "", err
	}
	return ref.String(), nil
}

// DecodeUnit always fails: mayfig has no unit/void value.
func (d *Decoder) DecodeUnit() *Error {
	return NewError(CodeUnsupportedUnit).WithSpan(NewPointSpan(d.r.Position()))
}

// --- composites ---

// DecodeSeq consumes the opening `[` and returns a SeqAccess the caller
// drives element by element; the caller must consume the closing `]`
// itself once the access reports no more elements (matching the
// Reader-level contract that composing calls, not the access adapter,
// own the surrounding delimiters).
func (d *Decoder) DecodeSeq() (*SeqAccess, *Error) {
	b, ok := d.peekAny()
	if !ok || b != '[' {
		if !ok {
			return nil, NewError(CodeExpectedSeq).WithSpan(NewPointSpan(d.r.Position()))
		}
		return nil, NewError(CodeExpectedSeq).WithChar(b).WithSpan(NewPointSpan(d.r.Position()))
	}
	d.r.Discard()
	d.indent++
	return newSeqAccess(d), nil
}

// EndSeq consumes the closing `]` a SeqAccess returned by DecodeSeq left
// in place, and restores the indent depth.
func (d *Decoder) EndSeq() *Error {
	d.indent--
	b, ok := d.r.Peek()
	if !ok || b != ']' {
		return NewError(CodeExpectedSeqEnd).WithSpan(NewPointSpan(d.r.Position()))
	}
	d.r.Discard()
	return nil
}

// DecodeMap returns a MapAccess for either the implicit top-level map
// (when indent == 0 and the cursor isn't at `{`) or a braced map
// (consuming the `{`). Any other byte is CodeExpectedMap.
func (d *Decoder) DecodeMap() (*MapAccess, *Error) {
	b, ok := d.peekAny()
	if ok && b == '{' {
		d.r.Discard()
		d.indent++
		return newBracedMapAccess(d), nil
	}
	if d.indent == 0 {
		return newTopLevelMapAccess(d), nil
	}
	if !ok {
		return nil, NewError(CodeExpectedMap).WithSpan(NewPointSpan(d.r.Position()))
	}
	return nil, NewError(CodeExpectedMap).WithChar(b).WithSpan(NewPointSpan(d.r.Position()))
}

// EndMap restores the indent depth a braced MapAccess incremented. It is
// a no-op for the top-level map (which never increments indent, since
// indent==0 is itself the top-level map's signature).
func (d *Decoder) EndMap(braced bool) {
	if braced {
		d.indent--
	}
}

// DecodeEnum requires the next byte to be a quote and returns a
// TaggedValueAccess for the tagged-variant payload.
func (d *Decoder) DecodeEnum() (*TaggedValueAccess, *Error) {
	b, ok := d.peekAny()
	if !ok || (b != '"' && b != '\'') {
		if !ok {
			return nil, NewError(CodeExpectedEnum).WithSpan(NewPointSpan(d.r.Position()))
		}
		return nil, NewError(CodeExpectedEnum).WithChar(b).WithSpan(NewPointSpan(d.r.Position()))
	}
	tag, err := d.DecodeString()
	if err != nil {
		return nil, err
	}
	return newTaggedValueAccess(d, tag), nil
}

// MapKey returns a KeyDecoder narrowing this Decoder to the subset of
// types legal as a map key.
func (d *Decoder) MapKey() *KeyDecoder {
	return &KeyDecoder{d: d}
}

// DecodeAny performs the context-sensitive "any" dispatch, calling back
// into v for whichever shape the next bytes describe. It is the entry
// point the untyped Value tree (and any other schema-less consumer) uses.
func (d *Decoder) DecodeAny(v AnyVisitor) *Error {
	b, ok := d.peekAny()
	if !ok {
		return NewError(CodeEOF).WithSpan(NewPointSpan(d.r.Position()))
	}

	switch {
	case d.indent == 0 || b == '{':
		acc, err := d.DecodeMap()
		if err != nil {
			return err
		}
		// The top-level map's values are decoded one level down, so that
		// a value there is not itself taken for another top-level map.
		if !acc.braced {
			d.indent++
		}
		if err := v.VisitMap(acc); err != nil {
			return asError(err, d.r.Position())
		}
		if !acc.braced {
			d.indent--
		}
		d.EndMap(acc.braced)
		return nil

	case b == '[':
		acc, err := d.DecodeSeq()
		if err != nil {
			return err
		}
		if err := v.VisitSeq(acc); err != nil {
			return asError(err, d.r.Position())
		}
		return d.EndSeq()

	case isAsciiDigit(b), b == '.', b == '+', b == '-':
		n, err := d.DecodeNumber()
		if err != nil {
			return err
		}
		if err := v.VisitNumber(n); err != nil {
			return asError(err, d.r.Position())
		}
		return nil

	case b == '"' || b == '\'':
		s, err := d.DecodeString()
		if err != nil {
			return err
		}
		// A string immediately followed by `[` on the same line is a
		// tagged variant whose payload is a sequence; otherwise it's a
		// plain string.
		if lb, has, _ := d.peekLine(); has && lb == '[' {
			acc := newTaggedValueAccessFromTag(d, s)
			payload := acc.asSeqAccess()
			if err := v.VisitTagged(s, payload); err != nil {
				return asError(err, d.r.Position())
			}
			return acc.finish()
		}
		if err := v.VisitString(s); err != nil {
			return asError(err, d.r.Position())
		}
		return nil

	default:
		startPos := d.r.Position()
		ref, werr := d.r.Word()
		if werr != nil {
			return werr
		}
		switch strings.ToLower(ref.String()) {
		case "true":
			if err := v.VisitBool(true); err != nil {
				return asError(err, d.r.Position())
			}
			return nil
		case "false":
			if err := v.VisitBool(false); err != nil {
				return asError(err, d.r.Position())
			}
			return nil
		default:
			return NewError(CodeUnexpectedWord).WithText(ref.String()).WithSpan(NewPointSpan(startPos))
		}
	}
}

// asError normalizes a plain `error` returned by visitor callbacks
// (which may be a Custom validation failure or an *Error bubbled back
// up) into an *Error with a span attached if it doesn't have one yet.
func asError(err error, pos Position) *Error {
	if err == nil {
		return nil
	}
	if me, ok := err.(*Error); ok {
		return me.WithSpan(NewPointSpan(pos))
	}
	return Custom("%v", err).WithSpan(NewPointSpan(pos))
}
