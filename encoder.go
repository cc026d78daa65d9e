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
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Producer is the encode-side dual of AnyVisitor: a type that knows how
// to write itself through an Encoder. The untyped Value tree (see
// value_ser.go) is the reference implementation; a schema-driven caller
// can implement it directly for its own types instead of building a
// Value tree first.
type Producer interface {
	Produce(e *Encoder) *Error
}

// producerFunc adapts a plain function to Producer.
type producerFunc func(*Encoder) *Error

func (f producerFunc) Produce(e *Encoder) *Error { return f(e) }

// Encoder is a type-directed streaming writer for mayfig documents. It
// mirrors Decoder's shape: one Encode method per scalar type, plus
// Begin/End pairs for the composite constructs, driven by the caller
// (or by a Producer) rather than by reflection over Go struct tags.
type Encoder struct {
	w          *bufio.Writer
	indent     int
	indentUnit string
	wroteRoot  bool // true once the document's top-level map has been opened
}

// EncoderOption configures a new Encoder. Mirrors goyang's Options
// struct (pkg/yang/options.go), as a small functional-options set since
// mayfig only has one knob worth exposing.
type EncoderOption func(*Encoder)

// WithIndentUnit overrides the default one-tab indent unit.
func WithIndentUnit(unit string) EncoderOption {
	return func(e *Encoder) { e.indentUnit = unit }
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{w: bufio.NewWriter(w), indentUnit: "\t"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Flush writes any buffered output to the underlying writer.
func (e *Encoder) Flush() *Error {
	if err := e.w.Flush(); err != nil {
		return ioError(err)
	}
	return nil
}

func (e *Encoder) write(s string) *Error {
	if _, err := e.w.WriteString(s); err != nil {
		return ioError(err)
	}
	return nil
}

func (e *Encoder) writeIndentPrefix() *Error {
	return e.write(strings.Repeat(e.indentUnit, e.indent))
}

// --- scalars ---

// EncodeBool writes `true` or `false`.
func (e *Encoder) EncodeBool(b bool) *Error {
	return e.write(strconv.FormatBool(b))
}

// EncodeNumber writes n using its own canonical rendering.
func (e *Encoder) EncodeNumber(n Number) *Error {
	return e.write(n.String())
}

// escapeString renders s as a double-quoted mayfig string literal,
// escaping `"`, `\`, and the named control escapes. Bytes with no named
// escape are written through unchanged — matching the decoder, mayfig
// has no generic \uXXXX escape; that syntax is reserved but unimplemented.
func escapeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// EncodeString writes s as a double-quoted, escaped string literal.
func (e *Encoder) EncodeString(s string) *Error {
	return e.write(escapeString(s))
}

// EncodeBytes writes b as a quoted string of its raw bytes (the dual of
// Decoder.DecodeBytes's string-literal path; the `[ b0 b1 ... ]`
// encoding is available by driving BeginSeq/EndSeq directly).
func (e *Encoder) EncodeBytes(b []byte) *Error {
	return e.EncodeString(string(b))
}

// isBareIdent reports whether s can be written as an unquoted key. It
// mirrors the decoder's DecodeIdentifier + Reader.Word acceptance rule
// exactly (first byte ASCII alphabetic or `_`, remaining bytes ASCII
// alphanumeric or `_`) so that encoding and decoding agree on every
// string a round trip can produce.
func isBareIdent(s string) bool {
	if s == "" {
		return false
	}
	if !isAsciiAlpha(s[0]) && s[0] != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isAsciiAlnum(c) && c != '_' {
			return false
		}
	}
	return true
}

// --- sequences ---

// SeqEncoder writes one `[ ... ]` sequence's elements. The caller must
// invoke EndSeq once done.
type SeqEncoder struct {
	e *Encoder
}

// BeginSeq writes the opening `[ ` and returns a SeqEncoder. It does not
// write any leading separator — callers writing a sequence in map-value
// position are responsible for the leading space that precedes it.
func (e *Encoder) BeginSeq() (*SeqEncoder, *Error) {
	if err := e.write("[ "); err != nil {
		return nil, err
	}
	return &SeqEncoder{e: e}, nil
}

// WriteElement writes one element (self-delimiting; no comma is ever
// emitted) followed by a single space.
func (s *SeqEncoder) WriteElement(p Producer) *Error {
	if err := p.Produce(s.e); err != nil {
		return err
	}
	return s.e.write(" ")
}

// EndSeq writes the closing `]`.
func (e *Encoder) EndSeq() *Error {
	return e.write("]")
}

// --- maps ---

// MapEncoder writes one map's worth of entries, either the implicit
// braceless top-level document (the first map opened on an Encoder) or a
// `{ ... }` nested map.
type MapEncoder struct {
	e      *Encoder
	braced bool
}

// BeginMap opens a map for writing. The very first call on a given
// Encoder opens the document's implicit top-level map, which writes no
// braces; every later call opens a nested `{ ... }` map (the leading
// space before `{` is the caller's responsibility — see EncodeMapValue,
// which writes it before calling BeginMap). BeginMap itself only writes
// the brace and newline, then increments the indent.
func (e *Encoder) BeginMap() (*MapEncoder, *Error) {
	if !e.wroteRoot {
		e.wroteRoot = true
		return &MapEncoder{e: e, braced: false}, nil
	}
	if err := e.write("{\n"); err != nil {
		return nil, err
	}
	e.indent++
	return &MapEncoder{e: e, braced: true}, nil
}

// WriteEntry writes one `<indent><key><sep><value>\n` entry. keyFn must
// call exactly one Encode*/EncodeMapKey method; valueFn must write its
// own separator prefix (EncodeMapValue does this for Value-based
// producers).
func (m *MapEncoder) WriteEntry(keyFn, valueFn func(*Encoder) *Error) *Error {
	if m.braced {
		if err := m.e.writeIndentPrefix(); err != nil {
			return err
		}
	}
	if err := keyFn(m.e); err != nil {
		return err
	}
	if err := valueFn(m.e); err != nil {
		return err
	}
	return m.e.write("\n")
}

// EndMap closes a map opened by BeginMap, writing the closing `}` (at
// the outer indent level) for a braced map, or nothing for the top
// level.
func (e *Encoder) EndMap(m *MapEncoder) *Error {
	if !m.braced {
		return nil
	}
	e.indent--
	if err := e.writeIndentPrefix(); err != nil {
		return err
	}
	return e.write("}")
}

// EncodeMapKey writes v using the map-key policy: a bare-identifier-shaped
// string is unquoted; anything else is quoted or, for non-string keys,
// written the same way the corresponding KeyDecoder method would accept
// it back.
func (e *Encoder) EncodeMapKey(v Value) *Error {
	switch vv := v.(type) {
	case StringValue:
		s := string(vv)
		if isBareIdent(s) {
			return e.write(s)
		}
		return e.EncodeString(s)
	case NumberValue:
		return e.EncodeNumber(Number(vv))
	case BoolValue:
		return e.EncodeBool(bool(vv))
	case SeqValue:
		seq, err := e.BeginSeq()
		if err != nil {
			return err
		}
		for _, elem := range vv {
			elem := elem
			if err := seq.WriteElement(producerFunc(func(inner *Encoder) *Error {
				return EncodeValue(inner, elem)
			})); err != nil {
				return err
			}
		}
		return e.EndSeq()
	case TaggedValue:
		if err := e.EncodeString(vv.Tag); err != nil {
			return err
		}
		if len(vv.Payload) == 0 {
			return nil
		}
		if err := e.write(" "); err != nil {
			return err
		}
		seq, err := e.BeginSeq()
		if err != nil {
			return err
		}
		for _, elem := range vv.Payload {
			elem := elem
			if err := seq.WriteElement(producerFunc(func(inner *Encoder) *Error {
				return EncodeValue(inner, elem)
			})); err != nil {
				return err
			}
		}
		return e.EndSeq()
	default:
		return Custom("mayfig: value of type %T cannot be used as a map key", v)
	}
}

// EncodeMapValue writes the separator and value for a map entry, one of:
// ` = ` for scalars/strings/tagged values/sequences, or ` ` followed by
// the map's own brace for nested maps. A sequence always gets ` = `,
// since a key followed directly by `[` on its line decodes as a tagged
// key.
func (e *Encoder) EncodeMapValue(v Value) *Error {
	switch vv := v.(type) {
	case *MapValue:
		if err := e.write(" "); err != nil {
			return err
		}
		return encodeMapValue(e, vv)
	case SeqValue:
		if err := e.write(" = "); err != nil {
			return err
		}
		return encodeSeqValue(e, vv)
	case TaggedValue:
		if err := e.write(" = "); err != nil {
			return err
		}
		return encodeTaggedValue(e, vv)
	default:
		if err := e.write(" = "); err != nil {
			return err
		}
		return EncodeValue(e, v)
	}
}
