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

// TaggedValueAccess mediates the payload of a tagged variant written in
// value position: `"<tag>" [...]` or `"<tag>" {...}` (the tag itself has
// already been consumed by Decoder.DecodeEnum or produced by the
// ambiguity-resolution path in DecodeAny). Which Decode method the
// caller uses depends on what variant shape the schema expects — mayfig
// has no way to tell from the tag alone.
type TaggedValueAccess struct {
	d   *Decoder
	tag string
}

func newTaggedValueAccess(d *Decoder, tag string) *TaggedValueAccess {
	return &TaggedValueAccess{d: d, tag: tag}
}

// newTaggedValueAccessFromTag is an alias used by the "any" dispatch
// path, where the tag has already been parsed as an ordinary string
// before the `[` look-ahead revealed it was actually a tagged value.
func newTaggedValueAccessFromTag(d *Decoder, tag string) *TaggedValueAccess {
	return newTaggedValueAccess(d, tag)
}

// Tag returns the variant's tag string.
func (a *TaggedValueAccess) Tag() string { return a.tag }

// DecodeUnit acknowledges a unit variant: the tag alone is the whole
// value, so there is nothing left to consume.
func (a *TaggedValueAccess) DecodeUnit() *Error { return nil }

// DecodeNewtype requires `[` or `{` on the tag's line and runs decodeFn
// against the Decoder for the single inner value. A `[` payload is
// bracket-delimited: decodeFn runs once, then any trailing commas are
// discarded and a `]` is required. A `{` payload delegates straight to
// map decoding without pre-consuming the brace, letting decodeFn call
// d.DecodeMap() itself — this is the bracket/brace asymmetry the
// original implementation handled with a lazy "eat the bracket once"
// shim; expressed here as two explicit branches chosen up front, since
// decodeFn only ever gets one decode request for the whole payload.
func (a *TaggedValueAccess) DecodeNewtype(decodeFn func(*Decoder) *Error) *Error {
	b, has, err := a.d.peekLine()
	if err != nil {
		return err
	}
	if !has {
		return NewError(CodeExpectedValue).WithSpan(NewPointSpan(a.d.r.Position()))
	}
	switch b {
	case '{':
		return decodeFn(a.d)
	case '[':
		a.d.r.Discard()
		a.d.indent++
		if err := decodeFn(a.d); err != nil {
			a.d.indent--
			return err
		}
		a.d.indent--
		for {
			cb, ok := a.d.peekAny()
			if ok && cb == ',' {
				a.d.r.Discard()
				continue
			}
			break
		}
		cb, ok := a.d.peekAny()
		if !ok || cb != ']' {
			return NewError(CodeExpectedSeqEnd).WithSpan(NewPointSpan(a.d.r.Position()))
		}
		a.d.r.Discard()
		return nil
	default:
		return NewError(CodeExpectedValue).WithChar(b).WithSpan(NewPointSpan(a.d.r.Position()))
	}
}

// DecodeTuple requires `[` and returns a SeqAccess for a tuple variant's
// payload; the caller must close it with EndTuple.
func (a *TaggedValueAccess) DecodeTuple() (*SeqAccess, *Error) {
	b, has, err := a.d.peekLine()
	if err != nil {
		return nil, err
	}
	if !has || b != '[' {
		if !has {
			return nil, NewError(CodeExpectedSeq).WithSpan(NewPointSpan(a.d.r.Position()))
		}
		return nil, NewError(CodeExpectedSeq).WithChar(b).WithSpan(NewPointSpan(a.d.r.Position()))
	}
	a.d.r.Discard()
	a.d.indent++
	return newSeqAccess(a.d), nil
}

// EndTuple consumes the closing `]` of a tuple-variant payload.
func (a *TaggedValueAccess) EndTuple() *Error { return a.d.EndSeq() }

// DecodeStruct requires `{` and returns a MapAccess for a struct
// variant's payload; the caller closes it with d.EndMap(true).
func (a *TaggedValueAccess) DecodeStruct() (*MapAccess, *Error) {
	b, has, err := a.d.peekLine()
	if err != nil {
		return nil, err
	}
	if !has || b != '{' {
		if !has {
			return nil, NewError(CodeExpectedMap).WithSpan(NewPointSpan(a.d.r.Position()))
		}
		return nil, NewError(CodeExpectedMap).WithChar(b).WithSpan(NewPointSpan(a.d.r.Position()))
	}
	a.d.r.Discard()
	a.d.indent++
	return newBracedMapAccess(a.d), nil
}

// asSeqAccess is used by the untyped "any" dispatch path once the caller
// has already confirmed `[` is next via peekLine and wants the payload
// treated uniformly as Seq[Value]. It consumes the `[` and returns a
// SeqAccess; finish closes it out.
func (a *TaggedValueAccess) asSeqAccess() *SeqAccess {
	a.d.r.Discard()
	a.d.indent++
	return newSeqAccess(a.d)
}

func (a *TaggedValueAccess) finish() *Error {
	for {
		b, ok := a.d.peekAny()
		if ok && b == ',' {
			a.d.r.Discard()
			continue
		}
		break
	}
	a.d.indent--
	b, ok := a.d.peekAny()
	if !ok || b != ']' {
		return NewError(CodeExpectedSeqEnd).WithSpan(NewPointSpan(a.d.r.Position()))
	}
	a.d.r.Discard()
	return nil
}

// TaggedKeyAccess mediates the payload of a tagged variant written as a
// map key: `<tag> [ ... ]`. Struct payloads are rejected outright — only
// tuple-shaped (or empty) payloads are allowed on a key.
type TaggedKeyAccess struct {
	d   *Decoder
	tag string
}

func newTaggedKeyAccess(d *Decoder, tag string) *TaggedKeyAccess {
	return &TaggedKeyAccess{d: d, tag: tag}
}

// Tag returns the variant's tag string.
func (a *TaggedKeyAccess) Tag() string { return a.tag }

// DecodeUnit acknowledges a unit-variant key.
func (a *TaggedKeyAccess) DecodeUnit() *Error { return nil }

// DecodeTuple requires `[` and returns a SeqAccess for the key's
// payload; an empty `[]` is a legal zero-length payload.
func (a *TaggedKeyAccess) DecodeTuple() (*SeqAccess, *Error) {
	b, has, err := a.d.peekLine()
	if err != nil {
		return nil, err
	}
	if !has || b != '[' {
		if !has {
			return nil, NewError(CodeExpectedSeq).WithSpan(NewPointSpan(a.d.r.Position()))
		}
		return nil, NewError(CodeExpectedSeq).WithChar(b).WithSpan(NewPointSpan(a.d.r.Position()))
	}
	a.d.r.Discard()
	a.d.indent++
	return newSeqAccess(a.d), nil
}

// EndTuple consumes the closing `]` of a key's tuple payload.
func (a *TaggedKeyAccess) EndTuple() *Error { return a.d.EndSeq() }

// DecodeStruct always fails: struct payloads are not legal on a map-key
// tagged enum.
func (a *TaggedKeyAccess) DecodeStruct() (*MapAccess, *Error) {
	return nil, NewError(CodeUnsupportedMapKey).WithKind("struct").WithSpan(NewPointSpan(a.d.r.Position()))
}

func (a *TaggedKeyAccess) asSeqAccess() *SeqAccess {
	a.d.r.Discard()
	a.d.indent++
	return newSeqAccess(a.d)
}

func (a *TaggedKeyAccess) finish() *Error {
	for {
		b, ok := a.d.peekAny()
		if ok && b == ',' {
			a.d.r.Discard()
			continue
		}
		break
	}
	a.d.indent--
	b, ok := a.d.peekAny()
	if !ok || b != ']' {
		return NewError(CodeExpectedSeqEnd).WithSpan(NewPointSpan(a.d.r.Position()))
	}
	a.d.r.Discard()
	return nil
}
