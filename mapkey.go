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

// KeyDecoder is a Decoder narrowed to the subset of types legal as a
// map key: strings/identifiers, scalars, sequences/tuples, and
// tagged-enum keys (with struct payloads rejected). Maps, bytes, and
// unit values are not valid keys.
type KeyDecoder struct {
	d *Decoder
}

// DecodeBool reads a key-position bool the same way a value would be.
func (k *KeyDecoder) DecodeBool() (bool, *Error) { return k.d.DecodeBool() }

// DecodeUint64 reads a key-position unsigned integer.
func (k *KeyDecoder) DecodeUint64() (uint64, *Error) { return k.d.DecodeUint64() }

// DecodeInt64 reads a key-position integer.
func (k *KeyDecoder) DecodeInt64() (int64, *Error) { return k.d.DecodeInt64() }

// DecodeFloat64 reads a key-position float.
func (k *KeyDecoder) DecodeFloat64() (float64, *Error) { return k.d.DecodeFloat64() }

// DecodeNumber reads a key-position number, preserving its constructor.
func (k *KeyDecoder) DecodeNumber() (Number, *Error) { return k.d.DecodeNumber() }

// DecodeString requires a quoted string key.
func (k *KeyDecoder) DecodeString() (string, *Error) { return k.d.DecodeString() }

// DecodeIdentifier accepts a quoted string or a bare ASCII word as a key
// — the common case for mayfig keys, which are usually written bare.
func (k *KeyDecoder) DecodeIdentifier() (string, *Error) { return k.d.DecodeIdentifier() }

// DecodeChar requires a single-rune quoted string key.
func (k *KeyDecoder) DecodeChar() (rune, *Error) { return k.d.DecodeChar() }

// DecodeSeq allows a key written as `[ ... ]` (a tuple/sequence key).
func (k *KeyDecoder) DecodeSeq() (*SeqAccess, *Error) { return k.d.DecodeSeq() }

// EndSeq closes a sequence key opened by DecodeSeq.
func (k *KeyDecoder) EndSeq() *Error { return k.d.EndSeq() }

// DecodeMap always fails: a map cannot be used as a map key.
func (k *KeyDecoder) DecodeMap() (*MapAccess, *Error) {
	return nil, NewError(CodeUnsupportedMapKey).WithKind("map").WithSpan(NewPointSpan(k.d.r.Position()))
}

// DecodeBytes always fails: bytes cannot be used as a map key.
func (k *KeyDecoder) DecodeBytes() ([]byte, *Error) {
	return nil, NewError(CodeUnsupportedMapKey).WithKind("bytes").WithSpan(NewPointSpan(k.d.r.Position()))
}

// DecodeUnit always fails: a unit value cannot be used as a map key.
func (k *KeyDecoder) DecodeUnit() *Error {
	return NewError(CodeUnsupportedMapKey).WithKind("unit").WithSpan(NewPointSpan(k.d.r.Position()))
}

// DecodeEnum requires the tag to be ASCII-alphabetic, `"`, or `'`, then
// returns a TaggedKeyAccess; struct-payload variants are rejected by
// TaggedKeyAccess.DecodeStruct.
func (k *KeyDecoder) DecodeEnum() (*TaggedKeyAccess, *Error) {
	b, ok := k.d.peekAny()
	if !ok || (!isAsciiAlpha(b) && b != '"' && b != '\'') {
		if !ok {
			return nil, NewError(CodeExpectedEnum).WithSpan(NewPointSpan(k.d.r.Position()))
		}
		return nil, NewError(CodeExpectedEnum).WithChar(b).WithSpan(NewPointSpan(k.d.r.Position()))
	}
	tag, err := k.d.DecodeIdentifier()
	if err != nil {
		return nil, err
	}
	return newTaggedKeyAccess(k.d, tag), nil
}

// DecodeAny performs the key-position variant of the "any" dispatch:
// `[` is a sequence; a leading digit/`.`/`+`/`-` is a number; a quote or
// an identifier-leading byte is a string unless immediately followed by
// `[` on the same line, in which case it's a tagged-enum key; `{` (a
// map) is rejected outright.
func (k *KeyDecoder) DecodeAny(v AnyVisitor) *Error {
	b, ok := k.d.peekAny()
	if !ok {
		return NewError(CodeEOF).WithSpan(NewPointSpan(k.d.r.Position()))
	}

	switch {
	case b == '[':
		acc, err := k.d.DecodeSeq()
		if err != nil {
			return err
		}
		if verr := v.VisitSeq(acc); verr != nil {
			return asError(verr, k.d.r.Position())
		}
		return k.d.EndSeq()

	case isAsciiDigit(b), b == '.', b == '+', b == '-':
		n, err := k.d.DecodeNumber()
		if err != nil {
			return err
		}
		if verr := v.VisitNumber(n); verr != nil {
			return asError(verr, k.d.r.Position())
		}
		return nil

	case b == '"' || b == '\'' || isAsciiAlpha(b) || b == '_':
		id, err := k.d.DecodeIdentifier()
		if err != nil {
			return err
		}
		if lb, has, _ := k.d.peekLine(); has && lb == '[' {
			acc := newTaggedKeyAccess(k.d, id)
			payload := acc.asSeqAccess()
			if verr := v.VisitTagged(id, payload); verr != nil {
				return asError(verr, k.d.r.Position())
			}
			return acc.finish()
		}
		if verr := v.VisitString(id); verr != nil {
			return asError(verr, k.d.r.Position())
		}
		return nil

	case b == '{':
		return NewError(CodeUnsupportedMapKey).WithKind("map").WithSpan(NewPointSpan(k.d.r.Position()))

	default:
		return NewError(CodeUnexpectedWord).WithSpan(NewPointSpan(k.d.r.Position()))
	}
}
