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

// MapAccess mediates one map's worth of entries, either the implicit
// braceless top-level document or a braced `{ ... }` nested map. Both
// share the same key/value protocol; only the look-ahead used to detect
// the first entry and the end of the map differs.
//
// Usage:
//
//	acc, err := d.DecodeMap()
//	for {
//	    has, err := acc.HasNextEntry()
//	    if !has { break }
//	    key, err := acc.KeyDecoder().DecodeIdentifier() // or any other KeyDecoder method
//	    err = acc.ExpectSeparator()
//	    // decode the value via d.DecodeXxx(), now that the key is known
//	}
//	d.EndMap(acc.IsBraced())
type MapAccess struct {
	d       *Decoder
	braced  bool
	started bool
}

func newTopLevelMapAccess(d *Decoder) *MapAccess {
	return &MapAccess{d: d, braced: false}
}

func newBracedMapAccess(d *Decoder) *MapAccess {
	return &MapAccess{d: d, braced: true}
}

// IsBraced reports whether this access represents a `{ ... }` map rather
// than the implicit top-level document.
func (m *MapAccess) IsBraced() bool { return m.braced }

// HasNextEntry reports whether another key/value pair follows.
func (m *MapAccess) HasNextEntry() (bool, *Error) {
	if m.braced {
		return m.nextBracedEntry()
	}
	if !m.started {
		m.started = true
		_, ok := m.d.peekAny()
		return ok, nil
	}
	_, ok, err := m.d.peekNewline()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// nextBracedEntry always checks the current line for a closing `}` first,
// since `{ }`/`{ k = v }`/`{ a = 1\nb = 2 }` may all close inline on the
// line their last entry (or the opening brace itself) occupies. When
// nothing but a newline or comment follows on the line, it falls back to a
// whitespace/comment-skipping look-ahead on the very first entry (which is
// free to start further down after `{`), or otherwise requires an
// intervening newline before the next entry, since one already occupies
// the current line.
func (m *MapAccess) nextBracedEntry() (bool, *Error) {
	b, has, err := m.d.peekLine()
	if err == nil {
		if !has {
			return false, NewError(CodeEOF).WithSpan(NewPointSpan(m.d.r.Position()))
		}
		if b == '}' {
			m.d.r.Discard()
			return false, nil
		}
		if !m.started {
			m.started = true
			return true, nil
		}
		return false, NewError(CodeExpectedNewline).WithChar(b).WithSpan(NewPointSpan(m.d.r.Position()))
	}
	if err.Code != CodeUnexpectedNewline {
		return false, err
	}

	wasFirst := !m.started
	m.started = true
	if wasFirst {
		b, ok := m.d.peekAny()
		if !ok {
			return false, NewError(CodeEOF).WithSpan(NewPointSpan(m.d.r.Position()))
		}
		if b == '}' {
			m.d.r.Discard()
			return false, nil
		}
		return true, nil
	}

	b, ok, nerr := m.d.peekNewline()
	if nerr != nil {
		return false, nerr
	}
	if !ok {
		return false, NewError(CodeEOF).WithSpan(NewPointSpan(m.d.r.Position()))
	}
	if b == '}' {
		m.d.r.Discard()
		return false, nil
	}
	return true, nil
}

// KeyDecoder returns the narrowed decoder for parsing the next key. It
// must be called exactly once per entry, before ExpectSeparator.
func (m *MapAccess) KeyDecoder() *KeyDecoder {
	return m.d.MapKey()
}

// ExpectSeparator requires, on the key's own line, either `=` (consumed;
// the caller decodes a scalar/seq/enum value next) or `{` (left in
// place; the caller calls d.DecodeMap(), which will consume it). This is
// the one place the decoder refrains from advancing past the separator
// until the value is about to be parsed: the key has already been fully
// decoded by the time this runs, so the caller can choose how to decode
// the value based on the key it just saw.
func (m *MapAccess) ExpectSeparator() *Error {
	b, has, err := m.d.peekLine()
	if err != nil {
		return err
	}
	if !has {
		return NewError(CodeExpectedValue).WithSpan(NewPointSpan(m.d.r.Position()))
	}
	if b == '=' {
		m.d.r.Discard()
		return nil
	}
	if b == '{' {
		return nil
	}
	return NewError(CodeExpectedValue).WithChar(b).WithSpan(NewPointSpan(m.d.r.Position()))
}
