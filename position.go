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

// Position identifies a single byte within a decoded document. Line and
// Col are 1-indexed (matching how editors report them); Index is the
// 0-indexed byte offset from the start of input.
type Position struct {
	Line  int
	Col   int
	Index int
}

// String renders the position as "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Less reports whether p sorts strictly before o, by (Index), which is
// always consistent with (Line, Col) for positions drawn from the same
// document.
func (p Position) Less(o Position) bool {
	return p.Index < o.Index
}

// Span is either a single Point or a Range between two positions. The
// zero value is not a valid Span; use NewPointSpan or NewRangeSpan.
type Span struct {
	start Position
	end   Position
	// isRange distinguishes a zero-width Point (start == end, isRange
	// false) from a Range that happens to be zero-width (isRange true).
	// Only the former participates in the Point-inside-Range equality
	// rule described below.
	isRange bool
}

// NewPointSpan returns a Span identifying a single position.
func NewPointSpan(p Position) Span {
	return Span{start: p, end: p}
}

// NewRangeSpan returns a Span covering [start, end). Callers are expected
// to pass start.Index <= end.Index.
func NewRangeSpan(start, end Position) Span {
	return Span{start: start, end: end, isRange: true}
}

// IsPoint reports whether s identifies a single position rather than a
// range.
func (s Span) IsPoint() bool { return !s.isRange }

// Start returns the span's first position.
func (s Span) Start() Position { return s.start }

// End returns the span's last position (equal to Start for a Point).
func (s Span) End() Position { return s.end }

// Contains reports whether p falls within s, inclusive of both ends. A
// Point span contains only its own position.
//
// This is the predicate spec-level reasoning about span "equality" is
// really after; Compare's notion of equality (below) is for total
// ordering in sorted containers and test assertions, not for containment
// checks. Prefer Contains when the question is "does this error's span
// cover this position".
func (s Span) Contains(p Position) bool {
	return !p.Less(s.start) && !s.end.Less(p)
}

// Compare returns -1, 0, or 1 comparing s to o for use in sorted
// containers. It gives Span a total order with one deliberate wrinkle: a
// Point contained within a Range compares equal to that Range (so a test
// can assert an error occurred "at" a point without knowing whether the
// implementation reported a Point or the enclosing Range). Outside of
// that containment case, spans compare lexicographically by (start, end).
func (s Span) Compare(o Span) int {
	if s.IsPoint() && !o.IsPoint() && o.Contains(s.start) {
		return 0
	}
	if o.IsPoint() && !s.IsPoint() && s.Contains(o.start) {
		return 0
	}
	if s.start.Index != o.start.Index {
		if s.start.Less(o.start) {
			return -1
		}
		return 1
	}
	if s.end.Index != o.end.Index {
		if s.end.Less(o.end) {
			return -1
		}
		return 1
	}
	return 0
}

// String renders a Point as "line:col" and a Range as "line:col-line:col".
func (s Span) String() string {
	if s.IsPoint() {
		return s.start.String()
	}
	return fmt.Sprintf("%s-%s", s.start, s.end)
}
