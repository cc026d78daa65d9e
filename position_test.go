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

import "testing"

func TestPositionLess(t *testing.T) {
	a := Position{Line: 1, Col: 1, Index: 0}
	b := Position{Line: 2, Col: 1, Index: 10}
	if !a.Less(b) {
		t.Errorf("expected %v < %v", a, b)
	}
	if b.Less(a) {
		t.Errorf("did not expect %v < %v", b, a)
	}
	if a.Less(a) {
		t.Errorf("did not expect %v < %v", a, a)
	}
}

func TestSpanContains(t *testing.T) {
	start := Position{Line: 1, Col: 1, Index: 0}
	mid := Position{Line: 1, Col: 5, Index: 4}
	end := Position{Line: 1, Col: 10, Index: 9}
	outside := Position{Line: 2, Col: 1, Index: 20}

	rng := NewRangeSpan(start, end)
	for _, p := range []Position{start, mid, end} {
		if !rng.Contains(p) {
			t.Errorf("expected range %v to contain %v", rng, p)
		}
	}
	if rng.Contains(outside) {
		t.Errorf("did not expect range %v to contain %v", rng, outside)
	}

	pt := NewPointSpan(mid)
	if !pt.Contains(mid) {
		t.Errorf("expected point span to contain its own position")
	}
	if pt.Contains(start) {
		t.Errorf("did not expect point span to contain a different position")
	}
}

func TestSpanComparePointInRange(t *testing.T) {
	start := Position{Line: 1, Col: 1, Index: 0}
	end := Position{Line: 1, Col: 10, Index: 9}
	mid := Position{Line: 1, Col: 5, Index: 4}

	rng := NewRangeSpan(start, end)
	pt := NewPointSpan(mid)

	if c := pt.Compare(rng); c != 0 {
		t.Errorf("Compare(point-in-range) = %d, want 0", c)
	}
	if c := rng.Compare(pt); c != 0 {
		t.Errorf("Compare(range, point-in-range) = %d, want 0", c)
	}
}

func TestSpanCompareOrdering(t *testing.T) {
	a := NewPointSpan(Position{Line: 1, Col: 1, Index: 0})
	b := NewPointSpan(Position{Line: 1, Col: 2, Index: 1})
	if c := a.Compare(b); c != -1 {
		t.Errorf("Compare(a, b) = %d, want -1", c)
	}
	if c := b.Compare(a); c != 1 {
		t.Errorf("Compare(b, a) = %d, want 1", c)
	}
	if c := a.Compare(a); c != 0 {
		t.Errorf("Compare(a, a) = %d, want 0", c)
	}
}

func TestSpanString(t *testing.T) {
	p := Position{Line: 3, Col: 4, Index: 20}
	pt := NewPointSpan(p)
	if got, want := pt.String(), "3:4"; got != want {
		t.Errorf("Point.String() = %q, want %q", got, want)
	}
	q := Position{Line: 3, Col: 9, Index: 25}
	rng := NewRangeSpan(p, q)
	if got, want := rng.String(), "3:4-3:9"; got != want {
		t.Errorf("Range.String() = %q, want %q", got, want)
	}
}
