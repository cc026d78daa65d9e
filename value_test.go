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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapValueSetPreservesInsertionOrder(t *testing.T) {
	m := NewMapValue()
	m.Set(StringValue("b"), NumberValue(NewUintNumber(2)))
	m.Set(StringValue("a"), NumberValue(NewUintNumber(1)))

	keys, _ := m.Entries()
	if len(keys) != 2 {
		t.Fatalf("Entries() returned %d keys, want 2", len(keys))
	}
	if ks, ok := AsString(keys[0]); !ok || ks != "b" {
		t.Errorf("first key = %v, want StringValue(\"b\")", keys[0])
	}
	if ks, ok := AsString(keys[1]); !ok || ks != "a" {
		t.Errorf("second key = %v, want StringValue(\"a\")", keys[1])
	}
}

func TestMapValueSetOverwriteKeepsPosition(t *testing.T) {
	m := NewMapValue()
	m.Set(StringValue("a"), NumberValue(NewUintNumber(1)))
	m.Set(StringValue("b"), NumberValue(NewUintNumber(2)))
	m.Set(StringValue("a"), NumberValue(NewUintNumber(99)))

	keys, values := m.Entries()
	if len(keys) != 2 {
		t.Fatalf("Entries() returned %d keys, want 2", len(keys))
	}
	v, ok := m.Get(StringValue("a"))
	if !ok {
		t.Fatalf("Get(\"a\") not found")
	}
	if n, ok := AsNumber(v); !ok || n.String() != "99" {
		t.Errorf("Get(\"a\") = %v, want 99", v)
	}
	if ks, ok := AsString(keys[0]); !ok || ks != "a" {
		t.Errorf("first key = %v, want StringValue(\"a\") (overwrite should keep its position)", keys[0])
	}
	if n, ok := AsNumber(values[0]); !ok || n.String() != "99" {
		t.Errorf("first value = %v, want 99", values[0])
	}
}

func TestMapValueEqual(t *testing.T) {
	build := func() *MapValue {
		m := NewMapValue()
		m.Set(StringValue("host"), StringValue("localhost"))
		m.Set(StringValue("port"), NumberValue(NewUintNumber(8080)))
		return m
	}
	a, b := build(), build()
	if !a.Equal(b) {
		t.Errorf("two identically-built maps should be Equal")
	}

	c := NewMapValue()
	c.Set(StringValue("port"), NumberValue(NewUintNumber(8080)))
	c.Set(StringValue("host"), StringValue("localhost"))
	if a.Equal(c) {
		t.Errorf("maps with the same entries in different order should not be Equal")
	}

	if diff := cmp.Diff(a, build()); diff != "" {
		t.Errorf("cmp.Diff found a mismatch on two equal maps (-got +want):\n%s", diff)
	}
}

func TestValuesEqualTagged(t *testing.T) {
	a := TaggedValue{Tag: "spawn", Payload: []Value{StringValue("kitty")}}
	b := TaggedValue{Tag: "spawn", Payload: []Value{StringValue("kitty")}}
	c := TaggedValue{Tag: "spawn", Payload: []Value{StringValue("alacritty")}}

	if !ValuesEqual(a, b) {
		t.Errorf("expected %v == %v", a, b)
	}
	if ValuesEqual(a, c) {
		t.Errorf("did not expect %v == %v", a, c)
	}
}

func TestMapValueKeyedByTaggedValue(t *testing.T) {
	m := NewMapValue()
	k1 := TaggedValue{Tag: "region", Payload: []Value{StringValue("us")}}
	k2 := TaggedValue{Tag: "region", Payload: []Value{StringValue("us")}}

	m.Set(k1, NumberValue(NewUintNumber(1)))
	m.Set(k2, NumberValue(NewUintNumber(2)))

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (k1 and k2 should canonicalize to the same key)", m.Len())
	}
	v, _ := m.Get(k1)
	if n, ok := AsNumber(v); !ok || n.String() != "2" {
		t.Errorf("Get(k1) = %v, want 2 (last write wins)", v)
	}
}
