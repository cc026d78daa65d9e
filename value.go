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

// Value is the untyped representation of any mayfig value: a string, a
// number, a bool, a sequence, a map, or a tagged variant. It is the
// result of decoding without a schema, and round-trips back through the
// encoder unchanged.
//
// Value is a closed sum type; the only implementations are the ones
// defined in this file. Switch on the concrete type (or use the As*
// accessors) to inspect one.
type Value interface {
	isValue()
}

// StringValue is a mayfig string.
type StringValue string

// NumberValue is a mayfig number.
type NumberValue Number

// BoolValue is a mayfig bool.
type BoolValue bool

// SeqValue is a mayfig sequence.
type SeqValue []Value

// TaggedValue is a mayfig tagged variant: a tag string followed by a
// payload of zero or more values, e.g. "spawn" [ "kitty" ].
type TaggedValue struct {
	Tag     string
	Payload []Value
}

func (StringValue) isValue() {}
func (NumberValue) isValue() {}
func (BoolValue) isValue()   {}
func (SeqValue) isValue()    {}
func (*MapValue) isValue()   {}
func (TaggedValue) isValue() {}

// MapValue is a mayfig map. Unlike a plain Go map, it preserves
// insertion order and its equality (via Equal) is order-sensitive,
// matching spec's contract that Map equality respects entry order.
type MapValue struct {
	keys    []Value
	values  []Value
	indexOf map[string]int // keyed by a canonical string form of each key
}

// NewMapValue returns an empty, insertion-ordered MapValue.
func NewMapValue() *MapValue {
	return &MapValue{indexOf: make(map[string]int)}
}

// Len returns the number of entries in m.
func (m *MapValue) Len() int { return len(m.keys) }

// Set inserts or updates the entry for key, preserving the original
// position of key if it was already present, matching how a real config
// file's "last write wins" duplicate-key behavior should read in source
// order.
func (m *MapValue) Set(key, value Value) {
	ck := canonicalKey(key)
	if i, ok := m.indexOf[ck]; ok {
		m.values[i] = value
		return
	}
	m.indexOf[ck] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value for key and whether it was present.
func (m *MapValue) Get(key Value) (Value, bool) {
	i, ok := m.indexOf[canonicalKey(key)]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

// Entries returns m's entries in insertion order. The returned slices
// share m's backing arrays and must not be mutated.
func (m *MapValue) Entries() (keys, values []Value) {
	return m.keys, m.values
}

// Equal reports whether m and o have the same entries in the same order.
// Implementing Equal lets go-cmp compare MapValue without reaching into
// its unexported fields.
func (m *MapValue) Equal(o *MapValue) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i := range m.keys {
		if !ValuesEqual(m.keys[i], o.keys[i]) || !ValuesEqual(m.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

// canonicalKey renders a Value usable as a map key into a string that
// uniquely identifies it for deduplication purposes. Only the key kinds
// the decoder actually accepts (string, number, bool, seq, tagged) need
// representations here; a map or another Value kind can never reach this
// function since the decoder rejects those as keys upstream.
func canonicalKey(v Value) string {
	switch k := v.(type) {
	case StringValue:
		return "s:" + string(k)
	case NumberValue:
		return "n:" + Number(k).String()
	case BoolValue:
		if k {
			return "b:true"
		}
		return "b:false"
	case SeqValue:
		s := "q:["
		for _, e := range k {
			s += canonicalKey(e) + ","
		}
		return s + "]"
	case TaggedValue:
		s := "t:" + k.Tag + "["
		for _, e := range k.Payload {
			s += canonicalKey(e) + ","
		}
		return s + "]"
	default:
		return fmt.Sprintf("?:%v", v)
	}
}

// ValuesEqual reports whether a and b represent the same mayfig value.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && Number(av).Equal(Number(bv))
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case SeqValue:
		bv, ok := b.(SeqValue)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !ValuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *MapValue:
		bv, ok := b.(*MapValue)
		return ok && av.Equal(bv)
	case TaggedValue:
		bv, ok := b.(TaggedValue)
		if !ok || av.Tag != bv.Tag || len(av.Payload) != len(bv.Payload) {
			return false
		}
		for i := range av.Payload {
			if !ValuesEqual(av.Payload[i], bv.Payload[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// AsString returns v's string payload, if v is a StringValue.
func AsString(v Value) (string, bool) {
	s, ok := v.(StringValue)
	return string(s), ok
}

// AsNumber returns v's number payload, if v is a NumberValue.
func AsNumber(v Value) (Number, bool) {
	n, ok := v.(NumberValue)
	return Number(n), ok
}

// AsBool returns v's bool payload, if v is a BoolValue.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(BoolValue)
	return bool(b), ok
}

// AsSeq returns v's sequence payload, if v is a SeqValue.
func AsSeq(v Value) (SeqValue, bool) {
	s, ok := v.(SeqValue)
	return s, ok
}

// AsMap returns v's map payload, if v is a *MapValue.
func AsMap(v Value) (*MapValue, bool) {
	m, ok := v.(*MapValue)
	return m, ok
}

// AsTagged returns v's tagged-variant payload, if v is a TaggedValue.
func AsTagged(v Value) (TaggedValue, bool) {
	t, ok := v.(TaggedValue)
	return t, ok
}
