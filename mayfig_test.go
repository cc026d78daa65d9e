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

	"github.com/kylelemons/godebug/pretty"
)

// TestUnmarshalTopLevelDocument covers the common shape of a real config
// file: an implicit top-level map with scalar entries, a nested brace
// block, and a sequence value.
func TestUnmarshalTopLevelDocument(t *testing.T) {
	doc := `
# a comment
name = "myhost"
port = 8080
enabled = true
server {
	host = "localhost"
	timeout = 30
}
tags = [ "a", "b", "c" ]
`
	v, err := UnmarshalString(doc)
	if err != nil {
		t.Fatalf("UnmarshalString() error: %v", err)
	}
	m, ok := AsMap(v)
	if !ok {
		t.Fatalf("Unmarshal result is %T, want *MapValue", v)
	}

	name, ok := m.Get(StringValue("name"))
	if !ok {
		t.Fatalf("missing key %q", "name")
	}
	if s, _ := AsString(name); s != "myhost" {
		t.Errorf("name = %v, want \"myhost\"", name)
	}

	enabled, ok := m.Get(StringValue("enabled"))
	if !ok {
		t.Fatalf("missing key %q", "enabled")
	}
	if b, _ := AsBool(enabled); !b {
		t.Errorf("enabled = %v, want true", enabled)
	}

	server, ok := m.Get(StringValue("server"))
	if !ok {
		t.Fatalf("missing key %q", "server")
	}
	sm, ok := AsMap(server)
	if !ok {
		t.Fatalf("server = %T, want *MapValue", server)
	}
	host, ok := sm.Get(StringValue("host"))
	if !ok || AsStringOrEmpty(host) != "localhost" {
		t.Errorf("server.host = %v, want \"localhost\"", host)
	}

	tags, ok := m.Get(StringValue("tags"))
	if !ok {
		t.Fatalf("missing key %q", "tags")
	}
	seq, ok := AsSeq(tags)
	if !ok || len(seq) != 3 {
		t.Fatalf("tags = %v, want a 3-element sequence", tags)
	}
}

func AsStringOrEmpty(v Value) string {
	s, _ := AsString(v)
	return s
}

// TestUnmarshalTaggedVariant covers a value-position tagged enum whose
// payload is a sequence, the shape used for things like window-manager
// actions in the original hyprlang-style config language.
func TestUnmarshalTaggedVariant(t *testing.T) {
	doc := `bind = "exec" [ "kitty" ]` + "\n"
	v, err := UnmarshalString(doc)
	if err != nil {
		t.Fatalf("UnmarshalString() error: %v", err)
	}
	m, _ := AsMap(v)
	bind, ok := m.Get(StringValue("bind"))
	if !ok {
		t.Fatalf("missing key %q", "bind")
	}
	tv, ok := AsTagged(bind)
	if !ok {
		t.Fatalf("bind = %T, want TaggedValue", bind)
	}
	if tv.Tag != "exec" || len(tv.Payload) != 1 {
		t.Fatalf("bind = %+v, want tag=exec with 1-element payload", tv)
	}
	if s, _ := AsString(tv.Payload[0]); s != "kitty" {
		t.Errorf("bind payload[0] = %v, want \"kitty\"", tv.Payload[0])
	}
}

// TestUnmarshalRejectsTrailingGarbage checks that Unmarshal fails when
// the bytes after the last entry do not form another entry: the top-level
// map reads the stray `}` as the start of a key and rejects it.
func TestUnmarshalRejectsTrailingGarbage(t *testing.T) {
	_, err := UnmarshalString("a = 1\n}trailing")
	if err == nil {
		t.Fatalf("UnmarshalString() with trailing garbage should fail")
	}
}

// TestRoundTripMarshalUnmarshal checks the six end-to-end shapes a
// document built from the untyped Value tree survives an encode then a
// decode unchanged.
func TestRoundTripMarshalUnmarshal(t *testing.T) {
	m := NewMapValue()
	m.Set(StringValue("name"), StringValue("myhost"))
	m.Set(StringValue("port"), NumberValue(NewUintNumber(8080)))
	m.Set(StringValue("ratio"), NumberValue(NewFloatNumber(0.5)))
	m.Set(StringValue("enabled"), BoolValue(true))
	m.Set(StringValue("has space"), StringValue("needs quoting"))

	inner := NewMapValue()
	inner.Set(StringValue("host"), StringValue("localhost"))
	m.Set(StringValue("server"), inner)

	m.Set(StringValue("tags"), SeqValue{StringValue("a"), StringValue("b")})
	m.Set(StringValue("bind"), TaggedValue{Tag: "exec", Payload: []Value{StringValue("kitty")}})
	m.Set(StringValue("state"), TaggedValue{})

	text, err := MarshalString(m)
	if err != nil {
		t.Fatalf("MarshalString() error: %v", err)
	}

	got, err := UnmarshalString(text)
	if err != nil {
		t.Fatalf("UnmarshalString(marshaled text) error: %v\ntext:\n%s", err, text)
	}

	if !ValuesEqual(m, got) {
		// Re-marshal the decoded value and diff the two texts for a
		// readable failure message, rather than dumping the Value trees.
		gotText, gerr := MarshalString(got)
		if gerr != nil {
			gotText = gerr.Error()
		}
		t.Errorf("round trip mismatch (-original +decoded-then-reencoded):\n%s", pretty.Compare(text, gotText))
	}
}

// TestRoundTripPreservesZeroFloat checks that a float zero stays a float
// across a round trip: it is written as "0.0", which decodes as a float,
// not as the integer literal "0".
func TestRoundTripPreservesZeroFloat(t *testing.T) {
	m := NewMapValue()
	m.Set(StringValue("x"), NumberValue(NewFloatNumber(0.0)))

	text, err := MarshalString(m)
	if err != nil {
		t.Fatalf("MarshalString() error: %v", err)
	}
	got, err := UnmarshalString(text)
	if err != nil {
		t.Fatalf("UnmarshalString() error: %v", err)
	}
	if !ValuesEqual(m, got) {
		t.Errorf("round trip mismatch for zero float: %#v vs %#v", m, got)
	}
}

// TestDecodeErrorReportsSpan exercises the "innermost span wins" contract
// from the caller's point of view: Unmarshal surfaces a span pointing at
// the actual offending byte, not the start of the document.
func TestDecodeErrorReportsSpan(t *testing.T) {
	_, err := UnmarshalString("a = 1\nb = maybe\n")
	if err == nil {
		t.Fatalf("UnmarshalString() should fail on an unrecognized word")
	}
	if err.Span == nil {
		t.Fatalf("error has no span: %v", err)
	}
	if err.Span.Start().Line != 2 {
		t.Errorf("error span = %v, want an error on line 2", err.Span)
	}
}
