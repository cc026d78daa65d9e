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
	"bytes"
	"testing"
)

func TestIsBareIdent(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"bare", true},
		{"_leading", true},
		{"has_underscore1", true},
		{"", false},
		{"1leading", false},
		{"has space", false},
		{"has-dash", false},
	}
	for _, tt := range tests {
		if got := isBareIdent(tt.in); got != tt.want {
			t.Errorf("isBareIdent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEncodeMapKeyBareVsQuoted(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.EncodeMapKey(StringValue("bare_key")); err != nil {
		t.Fatalf("EncodeMapKey() error: %v", err)
	}
	e.Flush()
	if got, want := buf.String(), "bare_key"; got != want {
		t.Errorf("EncodeMapKey(bare) = %q, want %q", got, want)
	}

	buf.Reset()
	e = NewEncoder(&buf)
	if err := e.EncodeMapKey(StringValue("has space")); err != nil {
		t.Fatalf("EncodeMapKey() error: %v", err)
	}
	e.Flush()
	if got, want := buf.String(), `"has space"`; got != want {
		t.Errorf("EncodeMapKey(quoted) = %q, want %q", got, want)
	}
}

func TestEscapeStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	in := "line1\nline2\t\"quoted\"\\"
	if err := e.EncodeString(in); err != nil {
		t.Fatalf("EncodeString() error: %v", err)
	}
	e.Flush()

	d := NewDecoderString(buf.String())
	out, err := d.DecodeString()
	if err != nil {
		t.Fatalf("DecodeString() error: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %q, want %q", out, in)
	}
}

func TestEncodeMapValueSeparators(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"scalar", NumberValue(NewUintNumber(8080)), " = 8080"},
		{"tagged unit", TaggedValue{Tag: "idle"}, ` = "idle" [ ]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := NewEncoder(&buf)
			if err := e.EncodeMapValue(tt.v); err != nil {
				t.Fatalf("EncodeMapValue() error: %v", err)
			}
			e.Flush()
			if got := buf.String(); got != tt.want {
				t.Errorf("EncodeMapValue(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestEncodeSeqValue(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	seq := SeqValue{NumberValue(NewUintNumber(1)), NumberValue(NewUintNumber(2)), NumberValue(NewUintNumber(3))}
	if err := EncodeValue(e, seq); err != nil {
		t.Fatalf("EncodeValue() error: %v", err)
	}
	e.Flush()
	if got, want := buf.String(), "[ 1 2 3 ]"; got != want {
		t.Errorf("EncodeValue(seq) = %q, want %q", got, want)
	}
}
