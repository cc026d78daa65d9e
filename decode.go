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

// Unmarshal decodes a complete mayfig document from data into the
// untyped Value tree. It is the schema-less entry point; a
// schema-driven caller should construct a Decoder directly with
// NewDecoder and drive it with the DecodeXxx methods instead.
func Unmarshal(data []byte) (Value, *Error) {
	d := NewDecoder(data)
	v, err := DecodeValue(d)
	if err != nil {
		return nil, err
	}
	if !d.AtEOF() {
		return nil, NewError(CodeExpectedNewline).WithSpan(NewPointSpan(d.Position()))
	}
	return v, nil
}

// UnmarshalString is Unmarshal for string input.
func UnmarshalString(s string) (Value, *Error) {
	return Unmarshal([]byte(s))
}
