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

import "bytes"

// Marshal encodes v (normally the *MapValue document root Unmarshal
// returns) to canonical mayfig text. It is the schema-less entry point;
// a schema-driven caller should construct an Encoder directly with
// NewEncoder and drive it with a Producer instead.
func Marshal(v Value, opts ...EncoderOption) ([]byte, *Error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := EncodeValue(e, v); err != nil {
		return nil, err
	}
	if err := e.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalString is Marshal returning a string.
func MarshalString(v Value, opts ...EncoderOption) (string, *Error) {
	b, err := Marshal(v, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
