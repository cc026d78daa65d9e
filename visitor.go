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

// AnyVisitor is implemented by consumers of Decoder.DecodeAny and
// KeyDecoder.DecodeAny: the untyped, context-sensitive decode path.
// Exactly one Visit method is called per DecodeAny invocation, chosen by
// what the next bytes in the document actually are (there is no schema
// to consult). The Value tree (value_de.go) is the reference consumer.
//
// Typed, schema-known decoding never needs this interface — it calls
// the Decoder's DecodeBool/DecodeString/DecodeSeq/... methods directly,
// since the caller already knows which one to call.
type AnyVisitor interface {
	VisitBool(v bool) error
	VisitNumber(n Number) error
	VisitString(s string) error
	VisitSeq(acc *SeqAccess) error
	VisitMap(acc *MapAccess) error
	VisitTagged(tag string, payload *SeqAccess) error
}
