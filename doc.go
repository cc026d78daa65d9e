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

// Package mayfig implements a bidirectional codec for the mayfig
// configuration text format.
//
// Mayfig is a human-authored config language loosely inspired by TOML, the
// Sway compositor's config, and Hyprlang: a document is an implicit
// top-level map of entries, each either a scalar assignment (key = value),
// a nested map (key { ... }), a sequence (key = [ ... ]), or a tagged
// variant (key = "tag" [ ... ]).
//
// Decoding is consumer-driven: a Decoder exposes one method per target
// type (DecodeBool, DecodeString, DecodeSeq, DecodeMap, DecodeEnum, ...)
// and the caller decides, field by field, which method to call next. This
// mirrors a schema-driven deserializer without requiring Go generics or
// reflection — the schema lives in the caller's code, not in struct tags.
// Encoding is the dual: a Producer walks a typed value and tells an
// Encoder what to write.
//
// The untyped Value tree (see value.go) implements both roles, so a
// mayfig document can be decoded and re-encoded without any schema at
// all.
package mayfig
