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

// SeqAccess mediates one `[ ... ]` sequence. The opening `[` has already
// been consumed by whoever constructed it (Decoder.DecodeSeq or a
// tagged-variant payload); the caller must consume the closing `]`
// itself once HasNext reports no more elements.
//
// Usage:
//
//	seq, err := d.DecodeSeq()
//	for {
//	    has, err := seq.HasNext()
//	    if !has { break }
//	    // decode one element via d.DecodeXxx()
//	}
//	err = d.EndSeq()
type SeqAccess struct {
	d *Decoder
}

func newSeqAccess(d *Decoder) *SeqAccess {
	return &SeqAccess{d: d}
}

// HasNext skips any run of commas (zero or more, possibly interleaved
// with whitespace via peekAny), then reports whether a `]` follows (end
// of sequence, left unconsumed) or there is another element to decode.
func (s *SeqAccess) HasNext() (bool, *Error) {
	for {
		b, ok := s.d.peekAny()
		if !ok {
			return false, NewError(CodeExpectedSeqEnd).WithSpan(NewPointSpan(s.d.r.Position()))
		}
		if b == ',' {
			s.d.r.Discard()
			continue
		}
		if b == ']' {
			return false, nil
		}
		return true, nil
	}
}
