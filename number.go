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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numberKind discriminates the three constructors a Number may hold.
type numberKind uint8

const (
	numberUnsigned numberKind = iota
	numberSigned
	numberFloat
)

// Number is a closed sum of three numeric representations: a
// non-negative 64-bit unsigned integer, a negative 64-bit signed integer
// (only ever used for values below zero), and a finite 64-bit float.
// Never holds NaN — constructing one from a NaN float is a caller error
// (see NewFloatNumber).
type Number struct {
	kind numberKind
	u    uint64
	i    int64
	f    float64
}

// NewUintNumber returns a Number holding a non-negative integer.
func NewUintNumber(v uint64) Number {
	return Number{kind: numberUnsigned, u: v}
}

// NewIntNumber returns a Number holding v. Non-negative values are
// normalized to the unsigned constructor, matching the decoder's own
// "non-negative integer" vs "negative integer" split.
func NewIntNumber(v int64) Number {
	if v >= 0 {
		return NewUintNumber(uint64(v))
	}
	return Number{kind: numberSigned, i: v}
}

// NewFloatNumber returns a Number holding a finite float. It is a
// programmer error to pass NaN; callers that might receive NaN (e.g. from
// an arithmetic expression) must check with math.IsNaN first — the
// decoder itself never produces one, rejecting the source token `.nan`
// with CodeUnsupportedNaN instead.
func NewFloatNumber(v float64) Number {
	if math.IsNaN(v) {
		panic("mayfig: NewFloatNumber called with NaN")
	}
	return Number{kind: numberFloat, f: v}
}

// IsUint reports whether n holds the non-negative-integer constructor.
func (n Number) IsUint() bool { return n.kind == numberUnsigned }

// IsInt reports whether n holds the negative-integer constructor.
func (n Number) IsInt() bool { return n.kind == numberSigned }

// IsFloat reports whether n holds the float constructor.
func (n Number) IsFloat() bool { return n.kind == numberFloat }

// Uint64 returns n's value and true if n holds the non-negative-integer
// constructor.
func (n Number) Uint64() (uint64, bool) {
	if n.kind != numberUnsigned {
		return 0, false
	}
	return n.u, true
}

// Int64 returns n's value as an int64 regardless of which integer
// constructor it holds, and true unless n holds a float or an unsigned
// value that overflows int64.
func (n Number) Int64() (int64, bool) {
	switch n.kind {
	case numberSigned:
		return n.i, true
	case numberUnsigned:
		if n.u > math.MaxInt64 {
			return 0, false
		}
		return int64(n.u), true
	default:
		return 0, false
	}
}

// Float64 returns n as a float64, converting from whichever constructor
// it holds. Always succeeds since every Number constructor is
// representable (with possible precision loss for very large integers)
// as a float64.
func (n Number) Float64() float64 {
	switch n.kind {
	case numberUnsigned:
		return float64(n.u)
	case numberSigned:
		return float64(n.i)
	default:
		return n.f
	}
}

// Equal reports whether n and o denote the same number, honoring the
// +0.0 == -0.0 contract: two floats compare equal by value (Go's == on
// float64 already treats +0.0 and -0.0 as equal), but a float zero is
// never equal to an integer zero since they hold distinct constructors —
// Number's identity is the (constructor, value) pair, not just the value.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case numberUnsigned:
		return n.u == o.u
	case numberSigned:
		return n.i == o.i
	default:
		return n.f == o.f
	}
}

// Hash returns a hash of n consistent with Equal: the discriminant is
// mixed in first so that, e.g., the unsigned 0 and the float 0.0 hash
// differently, and +0.0 / -0.0 (which Equal treats as identical per the
// IEEE == rule) hash identically by normalizing the float's bit pattern
// to the canonical +0.0 representation before hashing.
func (n Number) Hash() uint64 {
	const (
		fnvOffset = 14695981039346656037
		fnvPrime  = 1099511628211
	)
	h := uint64(fnvOffset)
	mix := func(v uint64) {
		h ^= v
		h *= fnvPrime
	}
	mix(uint64(n.kind))
	switch n.kind {
	case numberUnsigned:
		mix(n.u)
	case numberSigned:
		mix(uint64(n.i))
	default:
		f := n.f
		if f == 0 {
			f = 0 // normalize -0.0 to +0.0 before taking the bit pattern
		}
		mix(math.Float64bits(f))
	}
	return h
}

// String renders n the same way the encoder would. A float with an
// integral value gets a trailing ".0" so that it decodes back as a float
// rather than as an integer.
func (n Number) String() string {
	switch n.kind {
	case numberUnsigned:
		return strconv.FormatUint(n.u, 10)
	case numberSigned:
		return strconv.FormatInt(n.i, 10)
	default:
		if math.IsInf(n.f, 1) {
			return ".inf"
		}
		if math.IsInf(n.f, -1) {
			return "-.inf"
		}
		s := strconv.FormatFloat(n.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	}
}

func (n Number) GoString() string {
	return fmt.Sprintf("Number(%s)", n.String())
}
