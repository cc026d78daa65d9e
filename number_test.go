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
	"math"
	"testing"
)

func TestNewIntNumberNormalizesNonNegative(t *testing.T) {
	n := NewIntNumber(5)
	if !n.IsUint() {
		t.Errorf("NewIntNumber(5).IsUint() = false, want true")
	}
	u, ok := n.Uint64()
	if !ok || u != 5 {
		t.Errorf("Uint64() = (%d, %v), want (5, true)", u, ok)
	}
}

func TestNewIntNumberNegativeStaysSigned(t *testing.T) {
	n := NewIntNumber(-5)
	if !n.IsInt() {
		t.Errorf("NewIntNumber(-5).IsInt() = false, want true")
	}
	i, ok := n.Int64()
	if !ok || i != -5 {
		t.Errorf("Int64() = (%d, %v), want (-5, true)", i, ok)
	}
}

func TestNewFloatNumberPanicsOnNaN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewFloatNumber(NaN) did not panic")
		}
	}()
	NewFloatNumber(math.NaN())
}

func TestNumberEqualDistinguishesConstructor(t *testing.T) {
	u := NewUintNumber(0)
	f := NewFloatNumber(0.0)
	if u.Equal(f) {
		t.Errorf("uint 0 and float 0.0 should not be Equal")
	}
}

func TestNumberEqualPositiveNegativeZero(t *testing.T) {
	pos := NewFloatNumber(0.0)
	neg := NewFloatNumber(math.Copysign(0, -1))
	if !pos.Equal(neg) {
		t.Errorf("+0.0 and -0.0 should be Equal")
	}
}

func TestNumberHashMatchesEqual(t *testing.T) {
	pos := NewFloatNumber(0.0)
	neg := NewFloatNumber(math.Copysign(0, -1))
	if pos.Hash() != neg.Hash() {
		t.Errorf("+0.0 and -0.0 should hash identically")
	}

	u := NewUintNumber(0)
	f := NewFloatNumber(0.0)
	if u.Hash() == f.Hash() {
		t.Errorf("uint 0 and float 0.0 should not hash identically (got collision)")
	}
}

func TestNumberInt64Overflow(t *testing.T) {
	n := NewUintNumber(math.MaxUint64)
	if _, ok := n.Int64(); ok {
		t.Errorf("Int64() on MaxUint64 should report overflow")
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{NewUintNumber(42), "42"},
		{NewIntNumber(-7), "-7"},
		{NewFloatNumber(1.5), "1.5"},
		{NewFloatNumber(math.Inf(1)), ".inf"},
		{NewFloatNumber(math.Inf(-1)), "-.inf"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
