// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"strconv"
)

// Integer is an integer surreal number in canonical form, a wrapper around
// the primitive int64 type. Its left and right sets are synthesized on
// demand per the canonical predecessor/successor rule, so Integer(n) never
// materializes the n-deep set tree of the general construction.
type Integer int64

func (v Integer) Kind() Kind {
	return IntegerKind
}

func (v Integer) Left() Set {
	if v > 0 {
		return NewSet(v - 1)
	}
	return EmptySet()
}

func (v Integer) Right() Set {
	if v < 0 {
		return NewSet(v + 1)
	}
	return EmptySet()
}

// Birthday of n is |n|.
func (v Integer) Birthday() (Num, bool) {
	return v.Abs(), true
}

func (v Integer) BirthdayFinite() Tril { return True }
func (v Integer) IsFinite() Tril       { return True }
func (v Integer) IsInfinite() Tril     { return False }
func (v Integer) IsInfinitesimal() Tril { return False }
func (v Integer) IsReal() Tril         { return True }
func (v Integer) IsRational() Tril     { return True }
func (v Integer) IsDyadic() Tril       { return True }
func (v Integer) IsIntegral() Tril     { return True }

func (v Integer) SimpleString() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Integer) String() string {
	return fullString(v)
}

// Int64 returns the native integer value.
func (v Integer) Int64() int64 {
	return int64(v)
}

// Float64 returns the native floating point approximation.
func (v Integer) Float64() float64 {
	return float64(v)
}

// IsZero is the truthiness test: false exactly for zero.
func (v Integer) IsZero() bool {
	return v == 0
}

func (v Integer) Abs() Integer {
	if v < 0 {
		return -v
	}
	return v
}

// Bitwise operators, defined on the integer form only.

func (v Integer) And(o Integer) Integer { return v & o }
func (v Integer) Or(o Integer) Integer  { return v | o }
func (v Integer) Xor(o Integer) Integer { return v ^ o }
func (v Integer) Not() Integer          { return ^v }
func (v Integer) Lsh(n uint) Integer    { return v << n }
func (v Integer) Rsh(n uint) Integer    { return v >> n }

// Rounding is the identity on integers.

func (v Integer) Ceil() Integer  { return v }
func (v Integer) Floor() Integer { return v }
func (v Integer) Round() Integer { return v }
func (v Integer) Trunc() Integer { return v }
