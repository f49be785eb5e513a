// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"strconv"

	"github.com/attic-labs/surreal/go/d"
)

// Omega is ω, the least surreal number greater than every integer,
// constructed as {S*|}. NegOmega is its mirror {|S*}. Both are shared
// immutable values; arithmetic on the ω family is restricted to integer
// offsets.
var (
	Omega    Num = omega{}
	NegOmega Num = omega{neg: true}
)

type omega struct {
	neg bool
}

func (v omega) Kind() Kind {
	return OmegaKind
}

func (v omega) Left() Set {
	if v.neg {
		return EmptySet()
	}
	return Dyadics
}

func (v omega) Right() Set {
	if v.neg {
		return Dyadics
	}
	return EmptySet()
}

func (v omega) Birthday() (Num, bool) {
	return Omega, true
}

func (v omega) BirthdayFinite() Tril { return False }
func (v omega) IsFinite() Tril       { return False }
func (v omega) IsInfinite() Tril     { return True }
func (v omega) IsInfinitesimal() Tril { return False }
func (v omega) IsReal() Tril         { return False }
func (v omega) IsRational() Tril     { return False }

// IsDyadic is false: ω is not reachable by finite induction.
func (v omega) IsDyadic() Tril   { return False }
func (v omega) IsIntegral() Tril { return False }

func (v omega) SimpleString() string {
	if v.neg {
		return "-ω"
	}
	return "ω"
}

func (v omega) String() string {
	return fullString(v)
}

// OmegaPlus returns ω+n. A negative n is the "approaching ω from below"
// family: its left set is S* rather than a predecessor chain.
func OmegaPlus(n int64) Num {
	return omegaNum(false, n)
}

func omegaNum(neg bool, offset int64) Num {
	if offset == 0 {
		if neg {
			return NegOmega
		}
		return Omega
	}
	return omegaOffset{neg, offset}
}

// omegaOffset is (±ω)+offset for a nonzero integer offset. The negative-ω
// family is the pointwise negation mirror of the positive one, which is
// what makes negation total on the family: -(ω+n) = -ω-n.
type omegaOffset struct {
	neg    bool
	offset int64
}

func (v omegaOffset) Kind() Kind {
	return OmegaOffsetKind
}

func (v omegaOffset) Left() Set {
	d.PanicIfTrue(v.offset == 0)
	switch {
	case !v.neg && v.offset > 0:
		return NewSet(omegaNum(false, v.offset-1))
	case !v.neg:
		return Dyadics
	case v.offset > 0:
		return NewSet(omegaNum(true, v.offset-1))
	default:
		return EmptySet()
	}
}

func (v omegaOffset) Right() Set {
	d.PanicIfTrue(v.offset == 0)
	switch {
	case !v.neg && v.offset > 0:
		return EmptySet()
	case !v.neg:
		return NewSet(omegaNum(false, v.offset+1))
	case v.offset > 0:
		return Dyadics
	default:
		return NewSet(omegaNum(true, v.offset+1))
	}
}

// Birthday normalizes to the positive family: ±ω±n is born at ω+|n|.
func (v omegaOffset) Birthday() (Num, bool) {
	off := v.offset
	if off < 0 {
		off = -off
	}
	return omegaNum(false, off), true
}

func (v omegaOffset) BirthdayFinite() Tril { return False }
func (v omegaOffset) IsFinite() Tril       { return False }
func (v omegaOffset) IsInfinite() Tril     { return True }
func (v omegaOffset) IsInfinitesimal() Tril { return False }
func (v omegaOffset) IsReal() Tril         { return False }
func (v omegaOffset) IsRational() Tril     { return False }
func (v omegaOffset) IsDyadic() Tril       { return False }
func (v omegaOffset) IsIntegral() Tril     { return False }

func (v omegaOffset) SimpleString() string {
	s := "ω"
	if v.neg {
		s = "-ω"
	}
	if v.offset > 0 {
		return s + "+" + strconv.FormatInt(v.offset, 10)
	}
	return s + strconv.FormatInt(v.offset, 10)
}

func (v omegaOffset) String() string {
	return fullString(v)
}

// omegaParts decomposes an ω-family value into the sign of its ω term and
// its integer offset.
func omegaParts(n Num) (neg bool, offset int64, ok bool) {
	switch n := n.(type) {
	case omega:
		return n.neg, 0, true
	case omegaOffset:
		return n.neg, n.offset, true
	}
	return false, 0, false
}
