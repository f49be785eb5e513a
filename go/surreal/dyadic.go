// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"strconv"

	"github.com/attic-labs/surreal/go/d"
	"github.com/pkg/errors"
)

// Dyadic is a non-integer dyadic rational surreal number in canonical form:
// an exact numerator over a power-of-two denominator, always in lowest
// terms. Like Integer, its left and right sets are synthesized lazily per
// the canonical rule left={(num-1)/den}, right={(num+1)/den}.
type Dyadic struct {
	num, den int64
}

// NewDyadic returns num/den as a canonical surreal number: an Integer when
// the reduced fraction is integral, a Dyadic otherwise. Fails with
// ErrNonDyadic when the reduced denominator is not a power of two.
func NewDyadic(num, den int64) (Num, error) {
	if den == 0 {
		return nil, errors.Wrap(ErrDivideByZero, "zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	num, den = reduce(num, den)
	if !isPow2(den) {
		return nil, errors.Wrapf(ErrNonDyadic, "%d/%d", num, den)
	}
	return mkCanonical(num, den), nil
}

// mkCanonical wraps a reduced fraction over a power-of-two denominator.
func mkCanonical(num, den int64) Num {
	d.PanicIfFalse(isPow2(den))
	num, den = reduceDyadic(num, den)
	if den == 1 {
		return Integer(num)
	}
	return Dyadic{num, den}
}

func (v Dyadic) Kind() Kind {
	return DyadicKind
}

func (v Dyadic) Left() Set {
	return NewSet(mkCanonical(v.num-1, v.den))
}

func (v Dyadic) Right() Set {
	return NewSet(mkCanonical(v.num+1, v.den))
}

func (v Dyadic) Birthday() (Num, bool) {
	return v.Abs(), true
}

func (v Dyadic) BirthdayFinite() Tril { return True }
func (v Dyadic) IsFinite() Tril       { return True }
func (v Dyadic) IsInfinite() Tril     { return False }
func (v Dyadic) IsInfinitesimal() Tril { return False }
func (v Dyadic) IsReal() Tril         { return True }
func (v Dyadic) IsRational() Tril     { return True }
func (v Dyadic) IsDyadic() Tril       { return True }
func (v Dyadic) IsIntegral() Tril     { return False }

func (v Dyadic) SimpleString() string {
	return strconv.FormatInt(v.num, 10) + "/" + strconv.FormatInt(v.den, 10)
}

func (v Dyadic) String() string {
	return fullString(v)
}

// Numerator returns the exact numerator in lowest terms.
func (v Dyadic) Numerator() int64 {
	return v.num
}

// Denominator returns the power-of-two denominator in lowest terms.
func (v Dyadic) Denominator() int64 {
	return v.den
}

// Float64 returns the native floating point value, exact for any Dyadic
// whose numerator fits in the float64 mantissa.
func (v Dyadic) Float64() float64 {
	return float64(v.num) / float64(v.den)
}

// Int64 truncates toward zero.
func (v Dyadic) Int64() int64 {
	return v.num / v.den
}

// IsZero is always false: zero is integral and never a Dyadic.
func (v Dyadic) IsZero() bool {
	return false
}

func (v Dyadic) Abs() Dyadic {
	if v.num < 0 {
		return Dyadic{-v.num, v.den}
	}
	return v
}

func (v Dyadic) Ceil() Integer {
	return Integer(-floorDiv(-v.num, v.den))
}

func (v Dyadic) Floor() Integer {
	return Integer(floorDiv(v.num, v.den))
}

// Round rounds half to even, the exact-rational convention of the engine.
func (v Dyadic) Round() Integer {
	q := floorDiv(v.num, v.den)
	r := v.num - q*v.den
	switch {
	case 2*r < v.den:
		return Integer(q)
	case 2*r > v.den:
		return Integer(q + 1)
	case q%2 == 0:
		return Integer(q)
	default:
		return Integer(q + 1)
	}
}

func (v Dyadic) Trunc() Integer {
	return Integer(v.num / v.den)
}

func isPow2(v int64) bool {
	return v > 0 && v&(v-1) == 0
}

// floorDiv is floored integer division; den must be positive.
func floorDiv(num, den int64) int64 {
	q := num / den
	if num%den != 0 && num < 0 {
		q--
	}
	return q
}

// reduce brings num/den to lowest terms; den must be positive.
func reduce(num, den int64) (int64, int64) {
	g := gcd(num, den)
	return num / g, den / g
}

// reduceDyadic strips common factors of two; den must be a power of two.
func reduceDyadic(num, den int64) (int64, int64) {
	for den > 1 && num%2 == 0 {
		num >>= 1
		den >>= 1
	}
	return num, den
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
