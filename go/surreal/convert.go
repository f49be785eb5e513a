// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// Zero returns surreal zero, the empty-set form {|} in canonical shape.
func Zero() Num {
	return Integer(0)
}

// FromInt64 returns the canonical integer form of v.
func FromInt64(v int64) Num {
	return Integer(v)
}

// FromFloat64 converts a float to the canonical form of the exact dyadic
// value it carries. Every finite float is i/2^exp for some integers, so the
// conversion is exact; NaN and infinities are rejected.
func FromFloat64(f float64) (Num, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Wrapf(ErrUnsupportedType, "%f", f)
	}
	i, exp := float64ToIntExp(f)
	if exp <= 0 {
		if -exp > 62 {
			return nil, errors.Wrapf(ErrUnsupportedType, "%g exceeds the engine's integer range", f)
		}
		v := i << uint(-exp)
		if v>>uint(-exp) != i {
			return nil, errors.Wrapf(ErrUnsupportedType, "%g exceeds the engine's integer range", f)
		}
		return Integer(v), nil
	}
	if exp > 62 {
		return nil, errors.Wrapf(ErrUnsupportedType, "%g exceeds the engine's denominator range", f)
	}
	return mkCanonical(i, int64(1)<<uint(exp)), nil
}

// FromRat converts the exact rational num/den. Rationals whose reduced
// denominator is not a power of two have infinite birthday and are rejected
// with ErrNonDyadic.
func FromRat(num, den int64) (Num, error) {
	return NewDyadic(num, den)
}

// From converts a native numeric value into a surreal number of the
// appropriate canonical kind. Nums pass through; string literal parsing is
// an external collaborator's job and is rejected here.
func From(value interface{}) (Num, error) {
	switch v := value.(type) {
	case Num:
		return v, nil
	case int:
		return Integer(v), nil
	case int8:
		return Integer(v), nil
	case int16:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case uint8:
		return Integer(v), nil
	case uint16:
		return Integer(v), nil
	case uint32:
		return Integer(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, errors.Wrapf(ErrUnsupportedType, "%d overflows", v)
		}
		return Integer(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, errors.Wrapf(ErrUnsupportedType, "%d overflows", v)
		}
		return Integer(v), nil
	case float32:
		return FromFloat64(float64(v))
	case float64:
		return FromFloat64(v)
	case *big.Rat:
		if !v.Num().IsInt64() || !v.Denom().IsInt64() {
			return nil, errors.Wrapf(ErrUnsupportedType, "%s exceeds the engine's range", v)
		}
		return FromRat(v.Num().Int64(), v.Denom().Int64())
	case string:
		return nil, errors.Wrap(ErrUnsupportedType, "string literal parsing is not implemented")
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%T", value)
	}
}

// float64ToIntExp decomposes f into i, exp such that f == i / 2^exp.
func float64ToIntExp(f float64) (i int64, exp int) {
	if f == 0 {
		return 0, 0
	}

	isNegative := math.Signbit(f)
	f = math.Abs(f)

	machineEpsilon := math.Nextafter(1, 2) - 1
	exp = 0
	// really large float, bring down to within MaxInt64
	for f > float64(math.MaxInt64) {
		f /= 2
		exp--
	}

	for !float64IsInt(f, machineEpsilon) {
		f *= 2
		exp++
	}
	if isNegative {
		f *= -1
	}
	return int64(f), exp
}

func float64IsInt(f, machineEpsilon float64) bool {
	_, frac := math.Modf(math.Abs(f))
	if frac < machineEpsilon || frac > 1.0-machineEpsilon {
		return true
	}
	return false
}
