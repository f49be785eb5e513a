// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"github.com/pkg/errors"

	"github.com/attic-labs/surreal/go/d"
)

// Neg returns -a. Canonical and ω-family forms negate their scalars; any
// other form is rebuilt as {-R|-L}. Negating a form whose sets cannot be
// enumerated fails with ErrTransfinite.
func Neg(a Num) (Num, error) {
	switch a := a.(type) {
	case Integer:
		return -a, nil
	case Dyadic:
		return Dyadic{-a.num, a.den}, nil
	case omega:
		return omegaNum(!a.neg, 0), nil
	case omegaOffset:
		return omegaNum(!a.neg, -a.offset), nil
	}
	left, err := negSet(a.Right())
	if err != nil {
		return nil, err
	}
	right, err := negSet(a.Left())
	if err != nil {
		return nil, err
	}
	return NewForm(left, right), nil
}

// Add returns a + b. Canonical pairs add exactly; the ω family admits only
// integer offsets; any other pairing runs the recursive construction
// {aL+b ∪ a+bL | aR+b ∪ a+bR}.
func Add(a, b Num) (Num, error) {
	if an, ad, ok := canonicalVal(a); ok {
		if bn, bd, ok := canonicalVal(b); ok {
			return addRat(an, ad, bn, bd), nil
		}
	}
	if aneg, aoff, ok := omegaParts(a); ok {
		if bi, ok := b.(Integer); ok {
			return omegaNum(aneg, aoff+int64(bi)), nil
		}
		return nil, errors.Wrapf(ErrUnsupportedOperation,
			"only integers can be added to the ω family, not %s", b.SimpleString())
	}
	if bneg, boff, ok := omegaParts(b); ok {
		if ai, ok := a.(Integer); ok {
			return omegaNum(bneg, boff+int64(ai)), nil
		}
		return nil, errors.Wrapf(ErrUnsupportedOperation,
			"only integers can be added to the ω family, not %s", a.SimpleString())
	}
	return addGeneric(a, b)
}

// Sub returns a - b, built like Add with the sides mirrored:
// {aL-b ∪ a-bR | aR-b ∪ a-bL}.
func Sub(a, b Num) (Num, error) {
	if an, ad, ok := canonicalVal(a); ok {
		if bn, bd, ok := canonicalVal(b); ok {
			return addRat(an, ad, -bn, bd), nil
		}
	}
	if aneg, aoff, ok := omegaParts(a); ok {
		if bi, ok := b.(Integer); ok {
			return omegaNum(aneg, aoff-int64(bi)), nil
		}
		return nil, errors.Wrapf(ErrUnsupportedOperation,
			"only integers can be subtracted from the ω family, not %s", b.SimpleString())
	}
	if bneg, boff, ok := omegaParts(b); ok {
		if ai, ok := a.(Integer); ok {
			return omegaNum(!bneg, int64(ai)-boff), nil
		}
		return nil, errors.Wrapf(ErrUnsupportedOperation,
			"cannot subtract the ω family from %s", a.SimpleString())
	}
	return subGeneric(a, b)
}

func addGeneric(a, b Num) (Num, error) {
	aLb, err := shiftSet(a.Left(), b, Add)
	if err != nil {
		return nil, err
	}
	bLa, err := shiftSet(b.Left(), a, Add)
	if err != nil {
		return nil, err
	}
	aRb, err := shiftSet(a.Right(), b, Add)
	if err != nil {
		return nil, err
	}
	bRa, err := shiftSet(b.Right(), a, Add)
	if err != nil {
		return nil, err
	}
	return NewForm(union(aLb, bLa), union(aRb, bRa)), nil
}

func subGeneric(a, b Num) (Num, error) {
	aLb, err := shiftSet(a.Left(), b, Sub)
	if err != nil {
		return nil, err
	}
	aRb, err := shiftSet(a.Right(), b, Sub)
	if err != nil {
		return nil, err
	}
	abR, err := shiftNum(a, b.Right(), Sub)
	if err != nil {
		return nil, err
	}
	abL, err := shiftNum(a, b.Left(), Sub)
	if err != nil {
		return nil, err
	}
	return NewForm(union(aLb, abR), union(aRb, abL)), nil
}

// Mul returns a * b for canonical operands; dyadics are closed under
// multiplication. The general recursive product is out of scope.
func Mul(a, b Num) (Num, error) {
	an, ad, aok := canonicalVal(a)
	bn, bd, bok := canonicalVal(b)
	if !aok || !bok {
		return nil, errors.Wrapf(ErrUnsupportedOperation,
			"multiply %s and %s", a.SimpleString(), b.SimpleString())
	}
	return mkCanonical(an*bn, ad*bd), nil
}

// Div returns a / b for canonical operands. The quotient must itself be
// dyadic: the divisor's reduced numerator has to be a power of two, or the
// division fails with ErrNonDyadicResult.
func Div(a, b Num) (Num, error) {
	an, ad, aok := canonicalVal(a)
	bn, bd, bok := canonicalVal(b)
	if !aok || !bok {
		return nil, errors.Wrapf(ErrUnsupportedOperation,
			"divide %s by %s", a.SimpleString(), b.SimpleString())
	}
	if bn == 0 {
		return nil, errors.Wrapf(ErrDivideByZero, "%s / 0", a.SimpleString())
	}
	num, den := an*bd, ad*bn
	if den < 0 {
		num, den = -num, -den
	}
	num, den = reduce(num, den)
	if !isPow2(den) {
		return nil, errors.Wrapf(ErrNonDyadicResult, "%s / %s", a.SimpleString(), b.SimpleString())
	}
	return mkCanonical(num, den), nil
}

// Mod returns the floored remainder a - floor(a/b)*b, which stays dyadic
// for any canonical operands since the quotient is truncated to an integer.
func Mod(a, b Num) (Num, error) {
	an, ad, aok := canonicalVal(a)
	bn, bd, bok := canonicalVal(b)
	if !aok || !bok {
		return nil, errors.Wrapf(ErrUnsupportedOperation,
			"%s mod %s", a.SimpleString(), b.SimpleString())
	}
	if bn == 0 {
		return nil, errors.Wrapf(ErrDivideByZero, "%s mod 0", a.SimpleString())
	}
	qnum, qden := an*bd, ad*bn
	if qden < 0 {
		qnum, qden = -qnum, -qden
	}
	q := floorDiv(qnum, qden)
	return mkCanonical(an*bd-q*bn*ad, ad*bd), nil
}

// Pow returns a**k for a canonical base and integer exponent. Negative
// exponents invert the base, which is only representable when the base's
// numerator is a power of two.
func Pow(a Num, k int64) (Num, error) {
	num, den, ok := canonicalVal(a)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedOperation, "%s ** %d", a.SimpleString(), k)
	}
	if k < 0 {
		if num == 0 {
			return nil, errors.Wrap(ErrDivideByZero, "0 to a negative power")
		}
		num, den = den, num
		if den < 0 {
			num, den = -num, -den
		}
		num, den = reduce(num, den)
		if !isPow2(den) {
			return nil, errors.Wrapf(ErrNonDyadicResult, "%s ** %d", a.SimpleString(), k)
		}
		k = -k
	}
	rnum, rden := int64(1), int64(1)
	for ; k > 0; k-- {
		rnum *= num
		rden *= den
	}
	return mkCanonical(rnum, rden), nil
}

// negSet negates a finite set elementwise.
func negSet(s Set) (Set, error) {
	items, ok := s.elems()
	if !ok {
		return nil, errors.Wrap(ErrTransfinite, "negate an infinite set")
	}
	out := make([]Num, len(items))
	for i, it := range items {
		n, err := Neg(it)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return NewSet(out...), nil
}

// shiftSet applies op(element, n) to every element of a finite set.
func shiftSet(s Set, n Num, op func(Num, Num) (Num, error)) (Set, error) {
	items, ok := s.elems()
	if !ok {
		return nil, errors.Wrap(ErrTransfinite, "shift an infinite set")
	}
	out := make([]Num, len(items))
	for i, it := range items {
		r, err := op(it, n)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return NewSet(out...), nil
}

// shiftNum applies op(n, element) to every element of a finite set.
func shiftNum(n Num, s Set, op func(Num, Num) (Num, error)) (Set, error) {
	items, ok := s.elems()
	if !ok {
		return nil, errors.Wrap(ErrTransfinite, "shift an infinite set")
	}
	out := make([]Num, len(items))
	for i, it := range items {
		r, err := op(n, it)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return NewSet(out...), nil
}

func union(a, b Set) Set {
	ai, aok := a.elems()
	bi, bok := b.elems()
	// Unions are only formed from shifted finite sets.
	d.PanicIfFalse(aok && bok)
	out := make([]Num, 0, len(ai)+len(bi))
	out = append(out, ai...)
	for _, it := range bi {
		dup := false
		for _, have := range out {
			if identical(have, it) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, it)
		}
	}
	return NewSet(out...)
}

func addRat(an, ad, bn, bd int64) Num {
	for ad < bd {
		an <<= 1
		ad <<= 1
	}
	for bd < ad {
		bn <<= 1
		bd <<= 1
	}
	return mkCanonical(an+bn, ad)
}
