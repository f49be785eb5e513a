// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"github.com/pkg/errors"
)

// Leq reports a <= b: no element of a's left set is >= b, and no element of
// b's right set is <= a. Kind pairs with a fast path (canonical rationals,
// the ω family) are decided on their scalar values; any other pairing runs
// the recursive definition over the left/right sets.
func Leq(a, b Num) (bool, error) {
	if an, ad, ok := canonicalVal(a); ok {
		if bn, bd, ok := canonicalVal(b); ok {
			return an*bd <= bn*ad, nil
		}
		if bneg, _, ok := omegaParts(b); ok {
			// A finite number is below the +ω family, above the -ω family.
			return !bneg, nil
		}
	} else if aneg, aoff, ok := omegaParts(a); ok {
		if _, _, ok := canonicalVal(b); ok {
			return aneg, nil
		}
		if bneg, boff, ok := omegaParts(b); ok {
			if aneg != bneg {
				return aneg, nil
			}
			return aoff <= boff, nil
		}
	}
	return leqGeneric(a, b)
}

// leqGeneric is the dual recursive definition: a.left < b and a < b.right.
func leqGeneric(a, b Num) (bool, error) {
	ok, err := setAllLess(a.Left(), b)
	if err != nil || !ok {
		return false, err
	}
	return numLessAll(a, b.Right())
}

// Less reports a < b, i.e. a <= b and not b <= a.
func Less(a, b Num) (bool, error) {
	if lessWitness(a, b) {
		return true, nil
	}
	le, err := Leq(a, b)
	if err != nil || !le {
		return false, err
	}
	ge, err := Leq(b, a)
	if err != nil {
		return false, err
	}
	return !ge, nil
}

// Greater reports a > b.
func Greater(a, b Num) (bool, error) {
	return Less(b, a)
}

// Geq reports a >= b.
func Geq(a, b Num) (bool, error) {
	return Leq(b, a)
}

// Eq reports numeric equivalence: a <= b and b <= a. Two structurally
// different forms can be equal. Identity of shared values (the ω
// singletons, equal canonical scalars) short-circuits before the mutual
// recursion runs.
func Eq(a, b Num) (bool, error) {
	if identical(a, b) {
		return true, nil
	}
	if an, ad, ok := canonicalVal(a); ok {
		if bn, bd, ok := canonicalVal(b); ok {
			return an*bd == bn*ad, nil
		}
	}
	le, err := Leq(a, b)
	if err != nil || !le {
		return false, err
	}
	return Leq(b, a)
}

// Cmp returns -1, 0 or 1 ordering a against b.
func Cmp(a, b Num) (int, error) {
	eq, err := Eq(a, b)
	if err != nil {
		return 0, err
	}
	if eq {
		return 0, nil
	}
	lt, err := Less(a, b)
	if err != nil {
		return 0, err
	}
	if lt {
		return -1, nil
	}
	return 1, nil
}

// IsZero is the truthiness test of any form: whether it equals zero.
func IsZero(n Num) (bool, error) {
	if num, _, ok := canonicalVal(n); ok {
		return num == 0, nil
	}
	if _, _, ok := omegaParts(n); ok {
		return false, nil
	}
	return Eq(n, Integer(0))
}

// canonicalVal extracts the exact scalar of a canonical form. den is a
// positive power of two, 1 for integers.
func canonicalVal(n Num) (num, den int64, ok bool) {
	switch n := n.(type) {
	case Integer:
		return int64(n), 1, true
	case Dyadic:
		return n.num, n.den, true
	}
	return 0, 0, false
}

// identical reports value identity for the engine's own comparable kinds.
func identical(a, b Num) bool {
	switch a.(type) {
	case Integer, Dyadic, omega, omegaOffset, *Form:
		return a == b
	}
	return false
}

// setAllLess reports whether every element of s is < b. Vacuously true for
// the empty set; the S* limit set goes through dyadicsLessAll.
func setAllLess(s Set, b Num) (bool, error) {
	items, ok := s.elems()
	if !ok {
		return dyadicsLessAll(b)
	}
	for _, it := range items {
		lt, err := Less(it, b)
		if err != nil || !lt {
			return false, err
		}
	}
	return true, nil
}

// numLessAll reports whether a is < every element of s. For the S* limit
// set the question "a below every dyadic" mirrors dyadicsLessAll under
// pointwise negation, dyadics being closed under it.
func numLessAll(a Num, s Set) (bool, error) {
	items, ok := s.elems()
	if !ok {
		na, err := Neg(a)
		if err != nil {
			return false, err
		}
		return dyadicsLessAll(na)
	}
	for _, it := range items {
		lt, err := Less(a, it)
		if err != nil || !lt {
			return false, err
		}
	}
	return true, nil
}

// dyadicsLessAll answers S* < b, "every dyadic so far constructed is below
// b". False when b is itself dyadic or ±ω; true when ω sits in b's own left
// set, which signals b beyond every dyadic. Against any other form the
// comparison is unresolved and says so rather than guessing.
func dyadicsLessAll(b Num) (bool, error) {
	if b.Kind() == OmegaKind || b.Kind().isCanonical() {
		return false, nil
	}
	if b.IsDyadic() == True {
		return false, nil
	}
	if b.Left().Contains(Omega) {
		return true, nil
	}
	return false, errors.Wrapf(ErrUnresolved, "S* ordered against %s", b.SimpleString())
}

// lessWitness is the canonical-form membership shortcut: a dyadic q is
// witnessed < b when some canonical member m of b's left set has q <= m,
// since m < b under the well-formedness precondition; mirrored through b's
// right side. Only a positive answer is conclusive.
func lessWitness(a, b Num) bool {
	if qn, qd, ok := canonicalVal(a); ok && b.Kind() == FormKind {
		if items, ok := b.Left().elems(); ok {
			for _, it := range items {
				if mn, md, ok := canonicalVal(it); ok && qn*md <= mn*qd {
					return true
				}
			}
		}
	}
	if qn, qd, ok := canonicalVal(b); ok && a.Kind() == FormKind {
		if items, ok := a.Right().elems(); ok {
			for _, it := range items {
				if mn, md, ok := canonicalVal(it); ok && mn*qd <= qn*md {
					return true
				}
			}
		}
	}
	return false
}
