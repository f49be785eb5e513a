// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"github.com/pkg/errors"
)

// Form is a surreal number form constructed from arbitrary left/right sets.
// It is the general-purpose fallback: negation and the set-recursive
// arithmetic produce Forms, and callers may build their own. A Form has no
// intrinsic numeric classification; all predicates answer Unresolved.
//
// Numeric well-formedness (every left element strictly less than every
// right element) is a precondition on the caller, checked on request via
// Wellformed but not enforced here.
type Form struct {
	left, right Set
}

// NewForm returns the form {left|right}. Nil sets are treated as empty.
func NewForm(left, right Set) *Form {
	if left == nil {
		left = EmptySet()
	}
	if right == nil {
		right = EmptySet()
	}
	return &Form{left, right}
}

func (f *Form) Kind() Kind {
	return FormKind
}

func (f *Form) Left() Set {
	return f.left
}

func (f *Form) Right() Set {
	return f.right
}

func (f *Form) Birthday() (Num, bool) {
	return nil, false
}

func (f *Form) BirthdayFinite() Tril  { return Unresolved }
func (f *Form) IsFinite() Tril        { return Unresolved }
func (f *Form) IsInfinite() Tril      { return Unresolved }
func (f *Form) IsInfinitesimal() Tril { return Unresolved }
func (f *Form) IsReal() Tril          { return Unresolved }
func (f *Form) IsRational() Tril      { return Unresolved }
func (f *Form) IsDyadic() Tril        { return Unresolved }
func (f *Form) IsIntegral() Tril      { return Unresolved }

func (f *Form) SimpleString() string {
	return "?"
}

func (f *Form) String() string {
	return fullString(f)
}

// Validate returns ErrMalformed when n's sets violate numeric
// well-formedness. Constructors do not call this; it is for callers that
// build forms from untrusted sets.
func Validate(n Num) error {
	ok, err := Wellformed(n)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrMalformed, "%s", n.String())
	}
	return nil
}

// Wellformed checks numeric well-formedness of n's sets: every left element
// must be strictly less than every right element. The check is best effort;
// comparisons the engine cannot resolve propagate their error.
func Wellformed(n Num) (bool, error) {
	lefts, lok := n.Left().elems()
	rights, rok := n.Right().elems()
	if !lok || !rok {
		// An unbounded side means an ω-limit construction; those forms
		// are well formed by construction and not enumerable here.
		return true, nil
	}
	for _, l := range lefts {
		for _, r := range rights {
			lt, err := Less(l, r)
			if err != nil {
				return false, err
			}
			if !lt {
				return false, nil
			}
		}
	}
	return true, nil
}
