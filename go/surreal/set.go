// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"strings"
	"sync"
)

// maxRenderedElems caps how many elements of a set InnerString renders
// before truncating with an ellipsis.
const maxRenderedElems = 4

// Set is a possibly infinite immutable collection of Nums, used as the left
// or right side of a {L|R} form. The set of implementations is closed:
// the empty set, an explicit finite set, and the Dyadics limit set.
type Set interface {
	// IsFinite reports whether the set has finitely many elements.
	IsFinite() bool

	// Contains reports whether n is a member of the set. For Dyadics the
	// membership test is "is n dyadic".
	Contains(n Num) bool

	// Largest returns the greatest element under the surreal ordering.
	// ok is false when the set is empty or the ordering is unresolved.
	Largest() (n Num, ok bool)

	// Smallest is the mirror of Largest.
	Smallest() (n Num, ok bool)

	// Birthday returns the largest birthday of any member, Integer(0) for
	// the empty set, and ok=false when unknown or unbounded.
	Birthday() (b Num, ok bool)

	// BirthdayFinite reports whether every member has a finite birthday.
	// True for the empty set.
	BirthdayFinite() Tril

	// InnerString renders the comma-joined element tags, without braces.
	InnerString() string

	// String renders the set in braces.
	String() string

	// elems returns the members of a finite set. ok is false for sets
	// that cannot be enumerated.
	elems() (items []Num, ok bool)
}

type emptySet struct{}

// EmptySet returns the set with no elements, used by the canonical forms of
// several kinds of numbers.
func EmptySet() Set {
	return emptySet{}
}

func (emptySet) IsFinite() bool            { return true }
func (emptySet) Contains(Num) bool         { return false }
func (emptySet) Largest() (Num, bool)      { return nil, false }
func (emptySet) Smallest() (Num, bool)     { return nil, false }
func (emptySet) Birthday() (Num, bool)     { return Integer(0), true }
func (emptySet) BirthdayFinite() Tril      { return True }
func (emptySet) InnerString() string       { return "" }
func (emptySet) String() string            { return "{}" }
func (emptySet) elems() ([]Num, bool)      { return nil, true }

// NewSet returns a Set owning the given elements. Order is preserved for
// rendering but carries no meaning.
func NewSet(items ...Num) Set {
	if len(items) == 0 {
		return EmptySet()
	}
	s := &explicitSet{items: make([]Num, len(items))}
	copy(s.items, items)
	return s
}

type explicitSet struct {
	items []Num

	bdayOnce   sync.Once
	bday       Num
	bdayOK     bool
	bdayFinite Tril
}

func (s *explicitSet) IsFinite() bool {
	return true
}

func (s *explicitSet) Contains(n Num) bool {
	for _, it := range s.items {
		if it == n {
			return true
		}
		if eq, err := Eq(it, n); err == nil && eq {
			return true
		}
	}
	return false
}

func (s *explicitSet) Largest() (Num, bool) {
	return s.extremum(false)
}

func (s *explicitSet) Smallest() (Num, bool) {
	return s.extremum(true)
}

func (s *explicitSet) extremum(smallest bool) (Num, bool) {
	best := s.items[0]
	for _, it := range s.items[1:] {
		a, b := best, it
		if smallest {
			a, b = b, a
		}
		lt, err := Less(a, b)
		if err != nil {
			return nil, false
		}
		if lt {
			best = it
		}
	}
	return best, true
}

// Birthday is memoized; the elements are immutable so the computation is a
// pure function of construction state.
func (s *explicitSet) Birthday() (Num, bool) {
	s.bdayOnce.Do(s.computeBirthday)
	return s.bday, s.bdayOK
}

func (s *explicitSet) BirthdayFinite() Tril {
	s.bdayOnce.Do(s.computeBirthday)
	return s.bdayFinite
}

func (s *explicitSet) computeBirthday() {
	s.bdayFinite = True
	var max Num = Integer(0)
	known := true
	for _, it := range s.items {
		s.bdayFinite = s.bdayFinite.And(it.BirthdayFinite())
		if !known {
			continue
		}
		b, ok := it.Birthday()
		if !ok {
			known = false
			continue
		}
		lt, err := Less(max, b)
		if err != nil {
			known = false
			continue
		}
		if lt {
			max = b
		}
	}
	if known {
		s.bday, s.bdayOK = max, true
	}
}

func (s *explicitSet) InnerString() string {
	n := len(s.items)
	shown := n
	if n > maxRenderedElems {
		shown = maxRenderedElems - 1
	}
	tags := make([]string, 0, shown+1)
	for _, it := range s.items[:shown] {
		tags = append(tags, it.SimpleString())
	}
	if n > maxRenderedElems {
		tags = append(tags, "...")
	}
	return strings.Join(tags, ", ")
}

func (s *explicitSet) String() string {
	return "{" + s.InnerString() + "}"
}

func (s *explicitSet) elems() ([]Num, bool) {
	return s.items, true
}
