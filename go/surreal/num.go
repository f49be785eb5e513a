// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package surreal implements surreal number forms: pairs {L|R} of sets of
// previously constructed surreal numbers, together with the recursive
// comparison and arithmetic rules defined on them.
//
// Integers and dyadic fractions are carried in canonical scalar form rather
// than as materialized set trees, and the transfinite values ω, -ω and ω±n
// are modeled as their own kinds. Two different forms may represent the same
// number; Eq tests numeric equivalence, never structural equality.
package surreal

// Kind tags the closed set of concrete Num variants. Binary operations
// dispatch on the pair of kinds first and fall back to the generic
// set-recursive algorithm for unmatched pairings.
type Kind uint8

const (
	IntegerKind Kind = iota
	DyadicKind
	OmegaKind
	OmegaOffsetKind
	FormKind
)

// KindToString maps Kind to a human readable string.
var KindToString = map[Kind]string{
	IntegerKind:     "Integer",
	DyadicKind:      "Dyadic",
	OmegaKind:       "Omega",
	OmegaOffsetKind: "OmegaOffset",
	FormKind:        "Form",
}

func (k Kind) String() string {
	return KindToString[k]
}

// isCanonical reports whether values of this kind carry an exact machine
// scalar (the dyadic fast-path family).
func (k Kind) isCanonical() bool {
	return k == IntegerKind || k == DyadicKind
}

// Tril is a three-valued truth value. Classification queries on arbitrary
// forms cannot generally be decided, so predicates answer Unresolved rather
// than guessing.
type Tril uint8

const (
	False Tril = iota
	True
	Unresolved
)

func (t Tril) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "unresolved"
	}
}

// Known reports whether the value is decided.
func (t Tril) Known() bool {
	return t != Unresolved
}

// And is three-valued conjunction: False dominates, Unresolved propagates.
func (t Tril) And(u Tril) Tril {
	if t == False || u == False {
		return False
	}
	if t == Unresolved || u == Unresolved {
		return Unresolved
	}
	return True
}

// Num is the interface all surreal number forms implement. Implementations
// are immutable value types; all of them are comparable with ==, which the
// equality fast path relies on for shared singletons such as Omega.
type Num interface {
	// Kind returns the variant tag used for fast-path dispatch.
	Kind() Kind

	// Left returns the left set of the form. Canonical kinds synthesize
	// their one-element (or empty) set on demand.
	Left() Set

	// Right returns the right set of the form.
	Right() Set

	// Birthday returns the construction depth of the form as a Num: an
	// Integer or Dyadic for finite birthdays, an ω-family value otherwise.
	// ok is false when the birthday cannot be determined.
	Birthday() (b Num, ok bool)

	// BirthdayFinite reports whether the birthday is finite. Unlike
	// Birthday this is decided for every kind except arbitrary forms.
	BirthdayFinite() Tril

	IsFinite() Tril
	IsInfinite() Tril
	IsInfinitesimal() Tril
	IsReal() Tril
	IsRational() Tril
	IsDyadic() Tril
	IsIntegral() Tril

	// SimpleString returns the short tag for this number: decimal text for
	// canonical forms, "ω"-style tags for the transfinite family and "?"
	// for unclassified forms. It is what set renderings use for elements.
	SimpleString() string

	// String returns the full bracketed {L|R} rendering.
	String() string
}

// fullString renders the {L|R} form of any Num.
func fullString(n Num) string {
	return "{" + n.Left().InnerString() + "|" + n.Right().InnerString() + "}"
}
