// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

// Dyadics is S*, the conceptually infinite set of every dyadic number, used
// only as a limit-set operand. It is the left set of ω and is never
// enumerated; ordering against it goes through the special-cased rules in
// compare.go.
var Dyadics Set = dyadicsSet{}

type dyadicsSet struct{}

func (dyadicsSet) IsFinite() bool {
	return false
}

func (dyadicsSet) Contains(n Num) bool {
	return n.IsDyadic() == True
}

func (dyadicsSet) Largest() (Num, bool) {
	return nil, false
}

func (dyadicsSet) Smallest() (Num, bool) {
	return nil, false
}

func (dyadicsSet) Birthday() (Num, bool) {
	return nil, false
}

// BirthdayFinite is true: every member individually is generated at some
// finite generation, even though the set itself is unbounded.
func (dyadicsSet) BirthdayFinite() Tril {
	return True
}

func (dyadicsSet) InnerString() string {
	return "S*"
}

func (dyadicsSet) String() string {
	return "{S*}"
}

func (dyadicsSet) elems() ([]Num, bool) {
	return nil, false
}
