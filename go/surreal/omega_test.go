// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOmegaSets(t *testing.T) {
	assert.Equal(t, "S*", Omega.Left().InnerString())
	items, ok := Omega.Right().elems()
	require.True(t, ok)
	assert.Empty(t, items)

	items, ok = NegOmega.Left().elems()
	require.True(t, ok)
	assert.Empty(t, items)
	assert.Equal(t, "S*", NegOmega.Right().InnerString())
}

func TestOmegaOffsetSets(t *testing.T) {
	// ω+n counts down toward ω on the left.
	l, ok := OmegaPlus(2).Left().Largest()
	require.True(t, ok)
	assert.Equal(t, OmegaPlus(1), l)
	items, ok := OmegaPlus(2).Right().elems()
	require.True(t, ok)
	assert.Empty(t, items)

	// ω-n still dominates every dyadic but sits below ω-n+1.
	assert.Equal(t, "S*", OmegaPlus(-2).Left().InnerString())
	r, ok := OmegaPlus(-2).Right().Smallest()
	require.True(t, ok)
	assert.Equal(t, OmegaPlus(-1), r)

	// The negative family mirrors both shapes.
	l, ok = omegaNum(true, 2).Left().Largest()
	require.True(t, ok)
	assert.Equal(t, omegaNum(true, 1), l)
	assert.Equal(t, "S*", omegaNum(true, 2).Right().InnerString())

	items, ok = omegaNum(true, -2).Left().elems()
	require.True(t, ok)
	assert.Empty(t, items)
	r, ok = omegaNum(true, -2).Right().Smallest()
	require.True(t, ok)
	assert.Equal(t, omegaNum(true, -1), r)
}

func TestOmegaPlusZeroIsOmega(t *testing.T) {
	assert.Equal(t, Omega, OmegaPlus(0))
	assert.Equal(t, NegOmega, omegaNum(true, 0))
}

func TestOmegaBirthday(t *testing.T) {
	b, ok := Omega.Birthday()
	require.True(t, ok)
	assert.Equal(t, Omega, b)

	b, ok = NegOmega.Birthday()
	require.True(t, ok)
	assert.Equal(t, Omega, b)

	// Offsets normalize to the positive side of the family.
	b, ok = OmegaPlus(-3).Birthday()
	require.True(t, ok)
	assert.Equal(t, OmegaPlus(3), b)

	b, ok = omegaNum(true, 2).Birthday()
	require.True(t, ok)
	assert.Equal(t, OmegaPlus(2), b)
}

func TestOmegaPredicates(t *testing.T) {
	for _, n := range []Num{Omega, NegOmega, OmegaPlus(1), OmegaPlus(-4), omegaNum(true, 3)} {
		assert.Equal(t, True, n.IsInfinite(), n.SimpleString())
		assert.Equal(t, False, n.IsFinite(), n.SimpleString())
		assert.Equal(t, False, n.IsReal(), n.SimpleString())
		assert.Equal(t, False, n.IsDyadic(), n.SimpleString())
		assert.Equal(t, False, n.BirthdayFinite(), n.SimpleString())
	}
}

func TestOmegaStrings(t *testing.T) {
	assert.Equal(t, "ω", Omega.SimpleString())
	assert.Equal(t, "-ω", NegOmega.SimpleString())
	assert.Equal(t, "ω+2", OmegaPlus(2).SimpleString())
	assert.Equal(t, "ω-1", OmegaPlus(-1).SimpleString())
	assert.Equal(t, "-ω+2", omegaNum(true, 2).SimpleString())
	assert.Equal(t, "-ω-1", omegaNum(true, -1).SimpleString())

	assert.Equal(t, "{S*|}", Omega.String())
	assert.Equal(t, "{|S*}", NegOmega.String())
	assert.Equal(t, "{ω|}", OmegaPlus(1).String())
	assert.Equal(t, "{S*|ω}", OmegaPlus(-1).String())
}
