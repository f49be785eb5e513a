// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeg(t *testing.T) {
	cases := []struct {
		in, want Num
	}{
		{Integer(0), Integer(0)},
		{Integer(7), Integer(-7)},
		{Dyadic{3, 4}, Dyadic{-3, 4}},
		{Omega, NegOmega},
		{NegOmega, Omega},
		{OmegaPlus(2), omegaNum(true, -2)},
		{omegaNum(true, 3), omegaNum(false, -3)},
	}
	for _, c := range cases {
		got, err := Neg(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, c.in.SimpleString())
	}
}

func TestNegForm(t *testing.T) {
	form := NewForm(NewSet(mustRat(t, 7, 8)), NewSet(Integer(1)))
	neg, err := Neg(form)
	require.NoError(t, err)

	eq, err := Eq(neg, mustRat(t, -15, 16))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestAddCanonical(t *testing.T) {
	cases := []struct {
		a, b, want Num
	}{
		{Integer(2), Integer(3), Integer(5)},
		{Integer(1), Dyadic{1, 2}, Dyadic{3, 2}},
		{Dyadic{1, 4}, Dyadic{1, 4}, Dyadic{1, 2}},
		{Dyadic{3, 8}, Dyadic{5, 8}, Integer(1)},
		{Dyadic{1, 2}, Dyadic{-1, 2}, Integer(0)},
	}
	for _, c := range cases {
		got, err := Add(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

// Adding explicit forms runs the recursive definition; the result must be
// numerically equal to the canonical sum even if its shape differs.
func TestAddGenericAgreesWithCanonical(t *testing.T) {
	a := mustRat(t, 1, 2)
	b := Integer(2)

	sum, err := Add(genericized(a), genericized(b))
	require.NoError(t, err)
	assert.Equal(t, FormKind, sum.Kind())

	eq, err := Eq(sum, mustRat(t, 5, 2))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestAddOmega(t *testing.T) {
	got, err := Add(Omega, Integer(1))
	require.NoError(t, err)
	assert.Equal(t, OmegaPlus(1), got)

	got, err = Add(Integer(-2), Omega)
	require.NoError(t, err)
	assert.Equal(t, OmegaPlus(-2), got)

	got, err = Add(OmegaPlus(3), Integer(-3))
	require.NoError(t, err)
	assert.Equal(t, Omega, got)

	got, err = Add(NegOmega, Integer(5))
	require.NoError(t, err)
	assert.Equal(t, omegaNum(true, 5), got)

	_, err = Add(Omega, Dyadic{1, 2})
	require.Error(t, err)
	assert.Equal(t, ErrUnsupportedOperation, errors.Cause(err))

	_, err = Add(Omega, Omega)
	require.Error(t, err)
	assert.Equal(t, ErrUnsupportedOperation, errors.Cause(err))
}

func TestSub(t *testing.T) {
	got, err := Sub(Integer(3), Dyadic{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Dyadic{5, 2}, got)

	got, err = Sub(Omega, Integer(1))
	require.NoError(t, err)
	assert.Equal(t, OmegaPlus(-1), got)

	got, err = Sub(Integer(4), Omega)
	require.NoError(t, err)
	assert.Equal(t, omegaNum(true, 4), got)
}

func TestSubGeneric(t *testing.T) {
	diff, err := Sub(genericized(Integer(3)), genericized(Integer(1)))
	require.NoError(t, err)

	eq, err := Eq(diff, Integer(2))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b, want Num
	}{
		{Integer(3), Integer(-4), Integer(-12)},
		{Dyadic{1, 2}, Dyadic{1, 2}, Dyadic{1, 4}},
		{Dyadic{3, 4}, Integer(4), Integer(3)},
		{Integer(0), Dyadic{7, 8}, Integer(0)},
	}
	for _, c := range cases {
		got, err := Mul(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := Mul(Omega, Integer(2))
	require.Error(t, err)
	assert.Equal(t, ErrUnsupportedOperation, errors.Cause(err))
}

func TestDiv(t *testing.T) {
	got, err := Div(Integer(3), Integer(4))
	require.NoError(t, err)
	assert.Equal(t, Dyadic{3, 4}, got)

	got, err = Div(Dyadic{1, 2}, Dyadic{1, 4})
	require.NoError(t, err)
	assert.Equal(t, Integer(2), got)

	_, err = Div(Integer(1), Integer(3))
	require.Error(t, err)
	assert.Equal(t, ErrNonDyadicResult, errors.Cause(err))

	_, err = Div(Integer(1), Integer(0))
	require.Error(t, err)
	assert.Equal(t, ErrDivideByZero, errors.Cause(err))
}

func TestMod(t *testing.T) {
	cases := []struct {
		a, b, want Num
	}{
		{Integer(7), Integer(3), Integer(1)},
		{Integer(-7), Integer(3), Integer(2)},
		{Integer(7), Integer(-3), Integer(-2)},
		{Dyadic{7, 2}, Integer(2), Dyadic{3, 2}},
		{Dyadic{-1, 4}, Integer(1), Dyadic{3, 4}},
	}
	for _, c := range cases {
		got, err := Mod(c.a, c.b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%s mod %s", c.a.SimpleString(), c.b.SimpleString())
	}

	_, err := Mod(Integer(1), Integer(0))
	require.Error(t, err)
	assert.Equal(t, ErrDivideByZero, errors.Cause(err))
}

func TestPow(t *testing.T) {
	got, err := Pow(Integer(2), 10)
	require.NoError(t, err)
	assert.Equal(t, Integer(1024), got)

	got, err = Pow(Dyadic{1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, Dyadic{1, 8}, got)

	got, err = Pow(Integer(2), -3)
	require.NoError(t, err)
	assert.Equal(t, Dyadic{1, 8}, got)

	got, err = Pow(Integer(5), 0)
	require.NoError(t, err)
	assert.Equal(t, Integer(1), got)

	_, err = Pow(Integer(3), -1)
	require.Error(t, err)
	assert.Equal(t, ErrNonDyadicResult, errors.Cause(err))

	_, err = Pow(Integer(0), -2)
	require.Error(t, err)
	assert.Equal(t, ErrDivideByZero, errors.Cause(err))
}

func TestShiftTransfinite(t *testing.T) {
	form := NewForm(Dyadics, nil)
	_, err := Add(form, Integer(1))
	require.Error(t, err)
	assert.Equal(t, ErrTransfinite, errors.Cause(err))
}
