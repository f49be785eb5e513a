// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// surreal is a small calculator and inspector for surreal number forms.
//
// Operands are plain text: integers ("3"), floats ("-0.75"), dyadic
// fractions ("5/16") and the ω family ("w", "-w", "w+2", "-w-1"). This
// syntax belongs to the tool; the library itself only accepts native
// numerics and its own constructors.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/attic-labs/surreal/go/surreal"
	"github.com/attic-labs/surreal/go/util/verbose"
)

func main() {
	app := kingpin.New("surreal", "Surreal number calculator and inspector.")
	verbose.RegisterVerboseFlags(app)

	cmp := app.Command("cmp", "Order two numbers.")
	cmpA := cmp.Arg("a", "left operand").Required().String()
	cmpB := cmp.Arg("b", "right operand").Required().String()

	add := app.Command("add", "Add two numbers.")
	addA := add.Arg("a", "left operand").Required().String()
	addB := add.Arg("b", "right operand").Required().String()

	sub := app.Command("sub", "Subtract b from a.")
	subA := sub.Arg("a", "left operand").Required().String()
	subB := sub.Arg("b", "right operand").Required().String()

	mul := app.Command("mul", "Multiply two canonical numbers.")
	mulA := mul.Arg("a", "left operand").Required().String()
	mulB := mul.Arg("b", "right operand").Required().String()

	div := app.Command("div", "Divide a by b; the quotient must be dyadic.")
	divA := div.Arg("a", "left operand").Required().String()
	divB := div.Arg("b", "right operand").Required().String()

	neg := app.Command("neg", "Negate a number.")
	negA := neg.Arg("a", "operand").Required().String()

	show := app.Command("show", "Show the {L|R} form and classification of a number.")
	showA := show.Arg("a", "operand").Required().String()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case cmp.FullCommand():
		runCmp(*cmpA, *cmpB)
	case add.FullCommand():
		runBinary(*addA, *addB, "+", surreal.Add)
	case sub.FullCommand():
		runBinary(*subA, *subB, "-", surreal.Sub)
	case mul.FullCommand():
		runBinary(*mulA, *mulB, "*", surreal.Mul)
	case div.FullCommand():
		runBinary(*divA, *divB, "/", surreal.Div)
	case neg.FullCommand():
		runNeg(*negA)
	case show.FullCommand():
		runShow(*showA)
	}
}

func runCmp(sa, sb string) {
	a, b := operand(sa), operand(sb)
	c, err := surreal.Cmp(a, b)
	fail(err)
	op := "=="
	switch c {
	case -1:
		op = "<"
	case 1:
		op = ">"
	}
	fmt.Printf("%s %s %s\n", a.SimpleString(), color.GreenString(op), b.SimpleString())
}

func runBinary(sa, sb, op string, f func(a, b surreal.Num) (surreal.Num, error)) {
	a, b := operand(sa), operand(sb)
	r, err := f(a, b)
	fail(err)
	fmt.Printf("%s %s %s = %s\n", a.SimpleString(), op, b.SimpleString(),
		color.GreenString(r.SimpleString()))
}

func runNeg(sa string) {
	a := operand(sa)
	r, err := surreal.Neg(a)
	fail(err)
	fmt.Printf("-(%s) = %s\n", a.SimpleString(), color.GreenString(r.SimpleString()))
}

func runShow(sa string) {
	a := operand(sa)
	fmt.Printf("%s = %s\n", color.CyanString(a.SimpleString()), a.String())
	fmt.Printf("  kind:            %s\n", a.Kind())
	if b, ok := a.Birthday(); ok {
		fmt.Printf("  birthday:        %s\n", b.SimpleString())
	} else {
		fmt.Printf("  birthday:        unknown\n")
	}
	fmt.Printf("  birthday finite: %s\n", a.BirthdayFinite())
	fmt.Printf("  finite:          %s\n", a.IsFinite())
	fmt.Printf("  infinite:        %s\n", a.IsInfinite())
	fmt.Printf("  infinitesimal:   %s\n", a.IsInfinitesimal())
	fmt.Printf("  real:            %s\n", a.IsReal())
	fmt.Printf("  rational:        %s\n", a.IsRational())
	fmt.Printf("  dyadic:          %s\n", a.IsDyadic())
	fmt.Printf("  integral:        %s\n", a.IsIntegral())
}

// operand parses the tool's operand syntax into a surreal number.
func operand(s string) surreal.Num {
	n, err := parseOperand(s)
	fail(err)
	verbose.Logger().Debugf("parsed %q as %s", s, n.SimpleString())
	return n
}

func parseOperand(s string) (surreal.Num, error) {
	if n, ok, err := parseOmega(s); ok {
		return n, err
	}
	if num, den, ok := splitFraction(s); ok {
		return surreal.FromRat(num, den)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return surreal.FromInt64(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return surreal.FromFloat64(f)
	}
	return nil, errors.Errorf("cannot parse %q as a number", s)
}

// parseOmega handles w, -w, w+2, -w-1 and the spelled-out ω forms.
func parseOmega(s string) (surreal.Num, bool, error) {
	rest, neg := s, false
	if strings.HasPrefix(rest, "-") {
		neg, rest = true, rest[1:]
	}
	switch {
	case strings.HasPrefix(rest, "w"):
		rest = rest[len("w"):]
	case strings.HasPrefix(rest, "ω"):
		rest = rest[len("ω"):]
	default:
		return nil, false, nil
	}
	base := surreal.Omega
	if neg {
		base = surreal.NegOmega
	}
	if rest == "" {
		return base, true, nil
	}
	off, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || off == 0 {
		return nil, true, errors.Errorf("cannot parse %q as an ω-family number", s)
	}
	n, err := surreal.Add(base, surreal.FromInt64(off))
	return n, true, err
}

func splitFraction(s string) (num, den int64, ok bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return num, den, true
}

func fail(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("error:"), err)
	os.Exit(1)
}
