// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package d implements several debug, error and assertion functions used
// throughout the codebase.
package d

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

var (
	// Chk provides the testify assert API, but any failure panics.
	Chk = assert.New(&panicker{})
)

type panicker struct {
}

func (s panicker) Errorf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// Panic creates an error using format and args and wraps it in a
// WrappedError which can be handled using Try() and TryCatch()
func Panic(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	panic(wrappedError{err})
}

// PanicIfTrue panics if the value is true.
func PanicIfTrue(b bool) {
	if b {
		Panic("expected false")
	}
}

// PanicIfFalse panics if the value is false.
func PanicIfFalse(b bool) {
	if !b {
		Panic("expected true")
	}
}

// PanicIfError panics if the error given is not nil.
func PanicIfError(err error) {
	if err != nil {
		panic(wrappedError{err})
	}
}

// Try runs f() and returns any panicked error raised through Panic,
// PanicIfTrue, PanicIfFalse or PanicIfError. Any other panic is not
// recovered.
func Try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			we, ok := r.(wrappedError)
			if !ok {
				panic(r)
			}
			err = we.err
		}
	}()
	f()
	return
}

type wrappedError struct {
	err error
}

func (we wrappedError) Error() string {
	return we.err.Error()
}
