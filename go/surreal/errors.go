// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package surreal

import (
	"github.com/pkg/errors"
)

// The error taxonomy of the engine. Errors returned from this package wrap
// one of these sentinels; match with errors.Cause or errors.Is.
var (
	// ErrUnsupportedType is returned by the conversion layer when given a
	// value it cannot interpret as a surreal number.
	ErrUnsupportedType = errors.New("surreal: unsupported type")

	// ErrNonDyadic is returned when an input rational's reduced denominator
	// is not a power of two. Such numbers have infinite birthday and are
	// out of scope for this engine.
	ErrNonDyadic = errors.New("surreal: non-dyadic rational")

	// ErrNonDyadicResult is returned when an operation on dyadic operands
	// would produce a non-dyadic rational, e.g. 1/3.
	ErrNonDyadicResult = errors.New("surreal: result is not dyadic")

	// ErrTransfinite is returned when an operation would require
	// enumerating a set known to be infinite.
	ErrTransfinite = errors.New("surreal: transfinite operation")

	// ErrMalformed reports a form whose left/right sets violate numeric
	// well-formedness. Constructors do not enforce this; see Wellformed.
	ErrMalformed = errors.New("surreal: malformed construction")

	// ErrUnsupportedOperation is returned for operations outside the
	// supported families, e.g. adding a non-integer to ω.
	ErrUnsupportedOperation = errors.New("surreal: unsupported operation")

	// ErrDivideByZero is returned for division or modulo by zero.
	ErrDivideByZero = errors.New("surreal: division by zero")

	// ErrUnresolved signals "operation not applicable" distinctly from the
	// hard errors above: the comparison or query has no defined answer for
	// the given operands, e.g. ordering S* against an arbitrary form.
	ErrUnresolved = errors.New("surreal: unresolved")
)
