// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dd

import (
	"github.com/cpmech/gosl/io"
	"github.com/tianyikillua/data-driven-truss/mdl/dataset"
)

// InvalidDataError is returned when material data cannot be loaded
type InvalidDataError = dataset.InvalidDataError

// DegenerateDataError is returned when the numerical stiffness cannot be determined
type DegenerateDataError = dataset.DegenerateDataError

// NotConvergedError is returned when the local states do not stabilise within the
// maximum number of iterations. Trace holds the objective of every performed iteration
type NotConvergedError struct {
	NmaxIt int       // maximum number of iterations
	Trace  []float64 // [NmaxIt+1] objective values
}

func (e *NotConvergedError) Error() string {
	last := 0.0
	if len(e.Trace) > 0 {
		last = e.Trace[len(e.Trace)-1]
	}
	return io.Sf("data-driven solver did not converge after %d iterations; last objective = %g", len(e.Trace), last)
}
