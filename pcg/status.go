// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import "math"

// Status is the value returned by Solve: an optional step, its quadratic
// model value, the iteration count at which the solver stopped, the exit
// Flag, and the step's cached Euclidean norm (present iff X is).
type Status struct {
	X    []float64
	Fval *float64
	Iter int
	Flag Flag
	Size *float64
}

// HasStep reports whether the solver produced a usable step. When it
// returns false the caller must shrink the trust region or refresh the
// Hessian rather than take a step.
func (s Status) HasStep() bool {
	return s.X != nil
}

func newStatus(x []float64, fval float64, iter int, flag Flag) Status {
	size := norm2(x)
	return Status{X: x, Fval: &fval, Iter: iter, Flag: flag, Size: &size}
}

func noStepStatus(iter int, flag Flag) Status {
	return Status{Iter: iter, Flag: flag}
}

func norm2(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum)
}
