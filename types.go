// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimizer

import "github.com/Andy-math/optimizer/fdiff"

// Problem describes the optimization problem to be solved. Both fields are
// required; Minimize panics if either is nil.
type Problem struct {
	// Objective evaluates the objective function at x. It must not
	// modify x.
	Objective func(x []float64) float64

	// Gradient evaluates the gradient of Objective at x and returns a
	// newly allocated slice. It must not modify x.
	Gradient func(x []float64) []float64
}

// Result is the answer of a Minimize run.
type Result struct {
	// X is the best feasible iterate found.
	X []float64
	// Iter is the number of PCG subproblems solved.
	Iter int
	// Delta is the trust-region radius at termination.
	Delta float64
	// Grad is the gradient bundle at X.
	Grad fdiff.Gradient
	// Success reports whether termination was due to convergence or a
	// stall, as opposed to running out of iterations or trust radius.
	Success bool
}
