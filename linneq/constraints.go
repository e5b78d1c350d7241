// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linneq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// feasibilityTol absorbs floating point rounding at constraint boundaries.
// Without it a point lying exactly on a bound, reached after a chain of
// additions and subtractions, can be spuriously rejected.
const feasibilityTol = 1e-10

// Constraints bundles the linear-inequality matrix A x ≤ b together with
// elementwise bounds lb ≤ x ≤ ub. A may be nil when there are no linear
// inequalities, in which case B is ignored. Bound entries may be
// math.Inf(-1) / math.Inf(1) to signal "no bound".
type Constraints struct {
	A  mat.Matrix
	B  []float64
	LB []float64
	UB []float64
}

// Dims returns the dimension n of the variable space and the number m of
// linear inequality rows (0 if A is nil).
func (c Constraints) Dims() (n, m int) {
	n = len(c.LB)
	if c.A != nil {
		m, _ = c.A.Dims()
	}
	return n, m
}

// Check reports whether p satisfies A p ≤ b and lb ≤ p ≤ ub, up to
// feasibilityTol.
func Check(p []float64, c Constraints) bool {
	for i, v := range p {
		if v < c.LB[i]-feasibilityTol || v > c.UB[i]+feasibilityTol {
			return false
		}
	}
	if c.A == nil {
		return true
	}
	m, n := c.A.Dims()
	for i := 0; i < m; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += c.A.At(i, j) * p[j]
		}
		if sum > c.B[i]+feasibilityTol {
			return false
		}
	}
	return true
}

// ConstraintCheck asserts that the bundle is internally consistent (shapes
// agree, no lb[i] > ub[i], no NaN bound), and, for every point in theta,
// that it is feasible. It returns an error rather than panicking so callers
// that want a catchable precondition check (as opposed to Minimize's
// top-level panic-on-precondition-failure behavior) can use it directly.
func ConstraintCheck(c Constraints, theta ...[]float64) error {
	n := len(c.LB)
	if len(c.UB) != n {
		return fmt.Errorf("linneq: lb has length %d but ub has length %d", n, len(c.UB))
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(c.LB[i]) || math.IsNaN(c.UB[i]) {
			return fmt.Errorf("linneq: bound %d is NaN", i)
		}
		if c.LB[i] > c.UB[i] {
			return fmt.Errorf("linneq: lower bound exceeds upper bound at index %d", i)
		}
	}
	if c.A != nil {
		m, cols := c.A.Dims()
		if cols != n {
			return fmt.Errorf("linneq: constraint matrix has %d columns, want %d", cols, n)
		}
		if len(c.B) != m {
			return fmt.Errorf("linneq: constraint matrix has %d rows but b has length %d", m, len(c.B))
		}
		for i := 0; i < m; i++ {
			if math.IsNaN(c.B[i]) {
				return fmt.Errorf("linneq: b[%d] is NaN", i)
			}
		}
	}
	for _, x := range theta {
		if len(x) != n {
			return fmt.Errorf("linneq: point has length %d, want %d", len(x), n)
		}
		if !Check(x, c) {
			return fmt.Errorf("linneq: point %v is infeasible", x)
		}
	}
	return nil
}

// Shift re-expresses the bundle around x: a step p from x is feasible in
// the shifted bundle iff x+p is feasible in c.
func Shift(c Constraints, x []float64) Constraints {
	n := len(x)
	lb := make([]float64, n)
	ub := make([]float64, n)
	for i := range x {
		lb[i] = c.LB[i] - x[i]
		ub[i] = c.UB[i] - x[i]
	}
	shifted := Constraints{A: c.A, LB: lb, UB: ub}
	if c.A == nil {
		return shifted
	}
	m, _ := c.A.Dims()
	ax := mat.NewVecDense(m, nil)
	ax.MulVec(c.A, mat.NewVecDense(n, x))
	b := make([]float64, m)
	for i := 0; i < m; i++ {
		b[i] = c.B[i] - ax.AtVec(i)
	}
	shifted.B = b
	return shifted
}
