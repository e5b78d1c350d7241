// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optimizetest collects the objective functions exercised by the
// package tests across this module, the same way gonum's optimize package
// tests lean on a shared functions package instead of redefining
// Rosenbrock in every test file.
package optimizetest

// Quadratic is f(x) = ½xᵀAx - bᵀx for a diagonal A = diag(Diag).
type Quadratic struct {
	Diag []float64
	B    []float64
}

func (q Quadratic) Func(x []float64) float64 {
	var f float64
	for i, d := range q.Diag {
		f += 0.5*d*x[i]*x[i] - q.B[i]*x[i]
	}
	return f
}

func (q Quadratic) Grad(x []float64) []float64 {
	g := make([]float64, len(x))
	for i, d := range q.Diag {
		g[i] = d*x[i] - q.B[i]
	}
	return g
}

// Rosenbrock is the classical two-dimensional banana function
// (1-x₁)² + 100(x₂-x₁²)².
type Rosenbrock struct{}

func (Rosenbrock) Func(x []float64) float64 {
	a := 1 - x[0]
	b := x[1] - x[0]*x[0]
	return a*a + 100*b*b
}

func (Rosenbrock) Grad(x []float64) []float64 {
	b := x[1] - x[0]*x[0]
	return []float64{
		-2*(1-x[0]) - 400*x[0]*b,
		200 * b,
	}
}

// BoundActive is f(x) = (x₁-2)² + (x₂-2)², whose unconstrained minimum at
// (2,2) lies outside bounds 0 ≤ x ≤ 1, making the bound-active minimum
// (1,1).
type BoundActive struct{}

func (BoundActive) Func(x []float64) float64 {
	a, b := x[0]-2, x[1]-2
	return a*a + b*b
}

func (BoundActive) Grad(x []float64) []float64 {
	return []float64{2 * (x[0] - 2), 2 * (x[1] - 2)}
}
