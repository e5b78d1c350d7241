// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"testing"

	"github.com/Andy-math/optimizer/linneq"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// randPDSymmetric builds a random symmetric positive-definite matrix as
// LLᵀ + εI, the same construction gonum's own iterative-solver tests use to
// avoid degenerate test Hessians (see linsolve's randomized test matrices).
func randPDSymmetric(rnd *rand.Rand, n int) *mat.SymDense {
	l := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			l.Set(i, j, rnd.NormFloat64())
		}
	}
	var prod mat.Dense
	prod.Mul(l, l.T())
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := prod.At(i, j)
			if i == j {
				v += 1
			}
			sym.SetSym(i, j, v)
		}
	}
	return sym
}

func TestInnerPropertiesHoldOnRandomProblems(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	const n = 4
	for trial := 0; trial < 200; trial++ {
		h := randPDSymmetric(rnd, n)
		g := make([]float64, n)
		for i := range g {
			g[i] = rnd.NormFloat64() * 5
		}
		delta := 0.1 + rnd.Float64()*5
		c := unbounded(n)
		for i := 0; i < n; i++ {
			if rnd.Float64() < 0.5 {
				c.UB[i] = rnd.Float64() * 3
			}
			if rnd.Float64() < 0.5 {
				c.LB[i] = -rnd.Float64() * 3
			}
		}

		p, _, _, _ := Inner(g, h, onesR(n), c, delta)

		if got := norm2(p); got > delta*(1+1e-9) {
			t.Fatalf("trial %d: ‖p‖ = %v exceeds delta %v", trial, got, delta)
		}
		if !linneq.Check(p, c) {
			t.Fatalf("trial %d: p = %v violates constraints %+v", trial, p, c)
		}
	}
}

func TestSolvePropertiesHoldOnRandomProblems(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	const n = 3
	for trial := 0; trial < 200; trial++ {
		h := randPDSymmetric(rnd, n)
		g := make([]float64, n)
		for i := range g {
			g[i] = rnd.NormFloat64() * 5
		}
		delta := 0.1 + rnd.Float64()*5
		c := unbounded(n)

		status := Solve(g, h, c, delta)
		if !status.HasStep() {
			continue
		}
		if got := norm2(status.X); got > delta*(1+1e-9) {
			t.Fatalf("trial %d: ‖p‖ = %v exceeds delta %v", trial, got, delta)
		}
		fval := quadModel(g, h, status.X)
		if fval > 1e-9 {
			t.Fatalf("trial %d: accepted step has non-decreasing model value %v", trial, fval)
		}
	}
}
