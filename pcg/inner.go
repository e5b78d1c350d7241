// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"math"

	"github.com/Andy-math/optimizer/linneq"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// sqrtEps is the early-exit residual threshold: the square root of
// float64 machine epsilon, matching the original solver's
// numpy.sqrt(numpy.finfo(numpy.float64).eps).
var sqrtEps = math.Sqrt(2.220446049250313e-16)

// Inner runs the preconditioned-conjugate-gradient iteration on the local
// quadratic model g, H with diagonal preconditioner r inside the shifted
// constraints, up to the trust radius delta. It returns the best interior
// step p found (starting at, and never worse than, the origin), the search
// direction active at exit (nil on residual convergence, since there is
// nothing left to extend), the iteration at which it stopped, and the exit
// Flag.
//
// Inner never returns a step with norm greater than delta, and never
// returns an infeasible step: every early exit reports the last accepted
// point together with the direction that would have gone out of bounds,
// so the caller can follow that direction to the boundary itself.
func Inner(g []float64, h mat.Symmetric, r []float64, constraints linneq.Constraints, delta float64) (p, direct []float64, iter int, flag Flag) {
	n := len(g)
	p = make([]float64, n)
	resid := make([]float64, n)
	copy(resid, g)
	floats.Scale(-1, resid)

	z := make([]float64, n)
	divElem(z, resid, r)
	direct = append([]float64(nil), z...)

	inner1 := floats.Dot(resid, z)

	ww := make([]float64, n)
	pnew := make([]float64, n)
	hVec := mat.NewVecDense(n, nil)

	for iter = 0; iter < n; iter++ {
		if maxAbs(z) < sqrtEps {
			return p, nil, iter, ResidualConvergence
		}

		dirVec := mat.NewVecDense(n, append([]float64(nil), direct...))
		hVec.MulVec(h, dirVec)
		for i := 0; i < n; i++ {
			ww[i] = hVec.AtVec(i)
		}
		denom := floats.Dot(direct, ww)
		if denom <= 0 {
			return p, direct, iter, NegativeCurvature
		}

		alpha := inner1 / denom
		floats.AddScaledTo(pnew, p, alpha, direct)

		if norm2(pnew) > delta {
			return p, direct, iter, OutOfTrustRegion
		}
		if !linneq.Check(pnew, constraints) {
			return p, direct, iter, ViolateConstraints
		}

		copy(p, pnew)
		floats.AddScaled(resid, -alpha, ww)
		divElem(z, resid, r)

		inner2 := inner1
		inner1 = floats.Dot(resid, z)
		beta := inner1 / inner2
		for i := 0; i < n; i++ {
			direct[i] = z[i] + beta*direct[i]
		}
	}
	return p, nil, n, ResidualConvergence
}

func divElem(dst, num, den []float64) {
	for i := range num {
		dst[i] = num[i] / den[i]
	}
}

func maxAbs(x []float64) float64 {
	var m float64
	for _, v := range x {
		a := math.Abs(v)
		if a > m {
			m = a
		}
	}
	return m
}
