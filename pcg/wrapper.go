// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"github.com/Andy-math/optimizer/linneq"
	"github.com/Andy-math/optimizer/precondition"
	"gonum.org/v1/gonum/mat"
)

// Solve assembles up to three candidate steps for the quadratic model g, H
// inside the trust region of radius delta and the given shifted
// constraints, and returns the best one. It runs the whole process twice,
// once with a Hessian-based preconditioner and once with a gradient-based
// one, since each regularizes a different kind of ill-conditioning, and
// keeps whichever of the two runs produced the lower model value.
func Solve(g []float64, h mat.Symmetric, constraints linneq.Constraints, delta float64) Status {
	ret1 := bestPolicy(g, h, precondition.Hessian(h), constraints, delta)
	ret2 := bestPolicy(g, h, precondition.Gradient(g), constraints, delta)

	switch {
	case !ret1.HasStep() && !ret2.HasStep():
		return ret1
	case !ret1.HasStep():
		return ret2
	case !ret2.HasStep():
		return ret1
	}
	if *ret1.Fval < *ret2.Fval || (*ret1.Fval == *ret2.Fval && *ret1.Size <= *ret2.Size) {
		return ret1
	}
	return ret2
}

// bestPolicy runs the inner PCG solver once with preconditioner r, follows
// up with the gradient-direction boundary probe and, when the inner solver
// exited early, the boundary follow-up along its exit direction, and
// returns whichever of the up-to-three candidates has the lowest quadratic
// model value (ties broken by smaller step norm).
func bestPolicy(g []float64, h mat.Symmetric, r []float64, constraints linneq.Constraints, delta float64) Status {
	negGradOverR := make([]float64, len(g))
	for i := range g {
		negGradOverR[i] = -g[i] / r[i]
	}
	p0, exit0 := subspaceDecay(g, h, zeros(len(g)), negGradOverR, delta, constraints, PolicyOnly)

	p1, direct, iter, exit1 := Inner(g, h, r, constraints, delta)
	fval1 := quadModel(g, h, p1)

	if exit1 != ResidualConvergence {
		if p2, exit2 := subspaceDecay(g, h, p1, direct, delta, constraints, exit1); p2 != nil {
			fval2 := quadModel(g, h, p2)
			if fval2 < fval1 || (fval2 == fval1 && norm2(p2) < norm2(p1)) {
				p1, fval1, exit1 = p2, fval2, exit2
			}
		}
	}

	if p0 != nil {
		fval0 := quadModel(g, h, p0)
		if fval0 < fval1 || (fval0 == fval1 && norm2(p0) < norm2(p1)) {
			return newStatus(p0, fval0, 0, exit0)
		}
	}

	if maxAbs(p1) == 0 {
		return noStepStatus(iter, exit1)
	}
	return newStatus(p1, fval1, iter, exit1)
}

// quadModel evaluates g·p + ½p'Hp, the local quadratic approximation of the
// objective's change along step p.
func quadModel(g []float64, h mat.Symmetric, p []float64) float64 {
	n := len(p)
	hp := mat.NewVecDense(n, nil)
	hp.MulVec(h, mat.NewVecDense(n, p))
	var gp, php float64
	for i := 0; i < n; i++ {
		gp += g[i] * p[i]
		php += p[i] * hp.AtVec(i)
	}
	return gp + 0.5*php
}

func zeros(n int) []float64 {
	return make([]float64, n)
}
