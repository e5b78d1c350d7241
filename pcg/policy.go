// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"math"

	"github.com/Andy-math/optimizer/linneq"
	"gonum.org/v1/gonum/mat"
)

// subspaceDecay walks the one-dimensional ray p(t) = origin + t·direction,
// t ≥ 0, up to the first point at which the ray leaves the trust region or
// violates a linear/bound constraint, using the quadratic model
// g·p + ½p'Hp along the ray to choose where to stop. If the unconstrained minimizer of that
// one-dimensional quadratic lies strictly inside the ray's feasible range,
// the returned step decays to that interior point and the exit flag is
// carried through unchanged from inFlag, since no boundary was actually
// reached. Otherwise the step lands exactly on whichever boundary bound the
// range, and the flag reports which one.
//
// It reports (nil, inFlag) when the walk is degenerate: direction is the
// zero vector, or the ray cannot move forward at all (origin already sits
// on the limiting boundary).
func subspaceDecay(g []float64, h mat.Symmetric, origin, direction []float64, delta float64, constraints linneq.Constraints, inFlag Flag) ([]float64, Flag) {
	if maxAbs(direction) == 0 {
		return nil, inFlag
	}

	tMax, hitRegion := trustRegionStep(origin, direction, delta)
	if tBound, ok := boundStep(origin, direction, constraints.LB, constraints.UB); ok && tBound < tMax {
		tMax, hitRegion = tBound, false
	}
	if constraints.A != nil {
		if tLinear, ok := linearStep(origin, direction, constraints); ok && tLinear < tMax {
			tMax, hitRegion = tLinear, false
		}
	}
	if tMax <= 0 || math.IsInf(tMax, 1) {
		return nil, inFlag
	}

	t, onBoundary := decayWithinRange(g, h, origin, direction, tMax)

	n := len(origin)
	point := make([]float64, n)
	for i := 0; i < n; i++ {
		point[i] = origin[i] + t*direction[i]
	}
	if !onBoundary {
		return point, inFlag
	}
	if hitRegion {
		return point, OutOfTrustRegion
	}
	return point, ViolateConstraints
}

// decayWithinRange picks the step length t along the ray: the minimizer of
// the 1-D quadratic model when the curvature along the ray is positive and
// that minimizer lies strictly between 0 and tMax, and tMax in every other
// case, including a minimizer at or behind t = 0. onBoundary reports
// whether the returned t equals tMax.
func decayWithinRange(g []float64, h mat.Symmetric, origin, direction []float64, tMax float64) (t float64, onBoundary bool) {
	n := len(direction)
	hd := mat.NewVecDense(n, nil)
	hd.MulVec(h, mat.NewVecDense(n, direction))

	var c1, c2 float64
	for i := 0; i < n; i++ {
		c2 += direction[i] * hd.AtVec(i)
		c1 += g[i] * direction[i]
	}
	var hOrigin float64
	for i := 0; i < n; i++ {
		hOrigin += origin[i] * hd.AtVec(i)
	}
	c1 += hOrigin

	if c2 <= 0 {
		return tMax, true
	}
	tStar := -c1 / c2
	if tStar >= tMax {
		return tMax, true
	}
	if tStar <= 0 {
		return tMax, true
	}
	return tStar, false
}

// trustRegionStep returns the smallest positive t for which
// ‖origin + t·direction‖ = delta, the point at which the line first leaves
// the trust region moving outward from origin. If direction never leaves
// the trust region (only possible when direction is the zero vector, ruled
// out by the caller), it returns +Inf.
func trustRegionStep(origin, direction []float64, delta float64) (t float64, hitRegion bool) {
	var a, b, c float64
	for i := range origin {
		a += direction[i] * direction[i]
		b += 2 * origin[i] * direction[i]
		c += origin[i] * origin[i]
	}
	c -= delta * delta
	if a == 0 {
		return math.Inf(1), true
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return math.Inf(1), true
	}
	root := math.Sqrt(disc)
	t = (-b + root) / (2 * a)
	if t <= 0 {
		return math.Inf(1), true
	}
	return t, true
}

// boundStep returns the smallest positive t for which
// lb ≤ origin + t·direction ≤ ub stops holding componentwise.
func boundStep(origin, direction, lb, ub []float64) (float64, bool) {
	t := math.Inf(1)
	found := false
	for i, d := range direction {
		switch {
		case d > 0:
			if !math.IsInf(ub[i], 1) {
				if ti := (ub[i] - origin[i]) / d; ti < t {
					t, found = ti, true
				}
			}
		case d < 0:
			if !math.IsInf(lb[i], -1) {
				if ti := (lb[i] - origin[i]) / d; ti < t {
					t, found = ti, true
				}
			}
		}
	}
	return t, found
}

// linearStep returns the smallest positive t for which A(origin + t·direction) ≤ b
// stops holding for some row of A.
func linearStep(origin, direction []float64, constraints linneq.Constraints) (float64, bool) {
	m, n := constraints.A.Dims()
	t := math.Inf(1)
	found := false
	for i := 0; i < m; i++ {
		var ad, ax float64
		for j := 0; j < n; j++ {
			a := constraints.A.At(i, j)
			ad += a * direction[j]
			ax += a * origin[j]
		}
		if ad <= 0 {
			continue
		}
		if ti := (constraints.B[i] - ax) / ad; ti < t {
			t, found = ti, true
		}
	}
	return t, found
}
