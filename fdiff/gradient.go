// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdiff

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Gradient bundles a gradient vector with its infinity norm, computed once
// so callers never recompute floats.Norm(value, math.Inf(1)) themselves.
type Gradient struct {
	Value   []float64
	InfNorm float64
}

// CheckPolicy governs the optional finite-difference cross-check of a
// caller-supplied analytic gradient against a central-difference estimate.
//
// Iter controls when the check fires, mirroring check_iter from the
// original options: nil checks on every call, a value of -1 disables the
// check entirely, 0 checks only at the initial iterate, and a positive k
// checks on every call while the running iteration count is <= k.
type CheckPolicy struct {
	RelTol float64
	AbsTol *float64
	Iter   *int
}

func (p CheckPolicy) fires(iter int) bool {
	if p.Iter == nil {
		return true
	}
	switch {
	case *p.Iter == -1:
		return false
	case *p.Iter == 0:
		return iter == 0
	default:
		return iter <= *p.Iter
	}
}

// MakeGradient evaluates gradFunc at x and, when policy.fires(iter) is
// true, cross-checks the result against a central finite difference of
// objective. initInfNorm is the gradient infinity norm captured at
// iteration 0; it anchors the relative tolerance so the check does not
// tighten to numerical noise once the true gradient has nearly vanished.
func MakeGradient(
	gradFunc func([]float64) []float64,
	objective func([]float64) float64,
	x []float64,
	iter int,
	initInfNorm float64,
	policy CheckPolicy,
) (Gradient, error) {
	value := gradFunc(x)
	for i, v := range value {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Gradient{}, fmt.Errorf("fdiff: gradient component %d is %v", i, v)
		}
	}
	g := Gradient{Value: value, InfNorm: floats.Norm(value, math.Inf(1))}

	if !policy.fires(iter) {
		return g, nil
	}
	fd := centralDifferenceGradient(objective, x)
	absTol := 1e-6
	if policy.AbsTol != nil {
		absTol = *policy.AbsTol
	}
	for i := range value {
		scale := math.Max(math.Abs(fd[i]), initInfNorm)
		tol := absTol + policy.RelTol*scale
		if math.Abs(value[i]-fd[i]) > tol {
			return Gradient{}, fmt.Errorf(
				"fdiff: analytic gradient[%d]=%g disagrees with finite difference %g (tol %g)",
				i, value[i], fd[i], tol,
			)
		}
	}
	return g, nil
}

func centralDifferenceGradient(objective func([]float64) float64, x []float64) []float64 {
	n := len(x)
	h := math.Sqrt(machineEps)
	fd := make([]float64, n)
	xp := append([]float64(nil), x...)
	xm := append([]float64(nil), x...)
	for i := 0; i < n; i++ {
		step := h * math.Max(1, math.Abs(x[i]))
		xp[i] = x[i] + step
		xm[i] = x[i] - step
		fd[i] = (objective(xp) - objective(xm)) / (2 * step)
		xp[i] = x[i]
		xm[i] = x[i]
	}
	return fd
}

const machineEps = 2.220446049250313e-16
