// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package precondition supplies the two diagonal preconditioners the PCG
// wrapper runs side by side: one regularizing an ill-conditioned Hessian,
// one regularizing an ill-scaled gradient. Both return a strictly positive,
// finite vector of the same length as their input, which is the only
// contract the trust-region core requires of them.
package precondition

import "gonum.org/v1/gonum/mat"

// floor keeps a preconditioner entry from vanishing (or the reciprocal step
// in PCG from blowing up) when the corresponding Hessian diagonal or
// gradient component is exactly zero.
const floor = 1e-8

// Hessian returns the Jacobi preconditioner of H: the absolute value of
// each diagonal entry, floored away from zero.
func Hessian(h mat.Symmetric) []float64 {
	n := h.Symmetric()
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		d := h.At(i, i)
		if d < 0 {
			d = -d
		}
		if d < floor {
			d = floor
		}
		r[i] = d
	}
	return r
}

// Gradient returns a diagonal preconditioner scaled by the magnitude of the
// gradient itself, floored away from zero.
func Gradient(g []float64) []float64 {
	r := make([]float64, len(g))
	for i, v := range g {
		if v < 0 {
			v = -v
		}
		if v < floor {
			v = floor
		}
		r[i] = v
	}
	return r
}
