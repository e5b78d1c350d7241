// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdiff

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MakeHessian builds a central-difference Hessian of the objective whose
// gradient is gradFunc, by differencing the gradient itself rather than the
// objective a second time. The raw result is symmetrized by averaging with
// its transpose, since the two finite-difference estimates of H[i][j] and
// H[j][i] agree only up to truncation error.
func MakeHessian(gradFunc func([]float64) []float64, x []float64) *mat.SymDense {
	n := len(x)
	h := math.Cbrt(machineEps)
	full := mat.NewDense(n, n, nil)
	xp := append([]float64(nil), x...)
	xm := append([]float64(nil), x...)
	for j := 0; j < n; j++ {
		step := h * math.Max(1, math.Abs(x[j]))
		xp[j] = x[j] + step
		xm[j] = x[j] - step
		gp := gradFunc(xp)
		gm := gradFunc(xm)
		for i := 0; i < n; i++ {
			full.Set(i, j, (gp[i]-gm[i])/(2*step))
		}
		xp[j] = x[j]
		xm[j] = x[j]
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (full.At(i, j)+full.At(j, i))/2)
		}
	}
	return sym
}
