// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdiff

import (
	"math"
	"testing"
)

func TestMakeHessianMatchesKnownQuadratic(t *testing.T) {
	// f(x) = ½x₁² + x₂² + x₁x₂ has grad (x₁+x₂, 2x₂+x₁) and constant
	// Hessian [[1,1],[1,2]].
	grad := func(x []float64) []float64 {
		return []float64{x[0] + x[1], 2*x[1] + x[0]}
	}
	h := MakeHessian(grad, []float64{0.3, -1.2})
	want := [2][2]float64{{1, 1}, {1, 2}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := h.At(i, j); math.Abs(got-want[i][j]) > 1e-4 {
				t.Errorf("H[%d][%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestMakeHessianIsSymmetric(t *testing.T) {
	grad := func(x []float64) []float64 {
		return []float64{
			3*x[0]*x[0] + 2*x[1],
			2*x[0] + 6*x[1],
		}
	}
	h := MakeHessian(grad, []float64{1.5, -0.5})
	if h.At(0, 1) != h.At(1, 0) {
		t.Errorf("H[0][1] = %v, H[1][0] = %v, want equal", h.At(0, 1), h.At(1, 0))
	}
}
