// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package precondition

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestHessianIsPositiveAndFinite(t *testing.T) {
	h := mat.NewSymDense(3, []float64{
		-2, 0, 0,
		0, 0, 0,
		0, 0, 5,
	})
	r := Hessian(h)
	for i, v := range r {
		if v <= 0 {
			t.Errorf("Hessian(H)[%d] = %v, want > 0", i, v)
		}
	}
	if r[0] != 2 {
		t.Errorf("Hessian(H)[0] = %v, want 2 (abs of -2)", r[0])
	}
	if r[1] != floor {
		t.Errorf("Hessian(H)[1] = %v, want floor %v for a zero diagonal entry", r[1], floor)
	}
}

func TestGradientIsPositiveAndFinite(t *testing.T) {
	g := []float64{-3, 0, 7}
	r := Gradient(g)
	want := []float64{3, floor, 7}
	for i := range want {
		if r[i] != want[i] {
			t.Errorf("Gradient(g)[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}
