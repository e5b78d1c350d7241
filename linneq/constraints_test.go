// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linneq

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func boundsOnly(n int, lb, ub float64) Constraints {
	l := make([]float64, n)
	u := make([]float64, n)
	for i := range l {
		l[i] = lb
		u[i] = ub
	}
	return Constraints{LB: l, UB: u}
}

func TestCheckBoundsOnly(t *testing.T) {
	c := boundsOnly(2, 0, 1)
	cases := []struct {
		p    []float64
		want bool
	}{
		{[]float64{0.5, 0.5}, true},
		{[]float64{0, 1}, true},
		{[]float64{-0.1, 0.5}, false},
		{[]float64{0.5, 1.1}, false},
	}
	for _, c2 := range cases {
		if got := Check(c2.p, c); got != c2.want {
			t.Errorf("Check(%v) = %v, want %v", c2.p, got, c2.want)
		}
	}
}

func TestCheckLinear(t *testing.T) {
	// x1 + x2 <= 1, no bounds.
	a := mat.NewDense(1, 2, []float64{1, 1})
	c := Constraints{
		A:  a,
		B:  []float64{1},
		LB: []float64{math.Inf(-1), math.Inf(-1)},
		UB: []float64{math.Inf(1), math.Inf(1)},
	}
	if !Check([]float64{0.5, 0.5}, c) {
		t.Error("expected (0.5,0.5) feasible")
	}
	if Check([]float64{0.6, 0.6}, c) {
		t.Error("expected (0.6,0.6) infeasible")
	}
}

func TestConstraintCheckDetectsBadBounds(t *testing.T) {
	c := Constraints{LB: []float64{1, 0}, UB: []float64{0, 1}}
	if err := ConstraintCheck(c); err == nil {
		t.Error("expected error for lb > ub")
	}
}

func TestConstraintCheckInfeasiblePoint(t *testing.T) {
	c := boundsOnly(2, 0, 1)
	if err := ConstraintCheck(c, []float64{2, 0}); err == nil {
		t.Error("expected error for infeasible point")
	}
	if err := ConstraintCheck(c, []float64{0.5, 0.5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShift(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 1})
	c := Constraints{
		A:  a,
		B:  []float64{1},
		LB: []float64{0, 0},
		UB: []float64{1, 1},
	}
	x := []float64{0.2, 0.3}
	s := Shift(c, x)
	if !Check([]float64{0, 0}, s) {
		t.Error("step of zero from a feasible point must remain feasible in the shifted bundle")
	}
	if got, want := s.LB[0], -0.2; math.Abs(got-want) > 1e-12 {
		t.Errorf("shifted lb[0] = %v, want %v", got, want)
	}
	if got, want := s.B[0], 1-0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("shifted b[0] = %v, want %v", got, want)
	}
}
