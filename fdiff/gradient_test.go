// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdiff

import (
	"math"
	"testing"
)

func quadObjective(x []float64) float64 {
	return 0.5*x[0]*x[0] + x[1]*x[1]
}

func quadGradCorrect(x []float64) []float64 {
	return []float64{x[0], 2 * x[1]}
}

func quadGradWrong(x []float64) []float64 {
	return []float64{x[0] + 1, 2 * x[1]}
}

func TestMakeGradientAcceptsMatchingAnalyticGradient(t *testing.T) {
	x := []float64{1, 2}
	g, err := MakeGradient(quadGradCorrect, quadObjective, x, 0, 0, CheckPolicy{RelTol: 1e-2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Abs(2 * 2)
	if g.InfNorm != want {
		t.Errorf("InfNorm = %v, want %v", g.InfNorm, want)
	}
}

func TestMakeGradientRejectsMismatchedAnalyticGradient(t *testing.T) {
	x := []float64{1, 2}
	_, err := MakeGradient(quadGradWrong, quadObjective, x, 0, 0, CheckPolicy{RelTol: 1e-2})
	if err == nil {
		t.Fatal("expected an error for a mismatched analytic gradient")
	}
}

func TestCheckPolicyFires(t *testing.T) {
	never := -1
	once := 0
	twice := 2
	cases := []struct {
		policy CheckPolicy
		iter   int
		want   bool
	}{
		{CheckPolicy{}, 5, true},
		{CheckPolicy{Iter: &never}, 0, false},
		{CheckPolicy{Iter: &never}, 5, false},
		{CheckPolicy{Iter: &once}, 0, true},
		{CheckPolicy{Iter: &once}, 1, false},
		{CheckPolicy{Iter: &twice}, 2, true},
		{CheckPolicy{Iter: &twice}, 3, false},
	}
	for _, c := range cases {
		if got := c.policy.fires(c.iter); got != c.want {
			t.Errorf("fires(%d) = %v, want %v", c.iter, got, c.want)
		}
	}
}
