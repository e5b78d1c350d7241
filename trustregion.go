// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimizer

import (
	"os"

	"github.com/Andy-math/optimizer/fdiff"
	"github.com/Andy-math/optimizer/linneq"
	"github.com/Andy-math/optimizer/pcg"
	"gonum.org/v1/gonum/mat"
)

// Minimize runs the trust-region method against problem, starting from the
// feasible point x0 and subject to constraints, until one of the four
// terminations in Result.Success's documentation is reached:
// gradient/step convergence, a stall of max_stall_iter accepted iterations
// each improving the objective by less than AbsTolFval, the trust radius
// collapsing below TolStep, or the iteration cap MaxIter being exceeded.
//
// Minimize panics if problem.Objective or problem.Gradient is nil, if x0 is
// not feasible with respect to constraints, or if constraints is internally
// inconsistent (shape mismatch, lb[i] > ub[i], a NaN bound).
func Minimize(problem Problem, x0 []float64, constraints linneq.Constraints, opts Options) Result {
	if problem.Objective == nil || problem.Gradient == nil {
		panic("optimizer: Problem.Objective and Problem.Gradient are required")
	}
	n := len(x0)
	if n == 0 {
		panic("optimizer: zero dimensional input")
	}
	if err := linneq.ConstraintCheck(constraints, x0); err != nil {
		panic("optimizer: " + err.Error())
	}
	opts = opts.withDefaults()

	recorder := opts.Recorder
	if recorder == nil {
		if opts.displayDefault() {
			recorder = &TextRecorder{W: os.Stdout}
		} else {
			recorder = NopRecorder{}
		}
	}
	if err := recorder.Init(); err != nil {
		panic("optimizer: recorder init: " + err.Error())
	}

	hessianShaking := opts.Shaking.resolve(n)
	timesAfterHessianShaking := 0
	hessianIsUpToDate := false

	checkPolicy := fdiff.CheckPolicy{RelTol: opts.CheckRel, AbsTol: opts.CheckAbs, Iter: opts.CheckIter}

	x := append([]float64(nil), x0...)
	var h *mat.SymDense

	makeHess := func() {
		h = fdiff.MakeHessian(problem.Gradient, x)
		hessianIsUpToDate = true
		timesAfterHessianShaking = 0
	}

	// refreshStaleHessian recomputes H without resetting
	// timesAfterHessianShaking, for the one call site (the no-step branch
	// below) that must keep pressure to refresh again soon rather than
	// grant the freshly rebuilt Hessian a full new shaking interval.
	refreshStaleHessian := func() {
		h = fdiff.MakeHessian(problem.Gradient, x)
		hessianIsUpToDate = true
	}

	var initGradInfNorm float64
	getInfo := func(atIter int) (fdiff.Gradient, linneq.Constraints) {
		g, err := fdiff.MakeGradient(problem.Gradient, problem.Objective, x, atIter, initGradInfNorm, checkPolicy)
		if err != nil {
			panic("optimizer: " + err.Error())
		}
		return g, linneq.Shift(constraints, x)
	}

	iter := 0
	delta := opts.InitDelta

	fval := problem.Objective(x)
	grad, shifted := getInfo(iter)
	makeHess()
	initGradInfNorm = grad.InfNorm

	record(recorder, IterationRecord{Iter: iter, Fval: fval, GradInfNorm: grad.InfNorm, Hessian: h, ShakingCounter: timesAfterHessianShaking})

	oldFval, stallIter := fval, 0

	for {
		// Failure terminations are checked first: the PCG-failure path
		// below uses "continue", which would otherwise skip them.
		if delta < opts.TolStep {
			return Result{X: x, Iter: iter, Delta: delta, Grad: grad, Success: false}
		}
		if iter > opts.MaxIter {
			return Result{X: x, Iter: iter, Delta: delta, Grad: grad, Success: false}
		}

		if timesAfterHessianShaking >= hessianShaking && !hessianIsUpToDate {
			makeHess()
		}

		status := pcg.Solve(grad.Value, h, shifted, delta)
		iter++
		timesAfterHessianShaking++

		if !status.HasStep() {
			if hessianIsUpToDate {
				delta /= 4
			} else {
				refreshStaleHessian()
			}
			record(recorder, IterationRecord{Iter: iter, Fval: fval, GradInfNorm: grad.InfNorm, PCGStatus: &status, Hessian: h, ShakingCounter: timesAfterHessianShaking})
			continue
		}

		newX := make([]float64, n)
		for i := range newX {
			newX[i] = x[i] + status.X[i]
		}
		newFval := problem.Objective(newX)

		reduce := newFval - fval
		ratio := computeRatio(reduce, *status.Fval)

		if ratio >= 0.75 && *status.Size >= 0.9*delta {
			delta *= 2
		} else if ratio <= 0.25 {
			if hessianIsUpToDate {
				delta = *status.Size / 4
			} else {
				makeHess()
			}
		}

		if newFval < fval {
			x = newX
			fval = newFval
			hessianIsUpToDate = false
			grad, shifted = getInfo(iter)
			if opts.AbsTolFval != nil && oldFval-fval < *opts.AbsTolFval {
				stallIter++
			} else {
				oldFval, stallIter = fval, 0
			}
		}

		record(recorder, IterationRecord{Iter: iter, Fval: fval, GradInfNorm: grad.InfNorm, PCGStatus: &status, Hessian: h, ShakingCounter: timesAfterHessianShaking})

		if status.Flag == pcg.ResidualConvergence {
			if hessianIsUpToDate {
				if grad.InfNorm < opts.TolGrad || *status.Size < opts.TolStep {
					return Result{X: x, Iter: iter, Delta: delta, Grad: grad, Success: true}
				}
			} else {
				makeHess()
			}
		}

		if opts.MaxStallIter != nil && stallIter >= *opts.MaxStallIter {
			if hessianIsUpToDate {
				return Result{X: x, Iter: iter, Delta: delta, Grad: grad, Success: true}
			}
			makeHess()
		}
	}
}

// computeRatio classifies a step's actual-over-predicted reduction.
// Treating any actual reduction that meets or beats the (negative)
// predicted reduction as a perfect ratio of 1 is unusual — ratios above 1
// are ordinarily allowed — but this is preserved exactly as specified.
func computeRatio(reduce, predictedFval float64) float64 {
	switch {
	case reduce >= 0:
		return 0
	case reduce <= predictedFval:
		return 1
	default:
		return reduce / predictedFval
	}
}

func record(r Recorder, rec IterationRecord) {
	// Record is a pure side channel: a failure to log must not abort an
	// otherwise-converging optimization.
	_ = r.Record(rec)
}
