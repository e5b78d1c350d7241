// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimizer

// Shaking controls how many accepted iterations pass between forced
// Hessian refreshes. The zero value means Auto: refresh every n accepted
// iterations, where n is the problem dimension. Use FixedShaking to pick an
// explicit count instead.
type Shaking struct {
	fixed *int
}

// AutoShaking returns the default shaking policy: refresh every n accepted
// iterations, where n is resolved to the problem dimension at the start of
// Minimize. It is equivalent to the zero value of Shaking.
func AutoShaking() Shaking { return Shaking{} }

// FixedShaking returns a shaking policy that refreshes the Hessian every n
// accepted iterations regardless of problem dimension.
func FixedShaking(n int) Shaking { return Shaking{fixed: &n} }

func (s Shaking) resolve(dim int) int {
	if s.fixed == nil {
		return dim
	}
	return *s.fixed
}

// Options configures a call to Minimize. The zero value is usable except
// for MaxIter, which callers must set: with MaxIter == 0 the loop returns
// failure on its first iteration, same as gonum's Settings.MajorIterations
// field ("If it equals zero, this setting has no effect" does not apply
// here because, unlike gonum's Method framework, this driver has exactly
// one iteration limit and no other way to stop a runaway problem).
type Options struct {
	// MaxIter is the hard iteration cap. Required.
	MaxIter int

	// InitDelta is the initial trust-region radius. Defaults to 1.0 when
	// zero.
	InitDelta float64

	// TolStep is the convergence/termination threshold on step norm and
	// on the trust radius itself. Defaults to 1e-10 when zero.
	TolStep float64

	// TolGrad is the convergence threshold on the gradient infinity
	// norm. Defaults to 1e-6 when zero.
	TolGrad float64

	// AbsTolFval, when non-nil, makes a per-iteration objective decrease
	// smaller than *AbsTolFval count as a stall.
	AbsTolFval *float64

	// MaxStallIter, when non-nil, is the number of consecutive stalls
	// that trigger a successful termination.
	MaxStallIter *int

	// Shaking controls the accepted-iteration count between Hessian
	// refreshes. The zero value is AutoShaking.
	Shaking Shaking

	// BorderAbsTol is opaque to the trust-region loop itself. Defaults to
	// 1e-10 when zero. Minimize does not pass it on: neither
	// fdiff.MakeGradient nor fdiff.MakeHessian takes such a parameter.
	BorderAbsTol float64

	// CheckRel, CheckAbs, and CheckIter configure the optional
	// finite-difference cross-check of the caller-supplied analytic
	// gradient. CheckRel defaults to 1e-2 when zero. See
	// fdiff.CheckPolicy for the meaning of CheckIter.
	CheckRel  float64
	CheckAbs  *float64
	CheckIter *int

	// Display toggles installing a default stdout Recorder when Recorder
	// is nil. Defaults to true when nil.
	Display *bool

	// Recorder receives one IterationRecord per iteration, including
	// iteration 0. A nil Recorder falls back to a TextRecorder on stdout
	// when Display is true (or nil), and to NopRecorder otherwise.
	Recorder Recorder
}

func (o Options) withDefaults() Options {
	if o.InitDelta == 0 {
		o.InitDelta = 1.0
	}
	if o.TolStep == 0 {
		o.TolStep = 1e-10
	}
	if o.TolGrad == 0 {
		o.TolGrad = 1e-6
	}
	if o.BorderAbsTol == 0 {
		o.BorderAbsTol = 1e-10
	}
	if o.CheckRel == 0 {
		o.CheckRel = 1e-2
	}
	return o
}

func (o Options) displayDefault() bool {
	return o.Display == nil || *o.Display
}
