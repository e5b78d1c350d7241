// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optimizer implements a trust-region method for bound- and
// linear-inequality-constrained minimization of smooth scalar objectives.
// At each iterate it builds a local quadratic model from a gradient and a
// Hessian approximation, hands the constrained quadratic subproblem to
// package pcg, and uses the ratio of actual to predicted reduction to grow
// or shrink the trust radius and decide whether to accept the step.
//
// The driver is strictly single-threaded and synchronous: Minimize makes a
// bounded number of calls to the supplied objective and gradient functions
// per iteration and returns once convergence, stall, or an iteration/radius
// limit is reached.
package optimizer
