// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pcg solves the constrained quadratic trust-region subproblem:
// given a local quadratic model (g, H), a preconditioner, shifted linear
// constraints, and a trust radius, find a step that decreases the model
// without leaving the trust region or violating the constraints. It
// combines a preconditioned-conjugate-gradient inner solver with a
// gradient-direction boundary search and picks the best result across two
// preconditioners.
package pcg
