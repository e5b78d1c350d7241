// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fdiff supplies the numerical-differentiation collaborators the
// trust-region driver treats as an external black box: a gradient bundle
// (value plus infinity norm) with an optional finite-difference sanity
// check against the caller's analytic gradient, and a central-difference
// Hessian built from gradient evaluations alone.
package fdiff
