// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linneq represents the linear-inequality and bound constraint
// bundle consumed by the trust-region core: A x ≤ b together with
// elementwise bounds lb ≤ x ≤ ub. It provides the feasibility predicate and
// precondition asserter used to keep every trust-region iterate feasible.
package linneq
