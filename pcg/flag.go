// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

// Flag classifies why the PCG subproblem solver stopped.
type Flag int

const (
	// ResidualConvergence reports that the preconditioned residual fell
	// below tolerance: the inner solver found an interior minimizer of
	// the quadratic model.
	ResidualConvergence Flag = iota
	// NegativeCurvature reports that a search direction with
	// non-positive curvature was encountered.
	NegativeCurvature
	// OutOfTrustRegion reports that the next trial point would have
	// exceeded the trust radius.
	OutOfTrustRegion
	// ViolateConstraints reports that the next trial point would have
	// violated the shifted linear or bound constraints.
	ViolateConstraints
	// PolicyOnly marks a step produced by the pure-gradient boundary
	// probe rather than by the conjugate-gradient iteration itself.
	PolicyOnly
)

func (f Flag) String() string {
	switch f {
	case ResidualConvergence:
		return "ResidualConvergence"
	case NegativeCurvature:
		return "NegativeCurvature"
	case OutOfTrustRegion:
		return "OutOfTrustRegion"
	case ViolateConstraints:
		return "ViolateConstraints"
	case PolicyOnly:
		return "PolicyOnly"
	default:
		return "Flag(unknown)"
	}
}
