// Copyright ©2024 The Optimizer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimizer

import (
	"fmt"
	"io"

	"github.com/Andy-math/optimizer/pcg"
	"gonum.org/v1/gonum/mat"
)

// IterationRecord is the information Minimize hands to a Recorder once per
// iteration, including the initial iterate (iteration 0, where PCGStatus is
// nil since no subproblem has been solved yet).
type IterationRecord struct {
	Iter           int
	Fval           float64
	GradInfNorm    float64
	PCGStatus      *pcg.Status
	Hessian        mat.Symmetric
	ShakingCounter int
}

// Recorder is a pure side channel: Minimize calls Record once per
// iteration and never inspects the return value beyond surfacing a setup
// failure from Init. A Recorder must not mutate the Hessian it is given;
// Minimize keeps using that same matrix in later iterations until the next
// Hessian refresh.
type Recorder interface {
	Init() error
	Record(IterationRecord) error
}

// NopRecorder discards every record. It is the Recorder installed when a
// caller sets Options.Display to false and supplies no Recorder of their
// own.
type NopRecorder struct{}

func (NopRecorder) Init() error                  { return nil }
func (NopRecorder) Record(IterationRecord) error { return nil }

// TextRecorder writes one line per iteration to W in a fixed column
// format. It is the default Recorder when Options.Display is true (or
// nil) and no Recorder is supplied.
type TextRecorder struct {
	W io.Writer

	wroteHeader bool
}

func (t *TextRecorder) Init() error {
	t.wroteHeader = false
	return nil
}

func (t *TextRecorder) Record(r IterationRecord) error {
	if !t.wroteHeader {
		if _, err := fmt.Fprintf(t.W, "%6s %16s %12s %10s %8s\n", "iter", "fval", "|grad|_inf", "pcg", "shake"); err != nil {
			return err
		}
		t.wroteHeader = true
	}
	flag := "-"
	if r.PCGStatus != nil {
		flag = r.PCGStatus.Flag.String()
	}
	_, err := fmt.Fprintf(t.W, "%6d %16.8g %12.6g %10s %8d\n", r.Iter, r.Fval, r.GradInfNorm, flag, r.ShakingCounter)
	return err
}
