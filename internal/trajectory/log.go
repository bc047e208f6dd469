// Package trajectory accumulates the per-step (measurements, motion) pairs a
// SLAM solver consumes. Each step holds the result of a Sense call and the
// delta passed to the accepted Move that followed it, in that order.
package trajectory

import "github.com/robolab/slambot/internal/robot"

// Step is one time step of a run: the measurements taken before moving and
// the motion delta that was then committed.
type Step struct {
	Measurements []robot.Measurement
	DX, DY       float64
}

// Log is an append-only record of steps.
type Log struct {
	steps []Step
}

func New() *Log {
	return &Log{}
}

// Append records one sense-then-move step.
func (l *Log) Append(measurements []robot.Measurement, dx, dy float64) {
	l.steps = append(l.steps, Step{Measurements: measurements, DX: dx, DY: dy})
}

func (l *Log) Len() int {
	return len(l.steps)
}

// Steps returns a copy of the step list; measurement slices are shared.
func (l *Log) Steps() []Step {
	out := make([]Step, len(l.steps))
	copy(out, l.steps)
	return out
}
