// Package scenario drives a robot through a sense-then-move trajectory and
// records it for the SLAM solver.
package scenario

import (
	"fmt"
	"math"

	"github.com/robolab/slambot/internal/robot"
	"github.com/robolab/slambot/internal/trajectory"
)

// maxMoveAttempts bounds the heading redraws after rejected moves before a
// step is declared stuck (step distance too large for the world).
const maxMoveAttempts = 100

type Config struct {
	Steps        int
	StepDistance float64
}

// Runner executes time steps against a robot: sense, then move along a
// random heading, redrawing the heading until the world accepts the move.
type Runner struct {
	bot *robot.Robot
	src robot.Source
	cfg Config

	log    *trajectory.Log
	xs, ys []float64
}

func New(bot *robot.Robot, src robot.Source, cfg Config) (*Runner, error) {
	if bot == nil {
		return nil, fmt.Errorf("robot must not be nil")
	}
	if src == nil {
		src = robot.NewSource()
	}
	if cfg.Steps < 0 {
		return nil, fmt.Errorf("steps must be non-negative, got %d", cfg.Steps)
	}
	if cfg.StepDistance <= 0 {
		return nil, fmt.Errorf("step distance must be positive, got %f", cfg.StepDistance)
	}

	r := &Runner{
		bot: bot,
		src: src,
		cfg: cfg,
		log: trajectory.New(),
	}
	x, y := bot.Pose()
	r.xs = append(r.xs, x)
	r.ys = append(r.ys, y)
	return r, nil
}

// Step performs one time step: sense first, then attempt the move, picking a
// fresh random heading after every rejection. The accepted delta is what gets
// logged, preserving the sense-then-move pairing per step.
func (r *Runner) Step() (trajectory.Step, error) {
	measurements := r.bot.Sense()

	var dx, dy float64
	for attempt := 0; ; attempt++ {
		if attempt >= maxMoveAttempts {
			return trajectory.Step{}, fmt.Errorf("no accepted move after %d attempts (step distance %f, world %f)",
				maxMoveAttempts, r.cfg.StepDistance, r.bot.WorldSize())
		}
		heading := 2 * math.Pi * r.src.Float64()
		dx = math.Cos(heading) * r.cfg.StepDistance
		dy = math.Sin(heading) * r.cfg.StepDistance
		if r.bot.Move(dx, dy) {
			break
		}
	}

	r.log.Append(measurements, dx, dy)
	x, y := r.bot.Pose()
	r.xs = append(r.xs, x)
	r.ys = append(r.ys, y)

	return trajectory.Step{Measurements: measurements, DX: dx, DY: dy}, nil
}

// Run executes the configured number of steps and returns the trajectory log.
func (r *Runner) Run() (*trajectory.Log, error) {
	for i := 0; i < r.cfg.Steps; i++ {
		if _, err := r.Step(); err != nil {
			return r.log, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return r.log, nil
}

// Log returns the trajectory accumulated so far.
func (r *Runner) Log() *trajectory.Log {
	return r.log
}

// Track returns the true pose history, one entry per accepted move plus the
// starting pose.
func (r *Runner) Track() (xs, ys []float64) {
	return r.xs, r.ys
}

func (r *Runner) Robot() *robot.Robot {
	return r.bot
}

func (r *Runner) StepsDone() int {
	return r.log.Len()
}

func (r *Runner) StepsTotal() int {
	return r.cfg.Steps
}
