// Package robot implements the world model used by the SLAM exercises: a
// single robot on a square 2D world with noisy motion and noisy per-axis
// landmark sensing. Measurements are x/y offsets rather than range and
// bearing, which keeps the downstream math simple.
package robot

import (
	"fmt"
	"math"
)

// UnlimitedRange disables the sensing range limit when passed as the
// measurementRange constructor argument.
const UnlimitedRange = -1

// Landmark is a fixed point of interest; its index in the robot's landmark
// list is its identity in sensing output.
type Landmark struct {
	X, Y float64
}

// Measurement is one sensed landmark: its index and the noisy x/y offsets
// from the robot's pose.
type Measurement struct {
	Index  int
	DX, DY float64
}

// Robot holds the pose, noise parameters, and landmark list for one
// simulation run. It is not safe for concurrent use.
type Robot struct {
	worldSize        float64
	measurementRange float64
	unlimited        bool
	motionNoise      float64
	measurementNoise float64
	x, y             float64
	landmarks        []Landmark
	src              Source
}

// New creates a robot at the center of a worldSize x worldSize world.
// measurementRange is the maximum per-axis offset at which a landmark is
// sensed; UnlimitedRange (-1) removes the limit. motionNoise and
// measurementNoise scale the per-step uniform [-1,1) perturbations.
// A nil src falls back to a time-seeded generator.
func New(worldSize, measurementRange, motionNoise, measurementNoise float64, src Source) (*Robot, error) {
	if worldSize <= 0 {
		return nil, fmt.Errorf("world size must be positive, got %f", worldSize)
	}
	if motionNoise < 0 {
		return nil, fmt.Errorf("motion noise must be non-negative, got %f", motionNoise)
	}
	if measurementNoise < 0 {
		return nil, fmt.Errorf("measurement noise must be non-negative, got %f", measurementNoise)
	}
	if measurementRange < 0 && measurementRange != UnlimitedRange {
		return nil, fmt.Errorf("measurement range must be -1 or non-negative, got %f", measurementRange)
	}
	if src == nil {
		src = NewSource()
	}

	return &Robot{
		worldSize:        worldSize,
		measurementRange: measurementRange,
		unlimited:        measurementRange == UnlimitedRange,
		motionNoise:      motionNoise,
		measurementNoise: measurementNoise,
		x:                worldSize / 2.0,
		y:                worldSize / 2.0,
		src:              src,
	}, nil
}

// noise returns one uniform sample in [-1, 1), drawn independently per call.
func (r *Robot) noise() float64 {
	return 2.0*r.src.Float64() - 1.0
}

// Move attempts to translate the pose by (dx, dy) plus independent per-axis
// motion noise. If either candidate coordinate leaves [0, worldSize] the move
// is rejected whole: the stored pose is untouched and Move reports false.
// There is no clamping and no partial commit; recovery is the caller's job.
func (r *Robot) Move(dx, dy float64) bool {
	x := r.x + dx + r.noise()*r.motionNoise
	y := r.y + dy + r.noise()*r.motionNoise

	if x < 0 || x > r.worldSize || y < 0 || y > r.worldSize {
		return false
	}
	r.x = x
	r.y = y
	return true
}

// Sense measures the noisy x/y offset to every landmark in index order and
// keeps those within range. The range test runs on the noisy offset, not the
// true distance, so sensing noise can push a borderline landmark in or out.
// Pose and landmarks are not mutated.
func (r *Robot) Sense() []Measurement {
	measurements := make([]Measurement, 0, len(r.landmarks))
	for i, lm := range r.landmarks {
		dx := (lm.X - r.x) + r.noise()*r.measurementNoise
		dy := (lm.Y - r.y) + r.noise()*r.measurementNoise

		if r.unlimited || (math.Abs(dx) <= r.measurementRange && math.Abs(dy) <= r.measurementRange) {
			measurements = append(measurements, Measurement{Index: i, DX: dx, DY: dy})
		}
	}
	return measurements
}

// MakeLandmarks replaces the landmark list with n randomly placed landmarks.
// Coordinates are rounded to the integer grid; the pose stays continuous.
func (r *Robot) MakeLandmarks(n int) error {
	if n < 0 {
		return fmt.Errorf("landmark count must be non-negative, got %d", n)
	}
	landmarks := make([]Landmark, n)
	for i := range landmarks {
		landmarks[i] = Landmark{
			X: math.Round(r.src.Float64() * r.worldSize),
			Y: math.Round(r.src.Float64() * r.worldSize),
		}
	}
	r.landmarks = landmarks
	return nil
}

// Pose returns the current position.
func (r *Robot) Pose() (x, y float64) {
	return r.x, r.y
}

// WorldSize returns the side length of the world.
func (r *Robot) WorldSize() float64 {
	return r.worldSize
}

// MeasurementRange returns the configured range, -1 when unlimited.
func (r *Robot) MeasurementRange() float64 {
	return r.measurementRange
}

// Unlimited reports whether the sensing range limit is disabled.
func (r *Robot) Unlimited() bool {
	return r.unlimited
}

// NumLandmarks returns the current landmark count.
func (r *Robot) NumLandmarks() int {
	return len(r.landmarks)
}

// Landmarks returns a copy of the landmark list.
func (r *Robot) Landmarks() []Landmark {
	out := make([]Landmark, len(r.landmarks))
	copy(out, r.landmarks)
	return out
}

func (r *Robot) String() string {
	return fmt.Sprintf("Robot: [x=%.5f y=%.5f]", r.x, r.y)
}
