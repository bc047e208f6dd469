package robot

import (
	"math"
	"testing"
)

// stubSource replays a fixed sample sequence, then settles on 0.5 (which the
// noise transform maps to exactly zero).
type stubSource struct {
	vals []float64
	i    int
}

func (s *stubSource) Float64() float64 {
	if s.i >= len(s.vals) {
		return 0.5
	}
	v := s.vals[s.i]
	s.i++
	return v
}

func zeroNoise() Source { return &stubSource{} }

func TestNewCentersPose(t *testing.T) {
	sizes := []float64{1.0, 10.0, 100.0, 250.5}

	for _, size := range sizes {
		r, err := New(size, 30.0, 1.0, 1.0, zeroNoise())
		if err != nil {
			t.Fatalf("New(%f) failed: %v", size, err)
		}
		x, y := r.Pose()
		if x != size/2 || y != size/2 {
			t.Errorf("world %f: expected pose (%f, %f), got (%f, %f)", size, size/2, size/2, x, y)
		}
		if r.NumLandmarks() != 0 {
			t.Errorf("expected no landmarks after construction, got %d", r.NumLandmarks())
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name                     string
		worldSize, rng, mot, mea float64
	}{
		{"zero world", 0, 30, 1, 1},
		{"negative world", -10, 30, 1, 1},
		{"negative motion noise", 100, 30, -1, 1},
		{"negative measurement noise", 100, 30, 1, -0.5},
		{"invalid range", 100, -2, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.worldSize, tt.rng, tt.mot, tt.mea, zeroNoise()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewAcceptsUnlimitedRange(t *testing.T) {
	r, err := New(100, UnlimitedRange, 1, 1, zeroNoise())
	if err != nil {
		t.Fatalf("New with unlimited range failed: %v", err)
	}
	if !r.Unlimited() {
		t.Error("expected unlimited sensing mode")
	}
	if r.MeasurementRange() != UnlimitedRange {
		t.Errorf("expected range sentinel preserved, got %f", r.MeasurementRange())
	}
}

func TestMoveZeroNoise(t *testing.T) {
	r, _ := New(10, 5, 0, 0, zeroNoise())

	if !r.Move(1, 2) {
		t.Fatal("expected move to succeed")
	}
	x, y := r.Pose()
	if x != 6 || y != 7 {
		t.Errorf("expected pose (6, 7), got (%f, %f)", x, y)
	}
}

func TestMoveRejected(t *testing.T) {
	r, _ := New(10, 5, 0, 0, zeroNoise())

	if r.Move(10, 0) {
		t.Fatal("expected move past boundary to fail")
	}
	x, y := r.Pose()
	if x != 5 || y != 5 {
		t.Errorf("expected pose unchanged at (5, 5), got (%f, %f)", x, y)
	}
}

func TestMoveRejectionIsAtomic(t *testing.T) {
	// x candidate stays in bounds, noise pushes y out; neither axis may move.
	src := &stubSource{vals: []float64{0.5, 0.9}}
	r, _ := New(10, 5, 2, 0, src)

	if r.Move(0, 4.5) {
		t.Fatal("expected move to fail")
	}
	x, y := r.Pose()
	if x != 5 || y != 5 {
		t.Errorf("expected pose unchanged at (5, 5), got (%f, %f)", x, y)
	}
}

func TestMoveAppliesNoiseToBothAxes(t *testing.T) {
	// Samples 0.75 and 0.25 map to noise +0.5 and -0.5, scaled by 2.
	src := &stubSource{vals: []float64{0.75, 0.25}}
	r, _ := New(10, 5, 2, 0, src)

	if !r.Move(1, 1) {
		t.Fatal("expected move to succeed")
	}
	x, y := r.Pose()
	if x != 7 || y != 5 {
		t.Errorf("expected pose (7, 5), got (%f, %f)", x, y)
	}
}

func TestSenseLandmarkWithinRange(t *testing.T) {
	src := &stubSource{vals: []float64{0.8, 0.0}}
	r, _ := New(10, 5, 0, 0, src)
	if err := r.MakeLandmarks(1); err != nil {
		t.Fatal(err)
	}

	got := r.Sense()
	if len(got) != 1 {
		t.Fatalf("expected 1 measurement, got %d", len(got))
	}
	m := got[0]
	if m.Index != 0 || m.DX != 3 || m.DY != -5 {
		t.Errorf("expected [0, 3, -5], got [%d, %f, %f]", m.Index, m.DX, m.DY)
	}
}

func TestSenseSecondLandmarkScenario(t *testing.T) {
	src := &stubSource{vals: []float64{0.1, 0.6}}
	r, _ := New(10, 5, 0, 0, src)
	if err := r.MakeLandmarks(1); err != nil {
		t.Fatal(err)
	}

	got := r.Sense()
	if len(got) != 1 {
		t.Fatalf("expected 1 measurement, got %d", len(got))
	}
	m := got[0]
	if m.Index != 0 || m.DX != -4 || m.DY != 1 {
		t.Errorf("expected [0, -4, 1], got [%d, %f, %f]", m.Index, m.DX, m.DY)
	}
}

func TestSenseFiltersOutOfRange(t *testing.T) {
	// Landmark (8, 0): |dy| = 5 exceeds a range of 4.
	src := &stubSource{vals: []float64{0.8, 0.0}}
	r, _ := New(10, 4, 0, 0, src)
	if err := r.MakeLandmarks(1); err != nil {
		t.Fatal(err)
	}

	if got := r.Sense(); len(got) != 0 {
		t.Errorf("expected no measurements, got %v", got)
	}
}

func TestSenseNoisePushesLandmarkOutOfRange(t *testing.T) {
	// True offsets (3, -5) are within range 5, but the dy noise draw of
	// 0.25 maps to -0.5 and shifts dy to -5.5. The filter runs on the
	// noisy offset, so the landmark drops out.
	src := &stubSource{vals: []float64{0.8, 0.0, 0.5, 0.25}}
	r, _ := New(10, 5, 0, 1, src)
	if err := r.MakeLandmarks(1); err != nil {
		t.Fatal(err)
	}

	if got := r.Sense(); len(got) != 0 {
		t.Errorf("expected borderline landmark filtered out, got %v", got)
	}
}

func TestSenseNoisePullsLandmarkIntoRange(t *testing.T) {
	// Landmark (12, 6) from (6, 6): true dx = 6 is out of range 5, but a
	// dx noise draw of 0.0 maps to -1 and brings it to exactly 5.
	src := &stubSource{vals: []float64{0.99, 0.5, 0.0, 0.5}}
	r, _ := New(12, 5, 0, 1, src)
	if err := r.MakeLandmarks(1); err != nil {
		t.Fatal(err)
	}

	got := r.Sense()
	if len(got) != 1 {
		t.Fatalf("expected 1 measurement, got %d", len(got))
	}
	if got[0].DX != 5 || got[0].DY != 0 {
		t.Errorf("expected offsets (5, 0), got (%f, %f)", got[0].DX, got[0].DY)
	}
}

func TestSenseUnlimitedRangeReturnsAll(t *testing.T) {
	// Landmarks in the world corners, ~50 units from the center pose.
	src := &stubSource{vals: []float64{0, 0, 0.99, 0.99, 0, 0.99, 0.99, 0}}
	r, _ := New(100, UnlimitedRange, 0, 0, src)
	if err := r.MakeLandmarks(4); err != nil {
		t.Fatal(err)
	}

	got := r.Sense()
	if len(got) != 4 {
		t.Fatalf("expected one measurement per landmark, got %d", len(got))
	}
	for i, m := range got {
		if m.Index != i {
			t.Errorf("measurement %d: expected index %d, got %d", i, i, m.Index)
		}
	}
}

func TestSenseOrderingAndPredicate(t *testing.T) {
	// Landmarks (0,0), (5,5), (10,10), (4,6) around the center of a 10
	// world with range 2: only indices 1 and 3 qualify.
	src := &stubSource{vals: []float64{0, 0, 0.5, 0.5, 0.99, 0.99, 0.4, 0.6}}
	r, _ := New(10, 2, 0, 0, src)
	if err := r.MakeLandmarks(4); err != nil {
		t.Fatal(err)
	}

	got := r.Sense()
	if len(got) != 2 {
		t.Fatalf("expected 2 measurements, got %d", len(got))
	}
	prev := -1
	for _, m := range got {
		if m.Index <= prev {
			t.Errorf("indices not strictly increasing: %d after %d", m.Index, prev)
		}
		prev = m.Index
		if math.Abs(m.DX) > 2 || math.Abs(m.DY) > 2 {
			t.Errorf("measurement %v violates range predicate", m)
		}
	}
	if got[0].Index != 1 || got[1].Index != 3 {
		t.Errorf("expected indices [1, 3], got [%d, %d]", got[0].Index, got[1].Index)
	}
}

func TestSenseNoLandmarks(t *testing.T) {
	r, _ := New(10, 5, 0, 0, zeroNoise())
	if got := r.Sense(); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestMakeLandmarks(t *testing.T) {
	r, _ := New(100, 30, 1, 1, NewSeededSource(7))

	if err := r.MakeLandmarks(5); err != nil {
		t.Fatal(err)
	}
	landmarks := r.Landmarks()
	if len(landmarks) != 5 {
		t.Fatalf("expected 5 landmarks, got %d", len(landmarks))
	}
	for i, lm := range landmarks {
		if lm.X != math.Trunc(lm.X) || lm.Y != math.Trunc(lm.Y) {
			t.Errorf("landmark %d not on integer grid: (%f, %f)", i, lm.X, lm.Y)
		}
		if lm.X < 0 || lm.X > 100 || lm.Y < 0 || lm.Y > 100 {
			t.Errorf("landmark %d outside world: (%f, %f)", i, lm.X, lm.Y)
		}
	}
}

func TestMakeLandmarksReplacesWholesale(t *testing.T) {
	r, _ := New(100, 30, 1, 1, NewSeededSource(7))

	if err := r.MakeLandmarks(5); err != nil {
		t.Fatal(err)
	}
	if err := r.MakeLandmarks(2); err != nil {
		t.Fatal(err)
	}
	if r.NumLandmarks() != 2 {
		t.Errorf("expected 2 landmarks after replacement, got %d", r.NumLandmarks())
	}

	if err := r.MakeLandmarks(0); err != nil {
		t.Fatal(err)
	}
	if r.NumLandmarks() != 0 {
		t.Errorf("expected empty landmark list, got %d", r.NumLandmarks())
	}
}

func TestMakeLandmarksNegativeCount(t *testing.T) {
	r, _ := New(100, 30, 1, 1, NewSeededSource(7))
	if err := r.MakeLandmarks(3); err != nil {
		t.Fatal(err)
	}

	if err := r.MakeLandmarks(-1); err == nil {
		t.Error("expected error for negative count")
	}
	if r.NumLandmarks() != 3 {
		t.Errorf("failed call must not touch landmarks, got %d", r.NumLandmarks())
	}
}

func TestLandmarksReturnsCopy(t *testing.T) {
	src := &stubSource{vals: []float64{0.8, 0.0}}
	r, _ := New(10, 5, 0, 0, src)
	if err := r.MakeLandmarks(1); err != nil {
		t.Fatal(err)
	}

	landmarks := r.Landmarks()
	landmarks[0] = Landmark{X: 99, Y: 99}

	if r.Landmarks()[0].X != 8 {
		t.Error("mutating the returned slice leaked into the robot")
	}
}

func TestStringFormat(t *testing.T) {
	r, _ := New(10, 5, 0, 0, zeroNoise())
	if got := r.String(); got != "Robot: [x=5.00000 y=5.00000]" {
		t.Errorf("unexpected format: %q", got)
	}
}
