package render

import (
	"testing"
	"time"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

func threeFrames() *InMemorySequence {
	seq := NewInMemorySequence()
	for i := 0; i < 3; i++ {
		s := scene.New()
		s.AddMesh("cube", mesh.NewCube(mesh.Vec3{X: float64(i)}, 1), scene.Style{})
		seq.Append(s)
	}
	return seq
}

func TestInMemorySequence(t *testing.T) {
	seq := threeFrames()
	if seq.Len() != 3 {
		t.Fatalf("len = %d, want 3", seq.Len())
	}
	if _, err := seq.Scene(1); err != nil {
		t.Errorf("Scene(1) error = %v", err)
	}
	if _, err := seq.Scene(3); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Scene(3) error = %v, want INVALID_INPUT", err)
	}
	if _, err := seq.Scene(-1); err == nil {
		t.Error("Scene(-1) should fail")
	}
}

func TestNewAnimation(t *testing.T) {
	if _, err := NewAnimation(nil, 10); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil sequence: error = %v, want INVALID_INPUT", err)
	}

	a, err := NewAnimation(threeFrames(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if a.FPS() != DefaultFPS {
		t.Errorf("fps = %g, want default %g", a.FPS(), DefaultFPS)
	}
	if a.State() != StateStopped || a.Frame() != 0 {
		t.Errorf("initial state = %v frame %d", a.State(), a.Frame())
	}
}

func TestAnimationPlayback(t *testing.T) {
	a, err := NewAnimation(threeFrames(), 20)
	if err != nil {
		t.Fatal(err)
	}

	// Paused animations do not advance.
	if a.Advance() {
		t.Error("stopped animation advanced")
	}

	a.Play()
	if a.State() != StatePlaying {
		t.Fatalf("state = %v", a.State())
	}
	if !a.Advance() || a.Frame() != 1 {
		t.Fatalf("after advance: frame = %d", a.Frame())
	}

	a.Pause()
	if a.State() != StatePaused || a.Advance() {
		t.Error("paused animation advanced")
	}

	a.TogglePlay()
	a.Advance() // frame 2, the last
	if a.Advance() {
		t.Error("advance past end without loop should return false")
	}
	if a.State() != StateStopped {
		t.Errorf("state after running off the end = %v, want stopped", a.State())
	}
}

func TestAnimationLoop(t *testing.T) {
	a, err := NewAnimation(threeFrames(), 20)
	if err != nil {
		t.Fatal(err)
	}
	a.Loop = true
	a.Play()
	a.Advance()
	a.Advance()
	if !a.Advance() || a.Frame() != 0 {
		t.Errorf("loop did not wrap: frame = %d", a.Frame())
	}
	if a.State() != StatePlaying {
		t.Error("looping animation stopped")
	}
}

func TestAnimationSeekAndStep(t *testing.T) {
	a, err := NewAnimation(threeFrames(), 20)
	if err != nil {
		t.Fatal(err)
	}

	a.Seek(2)
	if a.Frame() != 2 {
		t.Fatalf("seek: frame = %d", a.Frame())
	}
	a.Seek(99)
	if a.Frame() != 2 {
		t.Errorf("seek past end should clamp: frame = %d, want 2", a.Frame())
	}
	a.Seek(-4)
	if a.Frame() != 0 {
		t.Errorf("seek before start should clamp: frame = %d, want 0", a.Frame())
	}
	a.Seek(2)

	a.Step(-5)
	if a.Frame() != 0 {
		t.Errorf("step clamps low: frame = %d", a.Frame())
	}
	a.Step(10)
	if a.Frame() != 2 {
		t.Errorf("step clamps high: frame = %d", a.Frame())
	}

	a.Stop()
	if a.Frame() != 0 || a.State() != StateStopped {
		t.Errorf("stop: frame = %d state = %v", a.Frame(), a.State())
	}
}

func TestAnimationEmptySequence(t *testing.T) {
	a, err := NewAnimation(NewInMemorySequence(), 10)
	if err != nil {
		t.Fatalf("empty sequence rejected: %v", err)
	}

	a.Play()
	if a.State() != StateStopped {
		t.Errorf("play on empty sequence: state = %v, want stopped", a.State())
	}
	a.TogglePlay()
	if a.State() != StateStopped {
		t.Errorf("toggle on empty sequence: state = %v, want stopped", a.State())
	}
	if a.Advance() {
		t.Error("empty sequence advanced")
	}

	a.Seek(5)
	a.Step(3)
	if a.Frame() != 0 {
		t.Errorf("frame = %d, want 0", a.Frame())
	}
}

func TestAnimationFrameDuration(t *testing.T) {
	a, err := NewAnimation(threeFrames(), 25)
	if err != nil {
		t.Fatal(err)
	}
	if d := a.FrameDuration(); d != 40*time.Millisecond {
		t.Errorf("frame duration = %v, want 40ms", d)
	}
	a.SetFPS(-1)
	if a.FPS() != 25 {
		t.Error("negative fps should be ignored")
	}
}

func TestTurntable(t *testing.T) {
	s := scene.New()
	s.AddMesh("cube", mesh.NewCube(mesh.Vec3{}, 1), scene.Style{})
	s.Camera.Position = mesh.Vec3{X: 5}

	seq := Turntable(s, 8)
	if seq.Len() != 8 {
		t.Fatalf("len = %d, want 8", seq.Len())
	}

	first, err := seq.Scene(0)
	if err != nil {
		t.Fatal(err)
	}
	if first.Camera.Position != (mesh.Vec3{X: 5}) {
		t.Errorf("frame 0 camera = %v, want original", first.Camera.Position)
	}

	mid, err := seq.Scene(4)
	if err != nil {
		t.Fatal(err)
	}
	// Half a turn moves the camera to the opposite side.
	if mid.Camera.Position.X > -4.9 {
		t.Errorf("frame 4 camera = %v, want near (-5,0,0)", mid.Camera.Position)
	}
}
