package render

import (
	"math"
	"time"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// ============================================================================
// Frame sequences
// ============================================================================

// FrameSequence is a time-ordered series of scenes, one per animation
// frame. Implementations may hold scenes in memory or build them on
// demand.
type FrameSequence interface {
	// Len returns the number of frames.
	Len() int

	// Scene returns the scene for frame i.
	Scene(i int) (*scene.Scene, error)
}

// InMemorySequence is a FrameSequence backed by a slice of scenes.
type InMemorySequence struct {
	scenes []*scene.Scene
}

// NewInMemorySequence builds a sequence from pre-built scenes.
func NewInMemorySequence(scenes ...*scene.Scene) *InMemorySequence {
	return &InMemorySequence{scenes: scenes}
}

// Append adds a frame to the end of the sequence.
func (s *InMemorySequence) Append(sc *scene.Scene) {
	s.scenes = append(s.scenes, sc)
}

// Len returns the number of frames.
func (s *InMemorySequence) Len() int { return len(s.scenes) }

// Scene returns the scene for frame i.
func (s *InMemorySequence) Scene(i int) (*scene.Scene, error) {
	if i < 0 || i >= len(s.scenes) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "frame %d out of range [0, %d)", i, len(s.scenes))
	}
	return s.scenes[i], nil
}

// FuncSequence builds frames on demand, e.g. for generated camera
// paths over a single scene.
type FuncSequence struct {
	// N is the number of frames.
	N int

	// Build returns the scene for frame i.
	Build func(i int) (*scene.Scene, error)
}

// Len returns the number of frames.
func (s FuncSequence) Len() int { return s.N }

// Scene returns the scene for frame i.
func (s FuncSequence) Scene(i int) (*scene.Scene, error) {
	if i < 0 || i >= s.N {
		return nil, errors.New(errors.ErrCodeInvalidInput, "frame %d out of range [0, %d)", i, s.N)
	}
	return s.Build(i)
}

// Turntable returns a sequence that orbits the scene camera a full turn
// around the target over the given number of frames. The scene is
// shared between frames; only the camera moves.
func Turntable(sc *scene.Scene, frames int) FrameSequence {
	if frames < 1 {
		frames = 1
	}
	base := sc.Camera
	step := 2 * math.Pi / float64(frames)
	return FuncSequence{
		N: frames,
		Build: func(i int) (*scene.Scene, error) {
			sc.Camera = base
			sc.Camera.Orbit(float64(i)*step, 0)
			return sc, nil
		},
	}
}

// ============================================================================
// Playback state
// ============================================================================

// PlayState is the animation playback state.
type PlayState int

const (
	StateStopped PlayState = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// DefaultFPS is the playback rate used when none is given.
const DefaultFPS = 10.0

// Animation tracks playback over a frame sequence: current frame,
// play state, rate and looping. It is driven externally: viewers call
// [Animation.Advance] on their own tick.
type Animation struct {
	seq   FrameSequence
	fps   float64
	frame int
	state PlayState

	// Loop restarts playback from frame zero after the last frame.
	Loop bool
}

// NewAnimation wraps a sequence with playback state. Empty sequences
// are allowed; playing one is a no-op. A non-positive fps falls back
// to [DefaultFPS].
func NewAnimation(seq FrameSequence, fps float64) (*Animation, error) {
	if seq == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "animation needs a frame sequence")
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animation{seq: seq, fps: fps}, nil
}

// Len returns the number of frames.
func (a *Animation) Len() int { return a.seq.Len() }

// Frame returns the current frame index.
func (a *Animation) Frame() int { return a.frame }

// State returns the playback state.
func (a *Animation) State() PlayState { return a.state }

// FPS returns the playback rate.
func (a *Animation) FPS() float64 { return a.fps }

// SetFPS changes the playback rate; non-positive values are ignored.
func (a *Animation) SetFPS(fps float64) {
	if fps > 0 {
		a.fps = fps
	}
}

// FrameDuration returns the wall-clock duration of one frame.
func (a *Animation) FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / a.fps)
}

// Play starts or resumes playback. An empty sequence stays stopped.
func (a *Animation) Play() {
	if a.seq.Len() == 0 {
		return
	}
	a.state = StatePlaying
}

// Pause halts playback at the current frame.
func (a *Animation) Pause() {
	if a.state == StatePlaying {
		a.state = StatePaused
	}
}

// Stop halts playback and rewinds to the first frame.
func (a *Animation) Stop() {
	a.state = StateStopped
	a.frame = 0
}

// TogglePlay switches between playing and paused.
func (a *Animation) TogglePlay() {
	if a.state == StatePlaying {
		a.state = StatePaused
	} else {
		a.Play()
	}
}

// Seek jumps to frame i, clamping to the sequence range.
func (a *Animation) Seek(i int) {
	if i >= a.seq.Len() {
		i = a.seq.Len() - 1
	}
	if i < 0 {
		i = 0
	}
	a.frame = i
}

// Step moves by delta frames, clamping at the ends.
func (a *Animation) Step(delta int) {
	a.Seek(a.frame + delta)
}

// Advance moves to the next frame while playing. At the end it loops
// or stops depending on Loop. Returns true if the frame changed.
func (a *Animation) Advance() bool {
	if a.state != StatePlaying {
		return false
	}
	if a.frame+1 < a.seq.Len() {
		a.frame++
		return true
	}
	if a.Loop {
		a.frame = 0
		return true
	}
	a.state = StateStopped
	return false
}

// Current returns the scene for the current frame.
func (a *Animation) Current() (*scene.Scene, error) {
	return a.seq.Scene(a.frame)
}
