package swipemenu

import (
	"log/slog"
	"math"
)

// Commander receives the classifier's motion commands. *Controller
// satisfies it.
type Commander interface {
	ApplyContinuousDelta(delta float64)
	ApplyImpulse(signedLength float64)
	MoveByItems(amount int)
	LockToClosest()
}

// GestureState is the per-gesture bookkeeping of a GestureClassifier. It is
// created on press, updated by moves, and cleared on release or abort.
type GestureState struct {
	Active        bool
	StartPosition Vec2
	StartTime     float64
	LastPosition  Vec2
	Moved         bool
}

// ReleaseOutcome is what a release was classified as.
type ReleaseOutcome uint8

const (
	ReleaseNone  ReleaseOutcome = iota // nothing emitted
	ReleaseFlick                       // ApplyImpulse emitted
	ReleaseStep                        // MoveByItems(±1) emitted
	ReleaseLock                        // LockToClosest emitted
)

// String returns a short name for the outcome.
func (o ReleaseOutcome) String() string {
	switch o {
	case ReleaseFlick:
		return "flick"
	case ReleaseStep:
		return "step"
	case ReleaseLock:
		return "lock"
	default:
		return "none"
	}
}

// Release describes how the last completed gesture was classified.
type Release struct {
	Vector    Vec2    // end position minus start position
	Elapsed   float64 // gesture duration in seconds, at least one frame
	RawLength float64 // signed scroll length before any clamping
	RawForce  float64 // RawLength / Elapsed
	Force     float64 // RawForce clamped to ±MaxForce
	Impulse   float64 // length handed to ApplyImpulse (Force * Elapsed)
	Outcome   ReleaseOutcome
}

// GestureClassifier turns raw pointer or touch events into motion commands:
// continuous drag deltas while held, and a flick, step, or lock-to-closest
// on release. It is platform agnostic; per-device gains come from the
// InputSource's profile.
type GestureClassifier struct {
	cfg     Config
	target  Commander
	profile SourceProfile
	log     *slog.Logger

	state     GestureState
	rawLength float64
	last      Release
	// resting is set while a held touch that went stationary is still down.
	resting bool
}

// NewGestureClassifier creates a classifier sending commands to target and
// tuned for the given source profile.
func NewGestureClassifier(target Commander, profile SourceProfile, cfg Config) *GestureClassifier {
	cfg = cfg.normalized()
	return &GestureClassifier{
		cfg:     cfg,
		target:  target,
		profile: profile,
		log:     cfg.logger(),
	}
}

// State returns the current gesture state.
func (g *GestureClassifier) State() GestureState {
	return g.state
}

// LastRelease returns the classification of the most recent release.
func (g *GestureClassifier) LastRelease() Release {
	return g.last
}

// IsActive reports whether a gesture is in progress or the gesture that just
// ended produced a non-zero length. Tap handling uses it to ignore the
// release of a swipe.
func (g *GestureClassifier) IsActive() bool {
	return g.state.Active || g.rawLength != 0
}

// Handle feeds one input event through the state machine.
func (g *GestureClassifier) Handle(ev InputEvent) {
	switch {
	case ev.Phase.isPress():
		g.press(ev)
	case ev.Phase.isMove():
		g.move(ev)
	case ev.Phase.isRelease():
		g.release(ev)
	case ev.Phase.isAbort():
		g.abort(ev)
	}
}

func (g *GestureClassifier) press(ev InputEvent) {
	g.state = GestureState{
		Active:        true,
		StartPosition: ev.Position,
		StartTime:     ev.Time,
		LastPosition:  ev.Position,
	}
	g.rawLength = 0
	g.last = Release{}
	g.resting = false
}

func (g *GestureClassifier) move(ev InputEvent) {
	if !g.state.Active {
		if !g.resting {
			return
		}
		// A finger that rested and moves again starts a new drag from the
		// spot it rested on.
		rest := ev.Position.Sub(ev.Delta)
		g.resting = false
		g.state = GestureState{
			Active:        true,
			StartPosition: rest,
			StartTime:     ev.Time,
			LastPosition:  rest,
		}
	}
	d := ev.Position.Sub(g.state.LastPosition)
	if d.X != 0 || d.Y != 0 {
		g.state.Moved = true
	}
	if g.cfg.HandleSwipes && d.X != 0 {
		// Dragging left scrolls towards higher items.
		delta := -d.X * g.profile.DragGain
		if g.profile.DragUsesLength {
			delta = -sign(d.X) * d.Len() * g.profile.DragGain
		}
		if g.profile.DragUsesFrameTime {
			delta *= ev.DeltaTime
		}
		g.target.ApplyContinuousDelta(delta)
	}
	g.state.LastPosition = ev.Position
}

func (g *GestureClassifier) release(ev InputEvent) {
	g.resting = false
	if !g.state.Active {
		return
	}
	r := g.classify(ev)
	g.rawLength = r.RawLength

	switch {
	case g.cfg.HandleFlicks && math.Abs(r.Force) > g.cfg.RequiredForceForFlick:
		if g.cfg.FlickMode == FlickStepMove {
			r.Outcome = ReleaseStep
			g.target.MoveByItems(int(sign(r.RawLength)))
		} else {
			r.Outcome = ReleaseFlick
			g.target.ApplyImpulse(r.Impulse)
		}
	case g.cfg.LockToClosest && (g.state.Moved || r.Force != 0):
		r.Outcome = ReleaseLock
		g.target.LockToClosest()
	}

	g.last = r
	g.state = GestureState{}
	g.log.Debug("gesture released",
		"rawLength", r.RawLength, "rawForce", r.RawForce,
		"force", r.Force, "outcome", r.Outcome.String())
}

// classify computes the release measurements without emitting anything.
func (g *GestureClassifier) classify(ev InputEvent) Release {
	final := ev.Position.Sub(g.state.StartPosition)
	r := Release{Vector: final}
	r.RawLength = sign(-final.X) * final.Len() * ev.DeltaTime * g.profile.FlickGain

	r.Elapsed = ev.Time - g.state.StartTime
	if r.Elapsed < ev.DeltaTime {
		r.Elapsed = ev.DeltaTime
	}
	if r.Elapsed > 0 {
		r.RawForce = r.RawLength / r.Elapsed
	}
	r.Force = clamp(r.RawForce, -g.cfg.MaxForce, g.cfg.MaxForce)

	r.Impulse = r.RawLength
	if r.Force != r.RawForce {
		r.Impulse = r.Force * r.Elapsed
	}
	return r
}

func (g *GestureClassifier) abort(ev InputEvent) {
	g.resting = ev.Phase == PhaseTouchStationary && g.state.Active
	if !g.state.Active {
		return
	}
	g.state = GestureState{}
	g.rawLength = 0
}
