package swipemenu

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator is the value-interpolation service the controller drives scroll
// animations through. Animate starts interpolating from → to and calls
// onUpdate with each frame's value and onComplete once when the animation
// runs to its end. A cancelled animation calls neither again.
type Animator interface {
	Animate(from, to float64, duration float32, fn ease.TweenFunc,
		onUpdate func(float64), onComplete func()) AnimationHandle
	Update(dt float32)
}

// AnimationHandle identifies a running animation.
type AnimationHandle interface {
	Cancel()
	Done() bool
}

// Tween is a single float64 animation backed by a gween tween. It satisfies
// AnimationHandle.
type Tween struct {
	id         uint64
	tween      *gween.Tween
	to         float64
	onUpdate   func(float64)
	onComplete func()
	done       bool
	cancelled  bool
}

// Cancel stops the tween. Its callbacks never fire again.
func (t *Tween) Cancel() {
	t.cancelled = true
	t.done = true
}

// Done reports whether the tween finished or was cancelled.
func (t *Tween) Done() bool {
	return t.done
}

// Cancelled reports whether the tween was stopped before finishing.
func (t *Tween) Cancelled() bool {
	return t.cancelled
}

// ID returns the tween's sequence number within its animator.
func (t *Tween) ID() uint64 {
	return t.id
}

// update advances the tween by dt seconds. The final update reports the exact
// float64 end value rather than gween's float32 result so that targets on the
// item grid are hit without rounding.
func (t *Tween) update(dt float32) {
	if t.done {
		return
	}
	val, finished := t.tween.Update(dt)
	if finished {
		t.done = true
		if t.onUpdate != nil {
			t.onUpdate(t.to)
		}
		// onUpdate may have cancelled this tween.
		if !t.cancelled && t.onComplete != nil {
			t.onComplete()
		}
		return
	}
	if t.onUpdate != nil {
		t.onUpdate(float64(val))
	}
}

// TweenAnimator runs any number of Tweens and advances them each frame.
// The owner calls Update itself; there is no global animation manager.
type TweenAnimator struct {
	active []*Tween
	nextID uint64
}

// NewTweenAnimator creates an empty animator.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{}
}

// Animate starts a tween and returns its handle. A nil easing function means
// ease.Linear. Durations of zero or less complete on the next Update.
func (a *TweenAnimator) Animate(from, to float64, duration float32, fn ease.TweenFunc,
	onUpdate func(float64), onComplete func()) AnimationHandle {
	return a.Start(from, to, duration, fn, onUpdate, onComplete)
}

// Start is Animate returning the concrete *Tween.
func (a *TweenAnimator) Start(from, to float64, duration float32, fn ease.TweenFunc,
	onUpdate func(float64), onComplete func()) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	if duration < 0 {
		duration = 0
	}
	a.nextID++
	t := &Tween{
		id:         a.nextID,
		tween:      gween.New(float32(from), float32(to), duration, fn),
		to:         to,
		onUpdate:   onUpdate,
		onComplete: onComplete,
	}
	a.active = append(a.active, t)
	return t
}

// Update advances every running tween by dt seconds in start order and drops
// finished ones. Tweens started by callbacks during Update first advance on
// the following frame.
func (a *TweenAnimator) Update(dt float32) {
	n := len(a.active)
	for i := 0; i < n; i++ {
		a.active[i].update(dt)
	}
	kept := a.active[:0]
	for _, t := range a.active {
		if !t.done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(a.active); i++ {
		a.active[i] = nil
	}
	a.active = kept
}

// Len returns the number of tweens still running.
func (a *TweenAnimator) Len() int {
	return len(a.active)
}
