package engine

import (
	"math"
	"time"
)

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(t float64) float64

// Easing curves used by the scenes.
var (
	Linear Ease = func(t float64) float64 { return t }

	BackOut Ease = func(t float64) float64 {
		const s = 1.70158
		t--
		return t*t*((s+1)*t+s) + 1
	}

	CubicOut Ease = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	SineOut Ease = func(t float64) float64 {
		return math.Sin(t * math.Pi / 2)
	}

	SineInOut Ease = func(t float64) float64 {
		return -0.5 * (math.Cos(math.Pi*t) - 1)
	}
)

// TweenSpec describes an animation. OnUpdate receives eased progress.
type TweenSpec struct {
	Duration   time.Duration
	Ease       Ease
	Yoyo       bool // Play forward then backward each cycle
	Repeat     int  // Extra cycles; -1 repeats forever
	OnUpdate   func(v float64)
	OnComplete func()
}

// Tween is a running animation created from a TweenSpec.
type Tween struct {
	spec     TweenSpec
	elapsed  time.Duration
	backward bool
	cycles   int
	done     bool
}

func newTween(spec TweenSpec) *Tween {
	if spec.Ease == nil {
		spec.Ease = Linear
	}
	if spec.Duration <= 0 {
		spec.Duration = time.Millisecond
	}
	return &Tween{spec: spec}
}

// Stop ends the tween without calling OnComplete.
func (t *Tween) Stop() {
	t.done = true
}

// Done reports whether the tween finished or was stopped.
func (t *Tween) Done() bool {
	return t.done
}

// Progress returns the linear progress of the current leg in [0, 1].
func (t *Tween) Progress() float64 {
	p := float64(t.elapsed) / float64(t.spec.Duration)
	if p > 1 {
		p = 1
	}
	if t.backward {
		return 1 - p
	}
	return p
}

// advance steps the tween and reports whether it is still running.
func (t *Tween) advance(dt time.Duration) bool {
	if t.done {
		return false
	}
	t.elapsed += dt
	for t.elapsed >= t.spec.Duration {
		t.elapsed -= t.spec.Duration
		if t.spec.Yoyo && !t.backward {
			t.backward = true
			continue
		}
		t.backward = false
		if t.spec.Repeat >= 0 && t.cycles >= t.spec.Repeat {
			t.finish()
			return false
		}
		t.cycles++
		if t.spec.Repeat < 0 {
			// Infinite: drop whole extra cycles so a long frame cannot spin.
			t.elapsed %= t.spec.Duration
		}
	}
	t.update(t.Progress())
	return true
}

func (t *Tween) finish() {
	t.done = true
	end := 1.0
	if t.spec.Yoyo {
		end = 0
	}
	t.update(end)
	if t.spec.OnComplete != nil {
		t.spec.OnComplete()
	}
}

func (t *Tween) update(p float64) {
	if t.spec.OnUpdate != nil {
		t.spec.OnUpdate(t.spec.Ease(p))
	}
}
