package engine

import (
	"math"
	"testing"
	"time"
)

func TestTweenCompletes(t *testing.T) {
	s := NewScope()
	var last float64
	completed := 0

	tw := s.Tween(TweenSpec{
		Duration:   200 * time.Millisecond,
		OnUpdate:   func(v float64) { last = v },
		OnComplete: func() { completed++ },
	})

	s.Advance(100 * time.Millisecond)
	if math.Abs(last-0.5) > 1e-9 {
		t.Errorf("progress at half time = %v, expected 0.5", last)
	}

	s.Advance(150 * time.Millisecond)
	if completed != 1 || last != 1 {
		t.Errorf("completed = %d, last = %v; expected 1, 1", completed, last)
	}
	if !tw.Done() {
		t.Error("tween should be done")
	}

	s.Advance(time.Second)
	if completed != 1 {
		t.Errorf("OnComplete called %d times, expected 1", completed)
	}
}

func TestTweenYoyoRepeatForever(t *testing.T) {
	s := NewScope()
	var last float64
	completed := false

	s.Tween(TweenSpec{
		Duration:   100 * time.Millisecond,
		Yoyo:       true,
		Repeat:     -1,
		OnUpdate:   func(v float64) { last = v },
		OnComplete: func() { completed = true },
	})

	s.Advance(150 * time.Millisecond) // half way back
	if math.Abs(last-0.5) > 1e-9 {
		t.Errorf("yoyo progress = %v, expected 0.5", last)
	}

	for i := 0; i < 100; i++ {
		s.Advance(37 * time.Millisecond)
	}
	if completed {
		t.Error("infinite tween should never complete")
	}
	_, tweens, _ := s.Pending()
	if tweens != 1 {
		t.Errorf("Pending tweens = %d, expected 1", tweens)
	}
}

func TestTweenStop(t *testing.T) {
	s := NewScope()
	completed := false
	tw := s.Tween(TweenSpec{Duration: 100 * time.Millisecond, OnComplete: func() { completed = true }})

	tw.Stop()
	s.Advance(time.Second)

	if completed {
		t.Error("stopped tween should not complete")
	}
}

func TestEasingEndpoints(t *testing.T) {
	eases := map[string]Ease{
		"Linear":    Linear,
		"BackOut":   BackOut,
		"CubicOut":  CubicOut,
		"SineOut":   SineOut,
		"SineInOut": SineInOut,
	}
	for name, e := range eases {
		if v := e(0); math.Abs(v) > 1e-9 {
			t.Errorf("%s(0) = %v, expected 0", name, v)
		}
		if v := e(1); math.Abs(v-1) > 1e-9 {
			t.Errorf("%s(1) = %v, expected 1", name, v)
		}
	}
	if BackOut(0.7) <= 1 {
		t.Error("BackOut should overshoot before settling")
	}
}
