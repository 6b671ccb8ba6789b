package render

import "math"

// Hover rotation speed, radians per second.
const hoverRotationRate = 0.8

// Loop coalesces state changes into discrete frames. Any number of
// mutations between two Step calls produce exactly one render. While an
// object is hovered in the model view, every Step renders, advancing the
// idle rotation. Start and Stop are explicit and idempotent; a stopped
// loop renders nothing.
type Loop struct {
	running bool
	dirty   bool

	hoverID    string
	hoverAngle float64

	onFrame func()
}

func NewLoop(onFrame func()) *Loop {
	if onFrame == nil {
		onFrame = func() {}
	}
	return &Loop{onFrame: onFrame}
}

func (l *Loop) Start() { l.running = true }

// Stop halts frame production. Safe to call when already stopped.
func (l *Loop) Stop() {
	l.running = false
	l.dirty = false
}

func (l *Loop) Running() bool { return l.running }

// Invalidate schedules one frame on the next Step.
func (l *Loop) Invalidate() { l.dirty = true }

// SetHover marks the object driving idle rotation; "" clears it and stops
// the animation ticks.
func (l *Loop) SetHover(id string) {
	if id == l.hoverID {
		return
	}
	l.hoverID = id
	l.hoverAngle = 0
	l.dirty = true
}

func (l *Loop) Hover() (string, float64) { return l.hoverID, l.hoverAngle }

// Step advances the loop by dt seconds, rendering at most one frame.
// Returns true when a frame was produced.
func (l *Loop) Step(dt float64) bool {
	if !l.running {
		return false
	}
	animating := l.hoverID != ""
	if !l.dirty && !animating {
		return false
	}
	if animating && dt > 0 {
		l.hoverAngle = math.Mod(l.hoverAngle+hoverRotationRate*dt, 2*math.Pi)
	}
	l.dirty = false
	l.onFrame()
	return true
}
