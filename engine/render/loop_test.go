package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepCoalescesInvalidations(t *testing.T) {
	frames := 0
	loop := NewLoop(func() { frames++ })
	loop.Start()

	// Many invalidations between two Steps produce exactly one frame.
	loop.Invalidate()
	loop.Invalidate()
	loop.Invalidate()
	assert.True(t, loop.Step(0.016))
	assert.Equal(t, 1, frames)

	// Nothing changed, nothing rendered.
	assert.False(t, loop.Step(0.016))
	assert.Equal(t, 1, frames)
}

func TestStoppedLoopRendersNothing(t *testing.T) {
	frames := 0
	loop := NewLoop(func() { frames++ })

	loop.Invalidate()
	assert.False(t, loop.Step(0.016))
	assert.Equal(t, 0, frames)

	loop.Start()
	loop.Stop()
	loop.Stop() // idempotent
	loop.Invalidate()
	assert.False(t, loop.Step(0.016))
	assert.Equal(t, 0, frames)
}

func TestHoverAnimatesEveryStep(t *testing.T) {
	frames := 0
	loop := NewLoop(func() { frames++ })
	loop.Start()
	loop.SetHover("obj-1")

	for i := 0; i < 5; i++ {
		assert.True(t, loop.Step(0.1))
	}
	assert.Equal(t, 5, frames)

	_, angle := loop.Hover()
	assert.InDelta(t, hoverRotationRate*0.5, angle, 1e-9)

	// Clearing hover resets the angle and renders one final frame.
	loop.SetHover("")
	assert.True(t, loop.Step(0.1))
	id, angle := loop.Hover()
	assert.Empty(t, id)
	assert.Zero(t, angle)
	assert.False(t, loop.Step(0.1))
}

func TestSetHoverSameIDIsNoOp(t *testing.T) {
	loop := NewLoop(nil)
	loop.Start()
	loop.SetHover("obj-1")
	loop.Step(0.5)
	_, before := loop.Hover()

	loop.SetHover("obj-1")
	_, after := loop.Hover()
	assert.Equal(t, before, after, "re-hovering the same object must not reset the angle")
}
