package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionMoveLeft, ActionRotate, ActionNone)

	assert.True(t, f.Has(ActionMoveLeft))
	assert.True(t, f.Has(ActionRotate))
	assert.False(t, f.Has(ActionNone), "ActionNone is never recorded")

	f.Clear()
	assert.True(t, f.Empty(), "Clear empties the frame, got %v", f.Actions)

	var zero InputFrame
	assert.False(t, zero.Has(ActionQuit))
	zero.Set(ActionQuit)
	assert.True(t, zero.Has(ActionQuit), "Set on a zero frame allocates")
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "HardDrop", ActionHardDrop.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
