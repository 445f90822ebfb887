package camera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/dddragon/pkg/math"
)

func TestLookAndMove(t *testing.T) {
	c := NewController(0.05, 0.5)
	c.Look(1, -2)
	c.Move(1, 0, -4)

	ws := c.Snapshot()
	assert.InDelta(t, 0.05, ws.Pitch, 1e-12)
	assert.InDelta(t, -0.1, ws.Yaw, 1e-12)
	assert.Zero(t, ws.Roll)
	assert.Equal(t, math.Vec3{X: 0.5, Y: 0, Z: -2}, ws.Translation)
}

func TestPitchClamp(t *testing.T) {
	c := NewController(1, 1)
	c.MinPitch, c.MaxPitch = -0.5, 0.5

	c.Look(3, 0)
	assert.Equal(t, 0.5, c.Snapshot().Pitch)
	c.Look(-10, 0)
	assert.Equal(t, -0.5, c.Snapshot().Pitch)
}

func TestSnapshotIsCopy(t *testing.T) {
	c := NewController(1, 1)
	ws := c.Snapshot()
	c.Move(1, 1, 1)
	assert.Equal(t, math.Vec3{}, ws.Translation)
}

func TestTickAndReset(t *testing.T) {
	c := NewController(1, 1)
	c.Tick(time.UnixMilli(1_700_000_000_123))
	c.Look(1, 1)
	c.Move(0, 0, 3)
	c.Reset()

	ws := c.Snapshot()
	assert.Equal(t, int64(1_700_000_000_123), ws.Timestamp)
	assert.Zero(t, ws.Pitch)
	assert.Equal(t, math.Vec3{}, ws.Translation)

	c.SetTimestamp(42)
	assert.Equal(t, int64(42), c.Snapshot().Timestamp)
}
